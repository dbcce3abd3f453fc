package malloc

import "testing"

func TestAlignup(t *testing.T) {
	testcases := [][3]int64{
		{0, 8, 0},
		{1, 8, 8},
		{7, 8, 8},
		{8, 8, 8},
		{9, 8, 16},
		{100, 1, 100},
		{100, 64, 128},
		{1023, 512, 1024},
	}
	for _, tc := range testcases {
		if x := alignup(tc[0], tc[1]); x != tc[2] {
			t.Errorf("alignup(%v, %v) expected %v, got %v", tc[0], tc[1], tc[2], x)
		}
	}
}

func TestIspow2(t *testing.T) {
	for _, n := range []int64{1, 2, 4, 8, 1024, 65536} {
		if ispow2(n) == false {
			t.Errorf("expected %v to be a power of 2", n)
		}
	}
	for _, n := range []int64{0, -1, -8, 3, 6, 24, 1000} {
		if ispow2(n) == true {
			t.Errorf("expected %v to not be a power of 2", n)
		}
	}
}
