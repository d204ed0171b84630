package math

import "testing"

// transform applies m to a point with w = 1.
func transform(m Mat4, p [3]float32) [3]float32 {
	x := m[0]*p[0] + m[4]*p[1] + m[8]*p[2] + m[12]
	y := m[1]*p[0] + m[5]*p[1] + m[9]*p[2] + m[13]
	z := m[2]*p[0] + m[6]*p[1] + m[10]*p[2] + m[14]
	return [3]float32{x, y, z}
}

func TestOrthoDepth(t *testing.T) {
	m := Ortho(0, 640, 480, 0, -1, 1)
	if m[10] != -1 || m[14] != 0 || m[15] != 1 {
		t.Errorf("unexpected depth terms %v %v %v", m[10], m[14], m[15])
	}
}

func TestPixelSpaceCorners(t *testing.T) {
	m := PixelSpace(640, 480)

	tests := []struct {
		in   [3]float32
		want [3]float32
	}{
		{[3]float32{0, 0, 0}, [3]float32{-1, 1, 0}},
		{[3]float32{640, 480, 0}, [3]float32{1, -1, 0}},
		{[3]float32{320, 240, 0}, [3]float32{0, 0, 0}},
	}
	for _, tt := range tests {
		got := transform(m, tt.in)
		for i := range got {
			if abs(got[i]-tt.want[i]) > 1e-6 {
				t.Errorf("PixelSpace(%v) = %v, want %v", tt.in, got, tt.want)
				break
			}
		}
	}
}

func TestPtr(t *testing.T) {
	m := PixelSpace(2, 2)
	if p := m.Ptr(); *p != m[0] {
		t.Errorf("Ptr() points at %v, want %v", *p, m[0])
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
