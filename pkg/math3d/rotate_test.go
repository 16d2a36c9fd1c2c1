package math3d

import (
	"math"
	"testing"
)

func vecNear(a, b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}

func TestRotateZeroAngles(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
	}{
		{"unit x", V3(1, 0, 0)},
		{"unit y", V3(0, 1, 0)},
		{"unit z", V3(0, 0, 1)},
		{"mixed", V3(1.5, -2.25, 3.75)},
		{"zero", Zero3()},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Rotate(tc.v, 0, 0)
			if !vecNear(got, tc.v, 1e-12) {
				t.Errorf("Rotate(%v, 0, 0) = %v, want unchanged", tc.v, got)
			}
		})
	}
}

func TestRotateKnownAngles(t *testing.T) {
	tests := []struct {
		name   string
		v      Vec3
		rx, rz float64
		want   Vec3
	}{
		{"yaw 90 sends x to y", V3(1, 0, 0), 0, 90, V3(0, 1, 0)},
		{"yaw 90 sends y to -x", V3(0, 1, 0), 0, 90, V3(-1, 0, 0)},
		{"pitch 90 sends y to z", V3(0, 1, 0), 90, 0, V3(0, 0, 1)},
		{"pitch 90 sends z to -y", V3(0, 0, 1), 90, 0, V3(0, -1, 0)},
		{"pitch leaves x alone", V3(1, 0, 0), 45, 0, V3(1, 0, 0)},
		{"yaw then pitch", V3(1, 0, 0), 90, 90, V3(0, 0, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Rotate(tc.v, tc.rx, tc.rz)
			if !vecNear(got, tc.want, 1e-9) {
				t.Errorf("Rotate(%v, %v, %v) = %v, want %v", tc.v, tc.rx, tc.rz, got, tc.want)
			}
		})
	}
}

func TestRotateInverseRoundTrip(t *testing.T) {
	vectors := []Vec3{
		V3(1, 0, 0),
		V3(0, 1, 0),
		V3(0, 0, 1),
		V3(3, -4, 5),
		V3(-0.25, 0.5, -0.75),
	}
	angles := []struct{ rx, rz float64 }{
		{0, 0},
		{30, 0},
		{0, 45},
		{30, 45},
		{-60, 120},
		{89, -179},
	}

	for _, v := range vectors {
		for _, a := range angles {
			got := RotateInverse(Rotate(v, a.rx, a.rz), a.rx, a.rz)
			if !vecNear(got, v, 1e-9) {
				t.Errorf("round trip (rx=%v, rz=%v) of %v = %v", a.rx, a.rz, v, got)
			}
		}
	}
}

func TestRotatePreservesLength(t *testing.T) {
	v := V3(2, -3, 6) // length 7
	got := Rotate(v, 37, -112).Len()
	if math.Abs(got-7) > 1e-9 {
		t.Errorf("rotated length = %v, want 7", got)
	}
}

func BenchmarkRotate(b *testing.B) {
	v := V3(1.2, -3.4, 5.6)
	for b.Loop() {
		v = Rotate(v, 13.5, -27.25)
	}
	_ = v
}
