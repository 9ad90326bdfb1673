package geom

import (
	"math"
	"testing"
)

func TestMatrix_Identity(t *testing.T) {
	m := Identity()
	if !m.IsIdentity() {
		t.Error("Identity().IsIdentity() = false, want true")
	}
	p := Pt(3, 4)
	if got := m.TransformPoint(p); got != p {
		t.Errorf("Identity().TransformPoint(%v) = %v, want %v", p, got, p)
	}
}

func TestMatrix_Constructors(t *testing.T) {
	tests := []struct {
		name   string
		m      Matrix
		in     Point
		expect Point
	}{
		{"translate", Translation(10, 20), Pt(1, 2), Pt(11, 22)},
		{"scale", Scaling(2, 3), Pt(1, 2), Pt(2, 6)},
		{"rotate quarter", Rotation(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"rotate around pivot", RotationAround(math.Pi/2, Pt(1, 1)), Pt(2, 1), Pt(1, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.in)
			if !got.Approx(tt.expect, 1e-9) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.expect)
			}
		})
	}
}

func TestMatrix_Multiply(t *testing.T) {
	// m.Multiply(n) applies n first, then m.
	m := Translation(10, 0).Multiply(Scaling(2, 2))
	got := m.TransformPoint(Pt(1, 1))
	want := Pt(12, 2)
	if !got.Approx(want, 1e-10) {
		t.Errorf("translate*scale applied to (1,1) = %v, want %v", got, want)
	}
}

func TestMatrix_TransformVec(t *testing.T) {
	// Vectors ignore the translation column.
	m := Translation(100, 100).Multiply(Scaling(2, 3))
	got := m.TransformVec(V2(1, 1))
	want := V2(2, 3)
	if !got.Approx(want, 1e-10) {
		t.Errorf("TransformVec(1,1) = %v, want %v", got, want)
	}
}

func TestMatrix_Invert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"translation", Translation(5, -3)},
		{"scaling", Scaling(2, 0.5)},
		{"rotation", Rotation(0.7)},
		{"composite", Translation(3, 4).Multiply(Rotation(1.1)).Multiply(Scaling(2, 3))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := tt.m.Invert()
			p := Pt(7, -2)
			got := inv.TransformPoint(tt.m.TransformPoint(p))
			if !got.Approx(p, 1e-9) {
				t.Errorf("Invert round trip = %v, want %v", got, p)
			}
		})
	}
}

func TestMatrix_InvertSingular(t *testing.T) {
	m := Scaling(0, 0).Invert()
	if !m.IsIdentity() {
		t.Errorf("Invert of singular matrix = %+v, want identity", m)
	}
}
