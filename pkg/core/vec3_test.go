package core

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func vecNear(a, b Vec3) bool {
	return a.Subtract(b).Length() <= tolerance
}

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, -3, 9)},
		{"Subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"Cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"Lerp midpoint", NewVec3(1, 1, 1).Lerp(NewVec3(0.5, 0.7, 1), 0.5), NewVec3(0.75, 0.85, 1)},
		{"Clamp", NewVec3(-0.5, 0.5, 1.5).Clamp(0, 1), NewVec3(0, 0.5, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecNear(tt.got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestVec3_DotAndLength(t *testing.T) {
	v := NewVec3(3, 4, 12)

	if got := v.Dot(NewVec3(1, 1, 1)); got != 19 {
		t.Errorf("Expected dot 19, got %f", got)
	}
	if got := v.LengthSquared(); got != 169 {
		t.Errorf("Expected squared length 169, got %f", got)
	}
	if got := v.Length(); math.Abs(got-13) > tolerance {
		t.Errorf("Expected length 13, got %f", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	n := NewVec3(0, -5, 0).Normalize()
	if !vecNear(n, NewVec3(0, -1, 0)) {
		t.Errorf("Expected (0,-1,0), got %v", n)
	}

	n = NewVec3(1, 2, 2).Normalize()
	if math.Abs(n.Length()-1) > tolerance {
		t.Errorf("Expected unit length, got %f", n.Length())
	}

	if z := (Vec3{}).Normalize(); !z.IsZero() {
		t.Errorf("Zero vector should normalize to zero, got %v", z)
	}
}

func TestVec3_Reflect(t *testing.T) {
	normal := NewVec3(0, 1, 0)

	tests := []struct {
		name     string
		incoming Vec3
		expected Vec3
	}{
		{"head on", NewVec3(0, -1, 0), NewVec3(0, 1, 0)},
		{"45 degrees", NewVec3(1, -1, 0), NewVec3(1, 1, 0)},
		{"grazing", NewVec3(1, 0, 0), NewVec3(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.incoming.Reflect(normal)
			if !vecNear(got, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestVec3_IsFinite(t *testing.T) {
	if !NewVec3(1, 2, 3).IsFinite() {
		t.Error("Expected finite vector")
	}
	if NewVec3(math.NaN(), 0, 0).IsFinite() {
		t.Error("NaN component should not be finite")
	}
	if NewVec3(0, math.Inf(-1), 0).IsFinite() {
		t.Error("Inf component should not be finite")
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 0, 0), NewVec3(0, 2, 0))

	if got := ray.At(0); !vecNear(got, ray.Origin) {
		t.Errorf("At(0) should be origin, got %v", got)
	}
	if got := ray.At(1.5); !vecNear(got, NewVec3(1, 3, 0)) {
		t.Errorf("Expected (1,3,0), got %v", got)
	}
}
