package math

import (
	"math"
	"testing"
)

func TestVec2Add(t *testing.T) {
	got := Vec2{1, 2}.Add(Vec2{3, 4})
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Mul(t *testing.T) {
	got := Vec2{800, 600}.Mul(Vec2{0.5, 0.25})
	want := Vec2{400, 150}
	if got != want {
		t.Errorf("Vec2.Mul() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	got := Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0})
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3AngleBetween(t *testing.T) {
	tests := []struct {
		a, b Vec3
		want float64
	}{
		{Vec3UnitX, Vec3UnitX, 0},
		{Vec3UnitX, Vec3UnitY, math.Pi / 2},
		{Vec3Up, Vec3Down, math.Pi},
		{Vec3{1, 1, 0}, Vec3UnitX.Scale(3), math.Pi / 4},
		{Vec3{}, Vec3UnitX, 0},
	}
	for _, tt := range tests {
		got := tt.a.AngleBetween(tt.b)
		if math.Abs(float64(got)-tt.want) > 1e-5 {
			t.Errorf("AngleBetween(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestVec3IsFinite(t *testing.T) {
	if !(Vec3{1, 2, 3}).IsFinite() {
		t.Error("finite vector reported as non-finite")
	}
	nan := float32(math.NaN())
	if (Vec3{nan, 0, 0}).IsFinite() {
		t.Error("NaN vector reported as finite")
	}
	inf := float32(math.Inf(1))
	if (Vec3{0, 0, inf}).IsFinite() {
		t.Error("Inf vector reported as finite")
	}
}
