package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestAABBContains(t *testing.T) {
	box := AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}}

	tests := []struct {
		name   string
		point  mgl64.Vec3
		inside bool
	}{
		{name: "center", point: mgl64.Vec3{0.5, 0.5, 0.5}, inside: true},
		{name: "min corner (boundary is inclusive)", point: mgl64.Vec3{0, 0, 0}, inside: true},
		{name: "max corner (boundary is inclusive)", point: mgl64.Vec3{1, 1, 1}, inside: true},
		{name: "on a face", point: mgl64.Vec3{0.5, 0.5, 1}, inside: true},
		{name: "outside on X (positive)", point: mgl64.Vec3{1.01, 0.5, 0.5}, inside: false},
		{name: "outside on X (negative)", point: mgl64.Vec3{-0.01, 0.5, 0.5}, inside: false},
		{name: "outside on Y (positive)", point: mgl64.Vec3{0.5, 1.01, 0.5}, inside: false},
		{name: "outside on Y (negative)", point: mgl64.Vec3{0.5, -0.01, 0.5}, inside: false},
		{name: "outside on Z (positive)", point: mgl64.Vec3{0.5, 0.5, 1.01}, inside: false},
		{name: "outside on Z (negative)", point: mgl64.Vec3{0.5, 0.5, -0.01}, inside: false},
		{name: "outside on all axes", point: mgl64.Vec3{-2, 5, 9}, inside: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Contains(tt.point); got != tt.inside {
				t.Errorf("Contains(%v) = %v, want %v", tt.point, got, tt.inside)
			}
		})
	}
}

func TestAABBExtend(t *testing.T) {
	box := EmptyAABB()
	if box.Contains(mgl64.Vec3{0, 0, 0}) {
		t.Fatal("empty box should contain nothing")
	}

	box.Extend(mgl64.Vec3{1, -2, 3})
	box.Extend(mgl64.Vec3{-1, 2, -3})

	if box.Min != (mgl64.Vec3{-1, -2, -3}) {
		t.Errorf("Min = %v, want (-1,-2,-3)", box.Min)
	}
	if box.Max != (mgl64.Vec3{1, 2, 3}) {
		t.Errorf("Max = %v, want (1,2,3)", box.Max)
	}
	if !box.Contains(mgl64.Vec3{0, 0, 0}) {
		t.Error("extended box should contain the origin")
	}
}

func TestAABBUnion(t *testing.T) {
	a := AABB{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}}
	b := AABB{Min: mgl64.Vec3{2, -1, 0}, Max: mgl64.Vec3{3, 0.5, 4}}

	a.Union(b)

	if a.Min != (mgl64.Vec3{0, -1, 0}) {
		t.Errorf("Min = %v, want (0,-1,0)", a.Min)
	}
	if a.Max != (mgl64.Vec3{3, 1, 4}) {
		t.Errorf("Max = %v, want (3,1,4)", a.Max)
	}
}

func TestAABBCenterSize(t *testing.T) {
	box := AABB{Min: mgl64.Vec3{-1, 0, 2}, Max: mgl64.Vec3{1, 4, 2}}
	if box.Center() != (mgl64.Vec3{0, 2, 2}) {
		t.Errorf("Center = %v, want (0,2,2)", box.Center())
	}
	if box.Size() != (mgl64.Vec3{2, 4, 0}) {
		t.Errorf("Size = %v, want (2,4,0)", box.Size())
	}
}
