package geometry

import (
	"math"
	"testing"
)

func TestVector3Add(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	result := v1.Add(v2)

	expected := NewVector3(5, 7, 9)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Sub(t *testing.T) {
	v1 := NewVector3(5, 7, 9)
	v2 := NewVector3(1, 2, 3)
	result := v1.Sub(v2)

	expected := NewVector3(4, 5, 6)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Length(t *testing.T) {
	v := NewVector3(3, 4, 0)
	length := v.Length()

	expected := 5.0
	if math.Abs(length-expected) > 1e-10 {
		t.Errorf("Length failed: expected %v, got %v", expected, length)
	}
}

func TestVector3Distance(t *testing.T) {
	v1 := NewVector3(0, 0, 0)
	v2 := NewVector3(3, 4, 0)
	distance := v1.Distance(v2)

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestVector3Normalize(t *testing.T) {
	v := NewVector3(3, 4, 0)
	normalized := v.Normalize()

	expectedLength := 1.0
	actualLength := normalized.Length()

	if math.Abs(actualLength-expectedLength) > 1e-10 {
		t.Errorf("Normalize failed: expected length %v, got %v", expectedLength, actualLength)
	}
}

func TestVector3Cross(t *testing.T) {
	v1 := NewVector3(1, 0, 0)
	v2 := NewVector3(0, 1, 0)
	result := v1.Cross(v2)

	expected := NewVector3(0, 0, 1)
	if result != expected {
		t.Errorf("Cross failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Dot(t *testing.T) {
	v1 := NewVector3(1, 2, 3)
	v2 := NewVector3(4, 5, 6)
	result := v1.Dot(v2)

	expected := 32.0 // 1*4 + 2*5 + 3*6 = 32
	if math.Abs(result-expected) > 1e-10 {
		t.Errorf("Dot failed: expected %v, got %v", expected, result)
	}
}

func TestVector3MinMax(t *testing.T) {
	v1 := NewVector3(1, 5, -3)
	v2 := NewVector3(4, 2, -1)

	if got, expected := v1.Min(v2), NewVector3(1, 2, -3); got != expected {
		t.Errorf("Min failed: expected %v, got %v", expected, got)
	}
	if got, expected := v1.Max(v2), NewVector3(4, 5, -1); got != expected {
		t.Errorf("Max failed: expected %v, got %v", expected, got)
	}
}

func TestVector3DivElem(t *testing.T) {
	result := NewVector3(2, 9, -4).DivElem(NewVector3(2, 3, 8))

	expected := NewVector3(1, 3, -0.5)
	if result != expected {
		t.Errorf("DivElem failed: expected %v, got %v", expected, result)
	}
}

func TestVector3Axis(t *testing.T) {
	v := NewVector3(7, 8, 9)
	for i, expected := range []float64{7, 8, 9} {
		if got := v.Axis(i); got != expected {
			t.Errorf("Axis(%d) failed: expected %v, got %v", i, expected, got)
		}
	}
}

func TestVector3String(t *testing.T) {
	v := NewVector3(1, 2.5, -3)

	expected := "(1, 2.5, -3)"
	if v.String() != expected {
		t.Errorf("String failed: expected %q, got %q", expected, v.String())
	}
}

func TestVector3Vec3RoundTrip(t *testing.T) {
	v := NewVector3(1, -2, 3)
	if got := FromVec3(v.Vec3()); got != v {
		t.Errorf("Vec3 round trip failed: expected %v, got %v", v, got)
	}
}
