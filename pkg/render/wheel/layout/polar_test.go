package layout

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func approx(got, want float64) bool {
	return math.Abs(got-want) <= tolerance
}

func TestPolarPointAxes(t *testing.T) {
	tests := []struct {
		name   string
		slice  float64
		radius float64
		wantX  float64
		wantY  float64
	}{
		{
			name:   "zero angle points right",
			slice:  0,
			radius: 240,
			wantX:  480,
			wantY:  240,
		},
		{
			name:   "quarter turn points up",
			slice:  3,
			radius: 240,
			wantX:  240,
			wantY:  0,
		},
		{
			name:   "half turn points left",
			slice:  6,
			radius: 240,
			wantX:  0,
			wantY:  240,
		},
		{
			name:   "three quarter turn points down",
			slice:  9,
			radius: 240,
			wantX:  240,
			wantY:  480,
		},
		{
			name:   "unit radius",
			slice:  0,
			radius: 1,
			wantX:  2,
			wantY:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PolarPoint(tt.slice, tt.radius, 0)
			if !approx(got.X, tt.wantX) || !approx(got.Y, tt.wantY) {
				t.Errorf("PolarPoint(%v, %v, 0) = (%v, %v), want (%v, %v)",
					tt.slice, tt.radius, got.X, got.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestPolarPointSliceOffsetEquivalence(t *testing.T) {
	bySlice := PolarPoint(1, 240, 0)
	byOffset := PolarPoint(0, 240, 30)
	if !approx(bySlice.X, byOffset.X) || !approx(bySlice.Y, byOffset.Y) {
		t.Errorf("slice 1 = (%v, %v), offset 30 = (%v, %v), want equal",
			bySlice.X, bySlice.Y, byOffset.X, byOffset.Y)
	}
}

func TestRingPoint(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		inset  float64
		offset float64
		wantX  float64
		wantY  float64
	}{
		{
			name:   "zero inset matches polar point",
			radius: 240,
			inset:  0,
			offset: 0,
			wantX:  480,
			wantY:  240,
		},
		{
			name:   "inset shrinks toward center",
			radius: 240,
			inset:  40,
			offset: 0,
			wantX:  440,
			wantY:  240,
		},
		{
			name:   "negative inset reaches past the rim",
			radius: 240,
			inset:  -3,
			offset: 0,
			wantX:  483,
			wantY:  240,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RingPoint(tt.radius, tt.inset, tt.offset)
			if !approx(got.X, tt.wantX) || !approx(got.Y, tt.wantY) {
				t.Errorf("RingPoint(%v, %v, %v) = (%v, %v), want (%v, %v)",
					tt.radius, tt.inset, tt.offset, got.X, got.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestRotationOffset(t *testing.T) {
	if got := RotationOffset(187.5); got != 172.5 {
		t.Errorf("RotationOffset(187.5) = %v, want 172.5", got)
	}
	if got := RotationOffset(0); got != 360 {
		t.Errorf("RotationOffset(0) = %v, want 360", got)
	}
}

func TestGlyphOffset(t *testing.T) {
	tests := []struct {
		name    string
		seventh float64
		absPos  float64
		delta   float64
		want    float64
	}{
		{
			name:    "no adjustment",
			seventh: 187.6,
			absPos:  100.9,
			delta:   0,
			want:    -87,
		},
		{
			name:    "positive delta crosses a whole degree",
			seventh: 187.6,
			absPos:  100.9,
			delta:   2.5,
			want:    -84,
		},
		{
			name:    "negative adjusted position truncates toward zero",
			seventh: 10.5,
			absPos:  2.2,
			delta:   -3.4,
			want:    -11,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GlyphOffset(tt.seventh, tt.absPos, tt.delta); got != tt.want {
				t.Errorf("GlyphOffset(%v, %v, %v) = %v, want %v",
					tt.seventh, tt.absPos, tt.delta, got, tt.want)
			}
		})
	}
}

func TestOuterOffset(t *testing.T) {
	tests := []struct {
		name    string
		seventh float64
		absPos  float64
		want    float64
	}{
		{
			name:    "wraps past a full turn",
			seventh: 180,
			absPos:  270,
			want:    90,
		},
		{
			name:    "keeps fractional degrees",
			seventh: 180.5,
			absPos:  10.25,
			want:    189.75,
		},
		{
			name:    "exactly a full turn stays put",
			seventh: 10,
			absPos:  10,
			want:    360,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OuterOffset(tt.seventh, tt.absPos); !approx(got, tt.want) {
				t.Errorf("OuterOffset(%v, %v) = %v, want %v", tt.seventh, tt.absPos, got, tt.want)
			}
		})
	}
}
