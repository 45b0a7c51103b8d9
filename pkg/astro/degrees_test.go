package astro

import (
	"math"
	"testing"
)

func TestNormalizeDegree(t *testing.T) {
	tests := []struct {
		name     string
		angle    float64
		expected float64
	}{
		{"already normalized", 123.45, 123.45},
		{"zero", 0, 0},
		{"exactly 360", 360, 0},
		{"full turn plus", 365, 5},
		{"two full turns", 720, 0},
		{"negative", -30, 330},
		{"negative full turn", -360, 0},
		{"large negative", -725, 355},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDegree(tt.angle)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("NormalizeDegree(%v) = %v, want %v", tt.angle, got, tt.expected)
			}
		})
	}
}

func TestNormalizeDegreeNeverReturns360(t *testing.T) {
	for _, angle := range []float64{360, 720, -360, 0} {
		if got := NormalizeDegree(angle); got != 0 {
			t.Errorf("NormalizeDegree(%v) = %v, want exactly 0", angle, got)
		}
	}
}

func TestDegreeDiff(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		expected float64
	}{
		{"simple", 10, 40, 30},
		{"symmetric", 40, 10, 30},
		{"across zero", 350, 10, 20},
		{"opposition", 0, 180, 180},
		{"just past opposition", 0, 190, 170},
		{"same angle", 42, 42, 0},
		{"fractional", 100, 220.5, 120.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DegreeDiff(tt.a, tt.b)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("DegreeDiff(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.expected)
			}
			// Never more than a half turn
			if got < 0 || got > 180 {
				t.Errorf("DegreeDiff(%v, %v) = %v outside [0, 180]", tt.a, tt.b, got)
			}
		})
	}
}

func TestDegreeSum(t *testing.T) {
	if got := DegreeSum(350, 20); got != 10 {
		t.Errorf("DegreeSum(350, 20) = %v, want 10", got)
	}
	if got := DegreeSum(180, 180); got != 0 {
		t.Errorf("DegreeSum(180, 180) = %v, want 0", got)
	}
}

func TestFormatDegrees(t *testing.T) {
	tests := []struct {
		name     string
		dec      float64
		format   DegreeFormat
		expected string
	}{
		{"degree only", 17.91, DegreeOnly, "17°"},
		{"degree minute", 17.91, DegreeMinute, "17°54'"},
		{"degree minute second", 17.9089, DegreeMinuteSecond, "17°54'32\""},
		{"zero", 0, DegreeMinute, "0°00'"},
		{"whole degrees", 29, DegreeMinuteSecond, "29°00'00\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDegrees(tt.dec, tt.format); got != tt.expected {
				t.Errorf("FormatDegrees(%v, %d) = %q, want %q", tt.dec, tt.format, got, tt.expected)
			}
		})
	}
}

func TestFormatLatitude(t *testing.T) {
	if got := FormatLatitude(52.123611, "N", "S"); got != "52°7'25\" N" {
		t.Errorf("FormatLatitude = %q, want %q", got, "52°7'25\" N")
	}
	if got := FormatLatitude(-33.865, "N", "S"); got != "33°51'54\" S" {
		t.Errorf("FormatLatitude = %q, want %q", got, "33°51'54\" S")
	}
}

func TestFormatLongitude(t *testing.T) {
	if got := FormatLongitude(13.405, "E", "W"); got != "13°24'18\" E" {
		t.Errorf("FormatLongitude = %q, want %q", got, "13°24'18\" E")
	}
	if got := FormatLongitude(-0.1278, "E", "W"); got != "0°7'40\" W" {
		t.Errorf("FormatLongitude = %q, want %q", got, "0°7'40\" W")
	}
}
