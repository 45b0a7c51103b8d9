package errors

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// ValidateSubjectName validates a chart subject's display name.
// It rejects names that could break SVG output or downstream storage.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No null bytes
//   - Maximum length of 256 characters
//
// Truncation for display purposes is handled by the renderer, not here.
func ValidateSubjectName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidSubject, "subject name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidSubject, "subject name too long (max 256 characters)")
	}

	// Check for control characters and null bytes
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidSubject, "subject name contains invalid control characters")
		}
	}

	return nil
}

// ValidatePath validates an output file path for safety.
// It prevents path traversal attacks and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	// No backslashes (potential Windows path injection)
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// ValidateDegree validates an ecliptic coordinate value.
// NaN and infinite values cannot be placed on a wheel and are rejected
// with an InvalidPositionError carrying the offending point and field.
func ValidateDegree(point, field string, value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Wrap(ErrCodeInvalidPosition, &InvalidPositionError{
			Point: point,
			Field: field,
			Value: value,
		}, "cannot lay out %s", point)
	}
	return nil
}

// ValidateLatitude validates a geographic latitude in decimal degrees.
func ValidateLatitude(lat float64) error {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return New(ErrCodeInvalidInput, "latitude out of range [-90, 90]: %v", lat)
	}
	return nil
}

// ValidateLongitude validates a geographic longitude in decimal degrees.
func ValidateLongitude(lng float64) error {
	if math.IsNaN(lng) || lng < -180 || lng > 180 {
		return New(ErrCodeInvalidInput, "longitude out of range [-180, 180]: %v", lng)
	}
	return nil
}

// chartIDRegex matches chart identifiers as produced by the store (UUID v4).
var chartIDRegex = regexp.MustCompile(`^[a-f0-9]{8}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{4}-[a-f0-9]{12}$`)

// ValidateChartID validates a stored chart identifier.
func ValidateChartID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "chart ID cannot be empty")
	}

	if !chartIDRegex.MatchString(id) {
		return New(ErrCodeInvalidInput, "invalid chart ID: %q", id)
	}

	return nil
}

// themeNameRegex matches valid theme names (lowercase identifiers).
var themeNameRegex = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// ValidateThemeName validates a color theme name.
func ValidateThemeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidTheme, "theme name cannot be empty")
	}

	if !themeNameRegex.MatchString(name) {
		return New(ErrCodeInvalidTheme, "invalid theme name: %q", name)
	}

	return nil
}
