package errors

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// ValidateOutputPath validates a user-supplied output path.
//
// Absolute and relative paths are both allowed (output goes wherever the
// user points it), but the path must be non-empty, reasonably short and free
// of control characters.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 1024
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "output path must name a file, not a directory: %q", path)
	}

	return nil
}

// presetNameRegex matches preset identifiers ("square", "hexagon-2").
var presetNameRegex = regexp.MustCompile(`^[a-z][a-z0-9-]*$`)

// ValidatePresetName validates the syntax of a preset name. Whether the
// preset exists is checked by the geometry package.
func ValidatePresetName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPreset, "preset name cannot be empty")
	}
	if !presetNameRegex.MatchString(name) {
		return New(ErrCodeInvalidPreset, "invalid preset name: %q", name)
	}
	return nil
}

// ValidateFinite rejects NaN and infinite values.
func ValidateFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be finite, got %v", field, v)
	}
	return nil
}
