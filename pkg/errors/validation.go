package errors

import (
	"strings"
	"unicode"
)

// ValidateScale validates the numerator and denominator of a plan scale.
// Both terms must be strictly positive; 1:100 means one meter of data per
// centimeter of paper.
func ValidateScale(num, den int) error {
	if num <= 0 || den <= 0 {
		return New(ErrCodeInvalidLayout, "scale terms must be positive, got %d:%d", num, den)
	}
	return nil
}

// ValidateDPI validates a raster export resolution.
func ValidateDPI(dpi float64) error {
	if dpi <= 0 {
		return New(ErrCodeInvalidConfig, "dpi must be positive, got %g", dpi)
	}
	const maxDPI = 2400
	if dpi > maxDPI {
		return New(ErrCodeInvalidConfig, "dpi too large (max %d), got %g", maxDPI, dpi)
	}
	return nil
}

// ValidateFileName validates an artifact file name. It ensures the name is
// a simple basename without path components or control characters, so plan
// titles can be turned into PNG file names safely.
func ValidateFileName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPath, "file name cannot be empty")
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidPath, "file name cannot contain path separators: %q", name)
	}

	for _, r := range name {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "file name contains invalid control characters")
		}
	}

	if name == "." || name == ".." {
		return New(ErrCodeInvalidPath, "file name cannot be a directory reference: %q", name)
	}

	return nil
}

// ValidateOutputPath validates a user-supplied output path for exports.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	return nil
}
