package errors

import (
	"strings"
	"unicode"
)

// ValidatePackageName validates a package name for safety and correctness.
// Package names key directories under the package root, so anything that
// could escape the root is rejected.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters or null bytes
//   - No path separators or traversal sequences
//   - Maximum length of 256 characters
func ValidatePackageName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPackage, "package name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidPackage, "package name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPackage, "package name contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidPackage, "package name cannot contain path separators")
	}
	if name == "." || name == ".." || strings.Contains(name, "\x00") {
		return New(ErrCodeInvalidPackage, "package name contains invalid characters: %q", name)
	}

	return nil
}

// ValidateRoot validates a package root path.
// The root must be non-empty; existence is checked by the registry at use
// time, not here.
func ValidateRoot(root string) error {
	if root == "" {
		return New(ErrCodeInvalidConfig, "package root not set (use --root, SRCFORGE_ROOT, or a config file)")
	}
	for _, r := range root {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "package root contains invalid characters")
		}
	}
	return nil
}
