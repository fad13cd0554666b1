package errors

import (
	"strings"
	"testing"
)

func TestValidatePackageName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "python3", false},
		{"with underscore", "flint_arb", false},
		{"with dash", "4ti2-tools", false},
		{"empty", "", true},
		{"slash", "foo/bar", true},
		{"backslash", "foo\\bar", true},
		{"dot", ".", true},
		{"dotdot", "..", true},
		{"control char", "foo\x01bar", true},
		{"too long", strings.Repeat("a", 257), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePackageName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePackageName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPackage) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidPackage)
			}
		})
	}
}

func TestValidateRoot(t *testing.T) {
	if err := ValidateRoot("/srv/build/pkgs"); err != nil {
		t.Errorf("ValidateRoot = %v, want nil", err)
	}
	if err := ValidateRoot(""); !Is(err, ErrCodeInvalidConfig) {
		t.Errorf("ValidateRoot(\"\") code = %v, want INVALID_CONFIG", GetCode(err))
	}
}
