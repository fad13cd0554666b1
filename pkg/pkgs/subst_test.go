package pkgs

import (
	"testing"

	"github.com/srcforge/srcforge/pkg/errors"
)

// lookupFor builds a lookup over the version components of v.
func lookupFor(v string) func(string) (string, error) {
	p := &Package{name: "test", version: v, patchlevel: NoPatchlevel}
	return p.lookupVar
}

func TestSubstitute(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		version string
		want    string
	}{
		{
			name:    "bare version",
			pattern: "pkg-VERSION.tar.gz",
			version: "3.11.2",
			want:    "pkg-3.11.2.tar.gz",
		},
		{
			name:    "braced version",
			pattern: "pkg-${VERSION}.tar.bz2",
			version: "3.11.2",
			want:    "pkg-3.11.2.tar.bz2",
		},
		{
			name:    "major and minor only",
			pattern: "pkg-${VERSION_MAJOR}.${VERSION_MINOR}.tar.gz",
			version: "3.11.2",
			want:    "pkg-3.11.tar.gz",
		},
		{
			name:    "all components",
			pattern: "v/VERSION_MAJOR/VERSION_MINOR/VERSION_MICRO",
			version: "1.2.3",
			want:    "v/1/2/3",
		},
		{
			name:    "repeated occurrences",
			pattern: "VERSION/pkg-VERSION.tgz",
			version: "8.1",
			want:    "8.1/pkg-8.1.tgz",
		},
		{
			name:    "mixed braced and bare",
			pattern: "${VERSION_MAJOR}-VERSION",
			version: "4.5.6",
			want:    "4-4.5.6",
		},
		{
			name:    "no tokens",
			pattern: "static-name.tar.gz",
			version: "1.0",
			want:    "static-name.tar.gz",
		},
		{
			name:    "url template",
			pattern: "https://www.example.org/ftp/v${VERSION_MAJOR}.${VERSION_MINOR}/pkg-${VERSION}.tar.xz",
			version: "3.11.2",
			want:    "https://www.example.org/ftp/v3.11/pkg-3.11.2.tar.xz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := substitute(tt.pattern, lookupFor(tt.version))
			if err != nil {
				t.Fatalf("substitute failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("substitute(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestSubstitute_ExpandsExactlyOnce(t *testing.T) {
	// Substitution is idempotent on its own output: once no token spelling
	// remains, running the engine again changes nothing.
	lookup := lookupFor("3.11.2")
	got, err := substitute("pkg-${VERSION_MAJOR}.${VERSION_MINOR}.tar.gz", lookup)
	if err != nil {
		t.Fatal(err)
	}
	if got != "pkg-3.11.tar.gz" {
		t.Errorf("got %q, want %q", got, "pkg-3.11.tar.gz")
	}
	again, err := substitute(got, lookup)
	if err != nil {
		t.Fatal(err)
	}
	if again != got {
		t.Errorf("second pass changed output: %q -> %q", got, again)
	}
}

func TestSubstitute_MissingComponent(t *testing.T) {
	_, err := substitute("pkg-VERSION_MICRO.tar.gz", lookupFor("7.0"))
	if !errors.Is(err, errors.ErrCodeVersionComponent) {
		t.Errorf("error code = %v, want VERSION_COMPONENT", errors.GetCode(err))
	}
}

func TestSubstitute_MissingVersion(t *testing.T) {
	_, err := substitute("pkg-${VERSION}.tar.gz", lookupFor(""))
	if !errors.Is(err, errors.ErrCodeMissingVersion) {
		t.Errorf("error code = %v, want MISSING_VERSION", errors.GetCode(err))
	}
}
