package pkgs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/srcforge/srcforge/pkg/errors"
)

// Type classifies how a package participates in the build.
type Type string

// Recognized package types.
const (
	TypeBase         Type = "base"
	TypeStandard     Type = "standard"
	TypeOptional     Type = "optional"
	TypeExperimental Type = "experimental"
)

// ParseType validates the content of a type file.
func ParseType(s string) (Type, error) {
	switch t := Type(s); t {
	case TypeBase, TypeStandard, TypeOptional, TypeExperimental:
		return t, nil
	}
	return "", errors.New(errors.ErrCodeInvalidType, "unrecognized package type: %q", s)
}

// Package is the metadata snapshot of one package directory.
//
// A Package is read eagerly at load time and never mutated afterwards; it is
// safe to share between goroutines. All optional metadata reports absence as
// zero values, never as errors.
type Package struct {
	name string
	path string
	typ  Type

	md5   string
	sha1  string
	cksum string

	tarballPattern     string
	upstreamURLPattern string
	tarballOwner       string

	version    string
	patchlevel int

	installRequires string

	depsLine          string
	depsOrderOnlyLine string
	depsCheckLine     string
}

// Name returns the package name, the base name of the package directory.
func (p *Package) Name() string { return p.name }

// Path returns the absolute package directory.
func (p *Package) Path() string { return p.path }

// Type returns the package type.
func (p *Package) Type() Type { return p.typ }

// MD5 returns the recorded MD5 checksum, or "" if none is recorded.
// Ancient; prefer SHA1.
func (p *Package) MD5() string { return p.md5 }

// SHA1 returns the recorded SHA1 checksum, or "" if none is recorded.
func (p *Package) SHA1() string { return p.sha1 }

// CKSum returns the recorded cksum checksum, or "" if none is recorded.
// Ancient; prefer SHA1.
func (p *Package) CKSum() string { return p.cksum }

// TarballPattern returns the tarball filename template, with placeholder
// variables unexpanded, or "" if none is recorded.
func (p *Package) TarballPattern() string { return p.tarballPattern }

// UpstreamURLPattern returns the upstream URL template, with placeholder
// variables unexpanded, or "" if none is recorded.
func (p *Package) UpstreamURLPattern() string { return p.upstreamURLPattern }

// TarballOwnerName returns the name of the directory that actually owns the
// checksum data. It differs from Name only when the package directory or its
// checksums.ini is a symbolic link onto another package.
func (p *Package) TarballOwnerName() string { return p.tarballOwner }

// HasVersion reports whether the package declares a version.
func (p *Package) HasVersion() bool { return p.version != "" }

// Version returns the upstream version, excluding the patchlevel, or "" if
// the package declares no version.
func (p *Package) Version() string { return p.version }

// Patchlevel returns the build-system patchlevel: the N of a trailing .p<N>
// version suffix, or NoPatchlevel if the version has no such suffix. Only
// meaningful when HasVersion is true.
func (p *Package) Patchlevel() int { return p.patchlevel }

// FullVersion returns the version with the patchlevel suffix reattached,
// e.g. "3.11.2.p1", or "" if no version is declared.
func (p *Package) FullVersion() string {
	if !p.HasVersion() {
		return ""
	}
	return FormatVersion(p.version, p.patchlevel)
}

// InstallRequires returns the raw install-requires text, or "" if absent.
func (p *Package) InstallRequires() string { return p.installRequires }

// DistributionName returns the external-ecosystem distribution name: the
// first token of the first non-blank, non-comment line of the
// install-requires text. Returns "" for packages without one.
func (p *Package) DistributionName() string {
	for _, line := range strings.Split(p.installRequires, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			continue
		}
		if fields := strings.Fields(line); len(fields) > 0 {
			return fields[0]
		}
	}
	return ""
}

// Dependencies returns the package names of the ordinary dependencies.
func (p *Package) Dependencies() []string {
	ordinary, _ := partitionDeps(p.depsLine)
	return tokens(ordinary)
}

// DependenciesOrderOnly returns the package names of the order-only
// dependencies: the tokens after '|' on the main dependency line, followed by
// the tokens of the dependencies_order_only file, in that order.
func (p *Package) DependenciesOrderOnly() []string {
	_, orderOnly := partitionDeps(p.depsLine)
	return append(tokens(orderOnly), tokens(p.depsOrderOnlyLine)...)
}

// DependenciesCheck returns the package names of the check-phase dependencies.
func (p *Package) DependenciesCheck() []string {
	return tokens(p.depsCheckLine)
}

// VersionMajor returns the first dot-separated version component.
func (p *Package) VersionMajor() (string, error) { return p.versionComponent(0, "major") }

// VersionMinor returns the second dot-separated version component.
func (p *Package) VersionMinor() (string, error) { return p.versionComponent(1, "minor") }

// VersionMicro returns the third dot-separated version component.
func (p *Package) VersionMicro() (string, error) { return p.versionComponent(2, "micro") }

func (p *Package) versionComponent(i int, label string) (string, error) {
	if !p.HasVersion() {
		return "", errors.New(errors.ErrCodeMissingVersion,
			"package %s declares no version", p.name)
	}
	parts := strings.Split(p.version, ".")
	if i >= len(parts) {
		return "", errors.New(errors.ErrCodeVersionComponent,
			"package %s version %q has no %s component", p.name, p.version, label)
	}
	return parts[i], nil
}

// lookupVar resolves a substitution variable against the package's version.
func (p *Package) lookupVar(name string) (string, error) {
	switch name {
	case "VERSION":
		if !p.HasVersion() {
			return "", errors.New(errors.ErrCodeMissingVersion,
				"package %s declares no version", p.name)
		}
		return p.version, nil
	case "VERSION_MAJOR":
		return p.VersionMajor()
	case "VERSION_MINOR":
		return p.VersionMinor()
	case "VERSION_MICRO":
		return p.VersionMicro()
	}
	return "", errors.New(errors.ErrCodeInternal, "unknown substitution variable %q", name)
}

// TarballFilename resolves the tarball filename template against the
// package's version. Returns "" with a nil error if no pattern is recorded.
func (p *Package) TarballFilename() (string, error) {
	if p.tarballPattern == "" {
		return "", nil
	}
	return substitute(p.tarballPattern, p.lookupVar)
}

// UpstreamURL resolves the upstream URL template against the package's
// version. Returns "" with a nil error if no pattern is recorded.
func (p *Package) UpstreamURL() (string, error) {
	if p.upstreamURLPattern == "" {
		return "", nil
	}
	return substitute(p.upstreamURLPattern, p.lookupVar)
}

// SameTarball reports whether two packages resolve to the same tarball
// filename. This is the package equality of the build system: an aliased
// package equals its alias target even though the names differ.
func (p *Package) SameTarball(o *Package) (bool, error) {
	a, err := p.TarballFilename()
	if err != nil {
		return false, err
	}
	b, err := o.TarballFilename()
	if err != nil {
		return false, err
	}
	return a == b, nil
}

// HasFile reports whether the named file exists in the package directory.
func (p *Package) HasFile(filename string) bool {
	_, err := os.Stat(filepath.Join(p.path, filename))
	return err == nil
}

// String implements fmt.Stringer.
func (p *Package) String() string { return "package " + p.name }
