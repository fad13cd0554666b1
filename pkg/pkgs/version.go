package pkgs

import (
	"regexp"
	"strconv"
)

// NoPatchlevel is the patchlevel of a version string without a .p<N> suffix.
const NoPatchlevel = -1

// versionPatchlevelRE matches a version string carrying a trailing
// build-system patchlevel, e.g. "3.11.2.p1". The version part may itself
// contain dots and is not validated further.
var versionPatchlevelRE = regexp.MustCompile(`^(.*)\.p([0-9]+)$`)

// ParseVersion splits a raw version string into the upstream version and the
// build-system patchlevel.
//
// If raw has no trailing .p<N> suffix, the whole string is the version and
// the patchlevel is [NoPatchlevel]. The caller is responsible for trimming
// surrounding whitespace and for distinguishing an absent version file from
// a declared version.
func ParseVersion(raw string) (version string, patchlevel int) {
	m := versionPatchlevelRE.FindStringSubmatch(raw)
	if m == nil {
		return raw, NoPatchlevel
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		// Unreachable: the regexp only admits digits.
		return raw, NoPatchlevel
	}
	return m[1], n
}

// FormatVersion is the inverse of [ParseVersion]: it reattaches a patchlevel
// suffix to a version string. A patchlevel of [NoPatchlevel] yields the
// version unchanged.
func FormatVersion(version string, patchlevel int) string {
	if patchlevel == NoPatchlevel {
		return version
	}
	return version + ".p" + strconv.Itoa(patchlevel)
}
