// Package pkgs models package metadata for a source-distribution build tree.
//
// # Overview
//
// Each package is a subdirectory of a package root. The directory's base name
// is the package name, and a handful of small text files inside it carry the
// metadata:
//
//	type                      package type (base/standard/optional/experimental)
//	checksums.ini             var=value lines: md5, sha1, cksum, tarball, upstream_url
//	package-version.txt       single line, optionally with a trailing .p<N> patchlevel
//	install-requires.txt      free text naming the upstream distribution
//	dependencies              whitespace tokens, optional '|' separating order-only deps
//	dependencies_check        whitespace tokens, check-phase dependencies
//	dependencies_order_only   whitespace tokens, additional order-only deps
//
// A directory without a type file is not a package and is skipped during
// enumeration. Missing optional files are absence, not errors.
//
// # Loading
//
//	reg := pkgs.New("/srv/build/pkgs")
//	p, err := reg.Load("python3")
//	all, err := reg.All()
//
// [Package] is an immutable snapshot read once at load time. Derived values
// (dependency lists, version components, resolved tarball names) are computed
// on demand from the snapshot; nothing re-reads the filesystem.
//
// # Tarball resolution
//
// The tarball and upstream URL patterns may contain the placeholder variables
// VERSION, VERSION_MAJOR, VERSION_MINOR and VERSION_MICRO, bare or in the
// braced form ${VERSION}. [Package.TarballFilename] and [Package.UpstreamURL]
// expand them against the package's version. Resolution fails with a
// structured error when the version is absent or has too few components.
//
// # Aliased packages
//
// A package directory may be a symbolic link onto another package (sharing
// its checksums.ini). The canonical owner of the tarball data is resolved once
// at load time and exposed via [Registry.CanonicalTarballOwner].
//
// External collaborators (tarball fetchers, dependency-graph builders) consume
// the accessors; this package performs no fetching, extraction, or graph
// construction.
package pkgs
