package pkgs

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/srcforge/srcforge/pkg/errors"
)

// Metadata file names inside a package directory.
const (
	typeFile          = "type"
	checksumsFile     = "checksums.ini"
	versionFile       = "package-version.txt"
	requiresFile      = "install-requires.txt"
	depsFile          = "dependencies"
	depsCheckFile     = "dependencies_check"
	depsOrderOnlyFile = "dependencies_order_only"
)

// Registry loads package metadata from a package root directory.
//
// The root is an explicit value; there is no ambient default. A Registry
// holds no mutable state and performs no caching: each Load re-reads the
// package directory and returns an independent snapshot.
type Registry struct {
	root   string
	logger *log.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for enumeration diagnostics.
// Without it the registry is silent.
func WithLogger(l *log.Logger) Option {
	return func(r *Registry) { r.logger = l }
}

// New creates a Registry rooted at the given package directory.
func New(root string, opts ...Option) *Registry {
	r := &Registry{
		root:   root,
		logger: log.New(io.Discard),
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Root returns the package root directory.
func (r *Registry) Root() string { return r.root }

// Load reads all metadata for the named package.
//
// Missing optional files are absence, never errors. Load fails with
// PACKAGE_NOT_FOUND if the directory does not exist, NOT_A_PACKAGE if it
// exists but has no type file, and INVALID_TYPE if the type file's content
// is not one of the recognized type strings.
func (r *Registry) Load(name string) (*Package, error) {
	if err := errors.ValidatePackageName(name); err != nil {
		return nil, err
	}

	dir := filepath.Join(r.root, name)
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodePackageNotFound, "no package directory %s", name)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "stat %s", dir)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrCodePackageNotFound, "%s is not a directory", name)
	}

	p := &Package{name: name, path: dir, patchlevel: NoPatchlevel}

	if err := r.loadType(p); err != nil {
		return nil, err
	}
	if err := r.loadChecksums(p); err != nil {
		return nil, err
	}
	if err := r.loadVersion(p); err != nil {
		return nil, err
	}
	if err := r.loadInstallRequires(p); err != nil {
		return nil, err
	}
	if err := r.loadDependencies(p); err != nil {
		return nil, err
	}
	return p, nil
}

// All enumerates every package under the root, sorted by name.
//
// Subdirectories without a type file are not packages; they are skipped with
// a debug diagnostic. Any other load failure is a build-configuration error
// and propagates, wrapped with the offending directory name.
func (r *Registry) All() ([]*Package, error) {
	entries, err := os.ReadDir(r.root)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read package root %s", r.root)
	}

	var packages []*Package
	for _, entry := range entries {
		// Stat rather than entry.IsDir: aliased packages are symlinked
		// directories.
		info, err := os.Stat(filepath.Join(r.root, entry.Name()))
		if err != nil || !info.IsDir() {
			continue
		}

		p, err := r.Load(entry.Name())
		if errors.Is(err, errors.ErrCodeNotAPackage) {
			r.logger.Debugf("%s has no type file, skipping", entry.Name())
			continue
		}
		if err != nil {
			r.logger.Errorf("failed to load %s", entry.Name())
			code := errors.GetCode(err)
			if code == "" {
				code = errors.ErrCodeInternal
			}
			return nil, errors.Wrap(code, err, "load package %s", entry.Name())
		}
		packages = append(packages, p)
	}

	sort.Slice(packages, func(i, j int) bool { return packages[i].name < packages[j].name })
	return packages, nil
}

// CanonicalTarballOwner returns the package that owns p's tarball data.
//
// This is p itself unless p's checksums.ini resolves, through symbolic
// links, into a different package directory; in that case the target package
// is loaded fresh and returned.
func (r *Registry) CanonicalTarballOwner(p *Package) (*Package, error) {
	if p.tarballOwner == p.name {
		return p, nil
	}
	return r.Load(p.tarballOwner)
}

func (r *Registry) loadType(p *Package) error {
	raw, ok, err := readTrimmedFile(filepath.Join(p.path, typeFile))
	if err != nil {
		return err
	}
	if !ok {
		return errors.New(errors.ErrCodeNotAPackage, "%s has no type file", p.name)
	}
	t, err := ParseType(raw)
	if err != nil {
		return err
	}
	p.typ = t
	return nil
}

func (r *Registry) loadChecksums(p *Package) error {
	path := filepath.Join(p.path, checksumsFile)
	values, err := readKeyValues(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}
	p.md5 = values["md5"]
	p.sha1 = values["sha1"]
	p.cksum = values["cksum"]
	p.tarballPattern = values["tarball"]
	p.upstreamURLPattern = values["upstream_url"]

	// Resolve the alias target once at load time: the directory containing
	// the real checksums.ini owns the tarball data.
	p.tarballOwner = p.name
	if real, err := filepath.EvalSymlinks(path); err == nil {
		p.tarballOwner = filepath.Base(filepath.Dir(real))
	}
	return nil
}

func (r *Registry) loadVersion(p *Package) error {
	raw, ok, err := readTrimmedFile(filepath.Join(p.path, versionFile))
	if err != nil {
		return err
	}
	if ok {
		p.version, p.patchlevel = ParseVersion(raw)
	}
	return nil
}

func (r *Registry) loadInstallRequires(p *Package) error {
	raw, ok, err := readTrimmedFile(filepath.Join(p.path, requiresFile))
	if err != nil {
		return err
	}
	if ok {
		p.installRequires = raw
	}
	return nil
}

func (r *Registry) loadDependencies(p *Package) error {
	var err error
	if p.depsLine, err = readFirstLine(filepath.Join(p.path, depsFile)); err != nil {
		return err
	}
	if p.depsCheckLine, err = readFirstLine(filepath.Join(p.path, depsCheckFile)); err != nil {
		return err
	}
	if p.depsOrderOnlyLine, err = readFirstLine(filepath.Join(p.path, depsOrderOnlyFile)); err != nil {
		return err
	}
	return nil
}

// readTrimmedFile reads a whole file trimmed of surrounding whitespace.
// The second return reports whether the file exists.
func readTrimmedFile(path string) (string, bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}
	return strings.TrimSpace(string(data)), true, nil
}

// readFirstLine reads the first line of a file, trimmed. A missing file
// yields "".
func readFirstLine(path string) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "read %s", path)
	}
	line, _, _ := strings.Cut(string(data), "\n")
	return strings.TrimSpace(line), nil
}
