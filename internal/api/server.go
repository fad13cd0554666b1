// Package api exposes package metadata over HTTP.
//
// The service is read-only: it serves the same accessors the library offers,
// as JSON, for external collaborators such as tarball fetchers and
// dependency-graph builders. It performs no tarball fetching itself.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/srcforge/srcforge/pkg/errors"
	"github.com/srcforge/srcforge/pkg/pkgs"
)

// Server serves package metadata from a registry.
type Server struct {
	registry *pkgs.Registry
	logger   *log.Logger
}

// New creates a metadata server backed by the given registry.
func New(registry *pkgs.Registry, logger *log.Logger) *Server {
	return &Server{registry: registry, logger: logger}
}

// Router builds the HTTP route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/packages", func(r chi.Router) {
		r.Get("/", s.handleList)
		r.Get("/{name}", s.handleGet)
		r.Get("/{name}/tarball", s.handleTarball)
	})
	return r
}

// packageSummary is the list-endpoint representation of a package.
type packageSummary struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Version string `json:"version,omitempty"`
}

// packageDetail is the full representation of a package.
type packageDetail struct {
	Name                  string   `json:"name"`
	Type                  string   `json:"type"`
	Version               string   `json:"version,omitempty"`
	Patchlevel            *int     `json:"patchlevel,omitempty"`
	FullVersion           string   `json:"full_version,omitempty"`
	MD5                   string   `json:"md5,omitempty"`
	SHA1                  string   `json:"sha1,omitempty"`
	CKSum                 string   `json:"cksum,omitempty"`
	TarballPattern        string   `json:"tarball_pattern,omitempty"`
	UpstreamURLPattern    string   `json:"upstream_url_pattern,omitempty"`
	TarballOwner          string   `json:"tarball_owner"`
	DistributionName      string   `json:"distribution_name,omitempty"`
	Dependencies          []string `json:"dependencies"`
	DependenciesOrderOnly []string `json:"dependencies_order_only"`
	DependenciesCheck     []string `json:"dependencies_check"`
}

// tarballDetail is the resolved-tarball representation.
type tarballDetail struct {
	Package     string `json:"package"`
	Owner       string `json:"owner"`
	Filename    string `json:"filename,omitempty"`
	UpstreamURL string `json:"upstream_url,omitempty"`
	SHA1        string `json:"sha1,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	all, err := s.registry.All()
	if err != nil {
		s.writeError(w, err)
		return
	}
	summaries := make([]packageSummary, 0, len(all))
	for _, p := range all {
		summaries = append(summaries, packageSummary{
			Name:    p.Name(),
			Type:    string(p.Type()),
			Version: p.Version(),
		})
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	p, err := s.registry.Load(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	detail := packageDetail{
		Name:                  p.Name(),
		Type:                  string(p.Type()),
		Version:               p.Version(),
		FullVersion:           p.FullVersion(),
		MD5:                   p.MD5(),
		SHA1:                  p.SHA1(),
		CKSum:                 p.CKSum(),
		TarballPattern:        p.TarballPattern(),
		UpstreamURLPattern:    p.UpstreamURLPattern(),
		TarballOwner:          p.TarballOwnerName(),
		DistributionName:      p.DistributionName(),
		Dependencies:          orEmpty(p.Dependencies()),
		DependenciesOrderOnly: orEmpty(p.DependenciesOrderOnly()),
		DependenciesCheck:     orEmpty(p.DependenciesCheck()),
	}
	if p.HasVersion() {
		pl := p.Patchlevel()
		detail.Patchlevel = &pl
	}
	writeJSON(w, http.StatusOK, detail)
}

func (s *Server) handleTarball(w http.ResponseWriter, r *http.Request) {
	p, err := s.registry.Load(chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	owner, err := s.registry.CanonicalTarballOwner(p)
	if err != nil {
		s.writeError(w, err)
		return
	}
	filename, err := owner.TarballFilename()
	if err != nil {
		s.writeError(w, err)
		return
	}
	url, err := owner.UpstreamURL()
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tarballDetail{
		Package:     p.Name(),
		Owner:       owner.Name(),
		Filename:    filename,
		UpstreamURL: url,
		SHA1:        owner.SHA1(),
	})
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps structured error codes onto HTTP status codes.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodePackageNotFound, errors.ErrCodeNotAPackage:
		status = http.StatusNotFound
	case errors.ErrCodeInvalidPackage, errors.ErrCodeInvalidInput:
		status = http.StatusBadRequest
	case errors.ErrCodeMissingVersion, errors.ErrCodeVersionComponent, errors.ErrCodeInvalidType:
		// Malformed build configuration surfaced through the API.
		status = http.StatusUnprocessableEntity
	}
	if status == http.StatusInternalServerError {
		s.logger.Errorf("request failed: %v", err)
	}
	writeJSON(w, status, errorResponse{
		Code:    string(errors.GetCode(err)),
		Message: errors.UserMessage(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// orEmpty normalizes a nil slice to an empty one so the JSON stays an array.
func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
