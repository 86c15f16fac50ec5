// Package report renders service records as PDF service reports.
package report

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/renameio/v2"
	log "github.com/sirupsen/logrus"
	"github.com/ukydev/service-docs/internal/models"
)

// ErrInvalidFilename is returned for filenames that would escape the output directory.
var ErrInvalidFilename = errors.New("invalid filename")

// Renderer writes one PDF per record into a fixed output directory.
// It never creates the directory.
type Renderer struct {
	outputDir string
	compress  bool
	now       func() time.Time
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithClock sets the clock used for default filenames and PDF metadata.
func WithClock(now func() time.Time) RendererOption {
	return func(r *Renderer) {
		r.now = now
	}
}

// WithCompression toggles content stream compression. It is on by default.
func WithCompression(compress bool) RendererOption {
	return func(r *Renderer) {
		r.compress = compress
	}
}

// NewRenderer creates a renderer writing into outputDir.
func NewRenderer(outputDir string, opts ...RendererOption) *Renderer {
	r := &Renderer{
		outputDir: outputDir,
		compress:  true,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// OutputDir returns the directory documents are written to.
func (r *Renderer) OutputDir() string {
	return r.outputDir
}

// GeneratePDF renders rec into <outputDir>/<filename> and returns that path.
// An empty filename is replaced by one derived from the current time.
func (r *Renderer) GeneratePDF(rec models.ServiceRecord, filename string) (string, error) {
	if err := rec.Validate(); err != nil {
		return "", err
	}

	now := r.now()
	if filename == "" {
		filename = DefaultFilename(now)
	}
	if filename != filepath.Base(filename) || filename == "." || filename == ".." {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilename, filename)
	}

	data, err := newPainter(r.compress, now).render(Compose(rec))
	if err != nil {
		return "", err
	}

	path := filepath.Join(r.outputDir, filename)
	// The document appears under its final name only once fully written
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write output file: %w", err)
	}

	log.WithFields(log.Fields{
		"path":       path,
		"work_order": rec.WorkOrder,
		"bytes":      len(data),
	}).Debug("Rendered service report")

	return path, nil
}

// DefaultFilename builds a timestamped filename for documents rendered at t.
func DefaultFilename(t time.Time) string {
	return fmt.Sprintf("service_doc_%s_%06d.pdf", t.Format("20060102_150405"), t.Nanosecond()/1000)
}
