package dashboard

import (
	"context"
	"errors"
	"os"
	"time"
)

// ModelFunc adapts a function into a ModelSource.
type ModelFunc func(ctx context.Context) (DashboardModel, error)

// Model implements ModelSource.
func (fn ModelFunc) Model(ctx context.Context) (DashboardModel, error) {
	return fn(ctx)
}

// StaticSource rebuilds a model from literals on every call.
type StaticSource struct {
	build func(now time.Time) DashboardModel
	clock func() time.Time
}

// NewStaticSource wraps a literal model constructor. clock may be nil.
func NewStaticSource(build func(now time.Time) DashboardModel, clock func() time.Time) *StaticSource {
	if clock == nil {
		clock = time.Now
	}
	return &StaticSource{build: build, clock: clock}
}

// NewDefaultSource serves the built-in dealer report.
func NewDefaultSource() *StaticSource {
	return NewStaticSource(DefaultDealerModel, nil)
}

// Model implements ModelSource.
func (s *StaticSource) Model(context.Context) (DashboardModel, error) {
	if s == nil || s.build == nil {
		return DashboardModel{}, errors.New("dashboard: static source has no model constructor")
	}
	return s.build(s.clock()), nil
}

// FileSource re-reads a YAML model document on every call. A document
// without last_updated is stamped with the file's modification time.
type FileSource struct {
	path string
}

// NewFileSource builds a source for the given document path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Path returns the document path.
func (s *FileSource) Path() string { return s.path }

// Model implements ModelSource.
func (s *FileSource) Model(ctx context.Context) (DashboardModel, error) {
	if err := ctx.Err(); err != nil {
		return DashboardModel{}, err
	}
	doc, err := ReadModelFile(s.path)
	if err != nil {
		return DashboardModel{}, err
	}
	if doc.Model.LastUpdated.IsZero() {
		if modTime, statErr := statModTime(s.path); statErr == nil {
			doc.Model.LastUpdated = modTime
		}
	}
	return doc.Model, nil
}

func statModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}
