// Package export writes the portfolio as a static site.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"starfolio.dev/internal/models"
	"starfolio.dev/internal/services"
	"starfolio.dev/internal/site"
)

// SnapshotViewport sizes the camera of the exported starfield
var SnapshotViewport = models.Viewport{Width: 1920, Height: 1080}

// Progress is told about every written file
type Progress interface {
	Start(total int)
	Done(path string)
	Finish()
}

// Job writes one output file
type Job struct {
	Path  string
	Write func() ([]byte, error)
}

// Exporter renders pages, data and assets into a directory
type Exporter struct {
	Site      *site.Site
	Projects  *services.ProjectService
	Starfield *services.StarfieldService
	AssetsDir string
	Workers   int
	Logger    *zap.Logger
}

// Jobs lists every file of the export, relative to the output directory
func (e *Exporter) Jobs() ([]Job, error) {
	jobs := []Job{
		{Path: "index.html", Write: e.page("")},
		{Path: "projects.json", Write: jsonOf(func() (interface{}, error) {
			return e.Projects.GetAll(), nil
		})},
		{Path: "starfield.json", Write: jsonOf(func() (interface{}, error) {
			return e.Starfield.Snapshot(SnapshotViewport)
		})},
	}
	for _, id := range e.Site.Pages() {
		jobs = append(jobs, Job{Path: filepath.Join(id, "index.html"), Write: e.page(id)})
	}

	assets, err := copyJobs(site.Static(), "static")
	if err != nil {
		return nil, err
	}
	jobs = append(jobs, assets...)

	if e.AssetsDir != "" {
		if info, err := os.Stat(e.AssetsDir); err == nil && info.IsDir() {
			extra, err := copyJobs(os.DirFS(e.AssetsDir), "assets")
			if err != nil {
				return nil, err
			}
			jobs = append(jobs, extra...)
		}
	}
	return jobs, nil
}

// Run writes every job under outDir, in parallel
func (e *Exporter) Run(outDir string, progress Progress) error {
	logger := e.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := e.Workers
	if workers <= 0 {
		workers = 4
	}

	jobs, err := e.Jobs()
	if err != nil {
		return err
	}
	if progress != nil {
		progress.Start(len(jobs))
		defer progress.Finish()
	}

	p := pool.New().WithErrors().WithMaxGoroutines(workers)
	for _, job := range jobs {
		job := job
		p.Go(func() error {
			data, err := job.Write()
			if err != nil {
				return fmt.Errorf("%s: %w", job.Path, err)
			}
			dst := filepath.Join(outDir, job.Path)
			if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
				return fmt.Errorf("%s: %w", job.Path, err)
			}
			if err := os.WriteFile(dst, data, 0644); err != nil {
				return fmt.Errorf("%s: %w", job.Path, err)
			}
			logger.Debug("Wrote file", zap.String("path", dst), zap.Int("bytes", len(data)))
			if progress != nil {
				progress.Done(job.Path)
			}
			return nil
		})
	}
	return p.Wait()
}

func (e *Exporter) page(id string) func() ([]byte, error) {
	return func() ([]byte, error) {
		var buf bytes.Buffer
		if err := e.Site.Render(&buf, id); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
}

func jsonOf(get func() (interface{}, error)) func() ([]byte, error) {
	return func() ([]byte, error) {
		v, err := get()
		if err != nil {
			return nil, err
		}
		return json.MarshalIndent(v, "", "  ")
	}
}

// copyJobs copies every regular file of fsys under prefix
func copyJobs(fsys fs.FS, prefix string) ([]Job, error) {
	var jobs []Job
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		jobs = append(jobs, Job{
			Path:  filepath.Join(prefix, filepath.FromSlash(path)),
			Write: func() ([]byte, error) { return fs.ReadFile(fsys, path) },
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", prefix, err)
	}
	return jobs, nil
}
