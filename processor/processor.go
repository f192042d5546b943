package processor

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/orayew2002/rast-html/domain"
	"github.com/orayew2002/rast-html/excel"
	"github.com/orayew2002/rast-html/markup"
	"github.com/orayew2002/rast-html/report"
)

// Job is one fully resolved report run.
type Job struct {
	Name     string
	Input    string
	Sheet    string
	Output   string
	LabelRow bool
	// Title defaults to the sheet name.
	Title string
	Spec  domain.Spec
}

// Processor reads workbooks, builds report documents and writes them out.
type Processor struct {
	builder  *report.Builder
	renderer markup.Renderer
	logger   *zap.Logger
}

// New creates a Processor. A nil logger disables logging.
func New(builder *report.Builder, renderer markup.Renderer, logger *zap.Logger) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{builder: builder, renderer: renderer, logger: logger}
}

// ProcessFile reads job.Input, builds and renders the report and writes it to
// job.Output. The output is replaced atomically: when any step fails the
// previous output, if any, is left as it was.
func (p *Processor) ProcessFile(ctx context.Context, job Job) error {
	start := time.Now()
	log := p.logger.With(zap.String("report", job.Name), zap.String("input", job.Input))
	log.Debug("processing report")

	sheet, err := excel.ReadFile(job.Input, excel.Options{Sheet: job.Sheet, LabelRow: job.LabelRow})
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}

	data, err := p.render(ctx, sheet, job, log)
	if err != nil {
		return err
	}

	if err := writeAtomic(job.Output, data); err != nil {
		return fmt.Errorf("save %s: %w", job.Output, err)
	}

	log.Info("report written",
		zap.String("output", job.Output),
		zap.Int("bytes", len(data)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// ProcessBytes builds the report for a workbook held in memory and returns the
// rendered output. job.Input and job.Output are ignored.
func (p *Processor) ProcessBytes(ctx context.Context, data []byte, job Job) ([]byte, error) {
	sheet, err := excel.Read(bytes.NewReader(data), excel.Options{Sheet: job.Sheet, LabelRow: job.LabelRow})
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return p.render(ctx, sheet, job, p.logger.With(zap.String("report", job.Name)))
}

func (p *Processor) render(ctx context.Context, sheet *domain.Sheet, job Job, log *zap.Logger) ([]byte, error) {
	doc, err := p.builder.Build(ctx, sheet, job.Spec)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}

	doc.Title = job.Title
	if doc.Title == "" {
		doc.Title = sheet.Name
	}

	log.Debug("document built",
		zap.Int("rows", len(sheet.Rows)),
		zap.Int("headings", len(doc.Headings())),
		zap.Int("tables", len(doc.Tables())),
	)

	var buf bytes.Buffer
	if err := p.renderer.Render(&buf, doc); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// writeAtomic writes data to a temporary file next to path and renames it
// into place. Missing parent directories are created.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	name := tmp.Name()
	defer os.Remove(name) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Chmod(name, 0o644); err != nil {
		return fmt.Errorf("chmod temp: %w", err)
	}
	return os.Rename(name, path)
}
