package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/ledongthuc/pdf"
)

const (
	renderDPI = 300
	maxPages  = 3
)

// Renderer turns the first pages of a PDF into page image files.
type Renderer interface {
	RenderPages(ctx context.Context, path string) (dir string, pages []string, err error)
}

// PageRenderer rasterizes the first pages of a PDF to PNG files using
// poppler's pdftoppm. If the binary is not on PATH, one alternate install
// location (POPPLER_PATH) is tried before giving up.
type PageRenderer struct {
	popplerPath string
	logger      *slog.Logger
}

func NewPageRenderer(popplerPath string, logger *slog.Logger) *PageRenderer {
	return &PageRenderer{
		popplerPath: popplerPath,
		logger:      logger,
	}
}

// RenderPages renders up to maxPages pages of the PDF at path into a fresh
// temporary directory and returns the directory plus the page image paths in
// page order. The caller owns the directory and must remove it.
func (r *PageRenderer) RenderPages(ctx context.Context, path string) (string, []string, error) {
	lastPage := maxPages
	if n, err := pageCount(path); err == nil && n < lastPage {
		lastPage = n
	}

	outDir, err := os.MkdirTemp("", "docintel-pages-")
	if err != nil {
		return "", nil, fmt.Errorf("create page directory: %w", err)
	}

	err = r.run(ctx, "pdftoppm", path, outDir, lastPage)
	if err != nil && r.popplerPath != "" {
		alternate := filepath.Join(r.popplerPath, "pdftoppm")
		r.logger.Warn("pdftoppm not usable from PATH, trying alternate location",
			slog.String("alternate", alternate),
			slog.String("error", err.Error()))
		err = r.run(ctx, alternate, path, outDir, lastPage)
	}
	if err != nil {
		os.RemoveAll(outDir)
		return "", nil, fmt.Errorf("render PDF pages: %w", err)
	}

	pages, err := filepath.Glob(filepath.Join(outDir, "page-*.png"))
	if err != nil || len(pages) == 0 {
		os.RemoveAll(outDir)
		return "", nil, fmt.Errorf("no pages rendered from %s", filepath.Base(path))
	}
	sort.Strings(pages)

	return outDir, pages, nil
}

func (r *PageRenderer) run(ctx context.Context, binary, path, outDir string, lastPage int) error {
	cmd := exec.CommandContext(ctx, binary,
		"-png",
		"-r", strconv.Itoa(renderDPI),
		"-f", "1",
		"-l", strconv.Itoa(lastPage),
		path,
		filepath.Join(outDir, "page"))
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("pdftoppm execution failed: %w (%s)", err, string(output))
	}
	return nil
}

// pageCount probes the PDF so we never ask pdftoppm for pages past the end.
func pageCount(path string) (int, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return reader.NumPage(), nil
}
