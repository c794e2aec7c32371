package kozue

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Processor drives directive scanning and code generation over a set of
// files.
type Processor struct {
	checkOnly bool
}

// NewProcessor creates a processor that writes generated files.
func NewProcessor() *Processor {
	return &Processor{}
}

// NewCheckProcessor creates a processor that only collects diagnostics
// and writes nothing.
func NewCheckProcessor() *Processor {
	return &Processor{checkOnly: true}
}

// ProcessFiles processes the given Go files. Files are independent and
// are handled concurrently; the returned diagnostics are ordered by
// source position. An error means processing itself failed, not that a
// marker was rejected.
func (p *Processor) ProcessFiles(files []string) ([]*Diagnostic, error) {
	var (
		mu    sync.Mutex
		diags []*Diagnostic
	)

	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for _, filename := range files {
		eg.Go(func() error {
			fileDiags, err := p.processFile(filename)

			mu.Lock()
			diags = append(diags, fileDiags...)
			mu.Unlock()

			return err
		})
	}

	err := eg.Wait()
	sortDiagnostics(diags)

	return diags, err
}

// processFile scans a single Go file and, unless in check mode, writes
// its generated companion file.
func (p *Processor) processFile(filename string) ([]*Diagnostic, error) {
	slog.Debug("Processing file", "file", filename)

	// One parser per file: each carries its own FileSet.
	f, err := NewParser().ParseFile(filename)
	if err != nil {
		return nil, fmt.Errorf("parse file %s: %w", filename, err)
	}

	generatable := 0
	for _, host := range f.Hosts {
		if host.generatable() {
			generatable++
		}
	}

	if generatable == 0 {
		slog.Debug("No provide markers found", "file", filename)
		return f.Diagnostics, nil
	}

	slog.Info("Found provide markers", "file", filename, "hosts", generatable)

	if p.checkOnly {
		return f.Diagnostics, nil
	}

	outputFile := outputFileName(filename)
	slog.Debug("outputFileName", "outputFileName", outputFile)

	out, err := os.Create(outputFile)
	if err != nil {
		return f.Diagnostics, fmt.Errorf("create file %s: %w", outputFile, err)
	}
	defer out.Close()

	if err := Generate(out, f); err != nil {
		return f.Diagnostics, fmt.Errorf("generate: %w", err)
	}

	return f.Diagnostics, nil
}

func outputFileName(filename string) string {
	ext := filepath.Ext(filename)
	return strings.TrimSuffix(filename, ext) + generatedSuffix + ext
}
