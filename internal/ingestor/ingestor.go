// Package ingestor loads binary objects from local sources and drives the
// kernel configuration analysis pipeline over them.
package ingestor

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/alevsk/kconfig-scope/internal/extractor"
	"github.com/alevsk/kconfig-scope/internal/formatter"
	"github.com/alevsk/kconfig-scope/internal/hardening"
	"github.com/alevsk/kconfig-scope/internal/logger"
	"github.com/alevsk/kconfig-scope/internal/types"
)

// Options holds configuration for the ingestor
type Options struct {
	// DeclaredMime overrides MIME sniffing for the ingested object
	DeclaredMime string
	// ComponentHints are free-text component descriptions attached to the
	// ingested object (e.g. "Linux Kernel Version 5.4.0")
	ComponentHints []string
	// OutputFormat selects the rendering of the analysis result
	OutputFormat string
	// IncludeMetadata includes additional metadata in extraction results
	IncludeMetadata bool
	// Auditor runs the hardening audit over extracted configurations; nil
	// skips the audit step
	Auditor *hardening.Auditor
}

// DefaultOptions returns the default ingestor options
func DefaultOptions() *Options {
	return &Options{
		OutputFormat:    string(formatter.TypeTable),
		IncludeMetadata: true,
	}
}

// Error types for ingestion operations
var (
	ErrInvalidSource = fmt.Errorf("invalid source")
)

// Ingestor manages the ingestion and analysis of binary objects
type Ingestor struct {
	opts      *Options
	extractor *extractor.KernelConfigExtractor
}

// New creates a new Ingestor with the given options
func New(opts *Options) *Ingestor {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Ingestor{
		opts:      opts,
		extractor: extractor.NewKernelConfigExtractor(&extractor.Options{IncludeMetadata: opts.IncludeMetadata}),
	}
}

// Ingest analyzes the file at source and returns a populated result record
// with formatted output. The context can be used to cancel the operation.
func (i *Ingestor) Ingest(ctx context.Context, source string) (*types.Result, error) {
	if source == "" {
		return nil, ErrInvalidSource
	}

	info, err := os.Stat(source)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: not a regular file: %s", ErrInvalidSource, source)
	}

	content, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	obj := &types.Object{
		Name:           filepath.Base(source),
		Bytes:          content,
		DeclaredMime:   i.opts.DeclaredMime,
		ComponentHints: i.opts.ComponentHints,
	}
	if obj.DeclaredMime == "" {
		obj.DeclaredMime = SniffMime(content)
	}

	result := i.Analyze(ctx, obj)
	result.Source = source

	format, err := formatter.ParseType(i.opts.OutputFormat)
	if err != nil {
		return nil, err
	}
	f, err := formatter.NewFormatter(format)
	if err != nil {
		return nil, err
	}
	output, err := f.Format(*result)
	if err != nil {
		return nil, fmt.Errorf("failed to format result: %w", err)
	}
	result.OutputFormatted = output

	return result, nil
}

// Analyze runs the extraction and audit pipeline over an in-memory object.
// The returned record is always well-formed: extraction negatives and audit
// failures are reflected in its fields, never raised.
func (i *Ingestor) Analyze(ctx context.Context, obj *types.Object) *types.Result {
	result := &types.Result{
		Name:      obj.Name,
		Success:   true,
		Summary:   []string{},
		Timestamp: time.Now().Unix(),
	}

	verdict, err := i.extractor.Extract(ctx, obj)
	if err != nil {
		result.Success = false
		result.Error = err
		return result
	}

	result.Summary = verdict.Summary()
	if !verdict.Found {
		return result
	}

	result.IsKernelConfig = true
	result.KernelConfig = verdict.Config
	result.Tags = []string{extractor.TagIKConfig}
	if len(verdict.Metadata) > 0 {
		result.Extra = verdict.Metadata
	}

	if i.opts.Auditor != nil {
		result.Checksec = i.opts.Auditor.Audit(ctx, verdict.Config)
	} else {
		logger.Debug().Msg("no auditor configured, skipping hardening audit")
	}

	return result
}

// SniffMime returns the bare media type of content as detected by
// http.DetectContentType, with parameters such as charset stripped.
func SniffMime(content []byte) string {
	detected := http.DetectContentType(content)
	if mediaType, _, err := mime.ParseMediaType(detected); err == nil {
		return mediaType
	}
	return detected
}
