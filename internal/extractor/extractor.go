// Package extractor provides functionality to detect and extract Linux
// kernel build configurations embedded in binary objects
package extractor

import (
	"context"
	"fmt"

	"github.com/alevsk/kconfig-scope/internal/types"
)

// Options contains configuration options for extractors
type Options struct {
	// IncludeMetadata includes additional metadata in extraction results
	IncludeMetadata bool
}

// DefaultOptions returns the default extractor options
func DefaultOptions() *Options {
	return &Options{
		IncludeMetadata: true,
	}
}

const (
	// SummaryKernelConfig is the summary label attached to positive verdicts
	SummaryKernelConfig = "Kernel Config"
	// TagIKConfig is the tag emitted for downstream indexing when a
	// configuration is found
	TagIKConfig = "IKCONFIG"
	// MimePlainText is the declared MIME type that marks plaintext objects
	MimePlainText = "text/plain"
	// kernelModuleName is the file name under which the kernel ships the
	// embedded configuration as a standalone module (IKCONFIG=m)
	kernelModuleName = "configs.ko"
)

// Verdict represents the outcome of a kernel configuration extraction
type Verdict struct {
	// Found reports whether a kernel configuration was detected
	Found bool `json:"found"`
	// Config is the extracted configuration text; empty unless Found
	Config string `json:"config,omitempty"`
	// Metadata contains additional information about the extraction
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Summary returns the human-readable summary labels for the verdict
func (v *Verdict) Summary() []string {
	if v != nil && v.Found {
		return []string{SummaryKernelConfig}
	}
	return []string{}
}

// Error types for the extractor package
var (
	ErrInvalidInput = fmt.Errorf("invalid input")
)

// Extractor defines the interface for extracting information from binary objects
type Extractor interface {
	// Extract analyzes the object and returns a verdict
	Extract(ctx context.Context, obj *types.Object) (*Verdict, error)
	// Validate checks if the object can be processed by this extractor
	Validate(obj *types.Object) error
	// SetOptions configures the extractor with the given options
	SetOptions(opts *Options)
	// GetOptions returns the current options
	GetOptions() *Options
}
