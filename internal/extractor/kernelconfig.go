package extractor

import (
	"context"
	"strings"

	"github.com/alevsk/kconfig-scope/internal/logger"
	"github.com/alevsk/kconfig-scope/internal/types"
)

// KernelConfigExtractor implements Extractor for kernel build configurations.
// It covers the two real-world embedding modes: a configuration stored
// verbatim as a text file, and a configuration compiled into a compressed
// kernel image or module (IKCONFIG=y|m) discoverable only by signature
// search after decompression.
type KernelConfigExtractor struct {
	opts *Options
}

// NewKernelConfigExtractor creates a new KernelConfigExtractor
func NewKernelConfigExtractor(opts *Options) *KernelConfigExtractor {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &KernelConfigExtractor{opts: opts}
}

// Extract analyzes the object and returns a verdict. The first matching
// branch wins:
//  1. plaintext objects whose content classifies as a configuration
//  2. the configs.ko module or an identified kernel image, via the
//     embedded-configuration cascade
//
// A verdict is only positive when the classifier accepts the candidate
// text; unclassified text is never surfaced as a configuration.
func (e *KernelConfigExtractor) Extract(ctx context.Context, obj *types.Object) (*Verdict, error) {
	if err := e.Validate(obj); err != nil {
		return nil, err
	}

	if obj.DeclaredMime == MimePlainText && LooksLikeKernelConfig(obj.Bytes) {
		return e.found(obj.Bytes, "plaintext"), nil
	}

	if obj.Name == kernelModuleName || isKernelImage(obj) {
		maybeConfig := ExtractEmbeddedConfig(obj.Bytes)
		if LooksLikeKernelConfig(maybeConfig) {
			return e.found(maybeConfig, "embedded"), nil
		}
		logger.Debug().Str("name", obj.Name).Msg("no embedded kernel configuration found")
	}

	return &Verdict{}, nil
}

// found builds a positive verdict for classified configuration bytes
func (e *KernelConfigExtractor) found(config []byte, source string) *Verdict {
	v := &Verdict{
		Found:  true,
		Config: string(config),
	}
	if e.opts.IncludeMetadata {
		v.Metadata = map[string]interface{}{
			"source": source,
			"size":   len(config),
		}
	}
	return v
}

// Validate checks if the object can be processed
func (e *KernelConfigExtractor) Validate(obj *types.Object) error {
	if obj == nil {
		return ErrInvalidInput
	}
	return nil
}

// SetOptions configures the extractor
func (e *KernelConfigExtractor) SetOptions(opts *Options) {
	if opts != nil {
		e.opts = opts
	}
}

// GetOptions returns the current options
func (e *KernelConfigExtractor) GetOptions() *Options {
	return e.opts
}

// isKernelImage reports whether a component identification hint marks the
// object as a Linux kernel image
func isKernelImage(obj *types.Object) bool {
	for _, hint := range obj.ComponentHints {
		if strings.Contains(strings.ToLower(hint), "linux kernel") {
			return true
		}
	}
	return false
}
