package extractor

import (
	"github.com/alevsk/kconfig-scope/internal/decompress"
)

// ExtractEmbeddedConfig searches raw for an IKCONFIG payload and returns the
// decompressed configuration bytes, or nil when no embedded configuration is
// found.
//
// The signature marks the start of a self-contained compressed sub-stream:
// everything before it is container/header data, everything from it onward
// is the compressed configuration payload. At most one outer compression
// wrapper is unwrapped before the signature search; generalizing this to
// arbitrarily nested layers would change detection semantics.
func ExtractEmbeddedConfig(raw []byte) []byte {
	container := raw
	if LocateSignature(raw, ikcfgMagic) < 0 {
		// Absence of the magic word means the whole image is itself
		// wrapped in a compression container
		inner := decompress.Decompress(container)
		if len(inner) == 0 {
			return nil
		}
		container = inner[0]
	}

	start := LocateSignature(container, ikcfgMagic)
	if start < 0 {
		return nil
	}

	configs := decompress.Decompress(container[start:])
	if len(configs) == 0 {
		return nil
	}
	return configs[0]
}
