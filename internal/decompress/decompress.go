// Package decompress provides a best-effort, multi-codec decompression
// capability. It never fails on malformed input; codecs that cannot decode
// the buffer simply contribute no candidate.
package decompress

import (
	"bytes"
	"compress/bzip2"
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/smira/go-xz"

	"github.com/alevsk/kconfig-scope/internal/logger"
)

// MaxCandidateSize caps a single decoded candidate to guard against
// decompression bombs in untrusted input.
const MaxCandidateSize = 64 << 20 // 64 MiB

type codec struct {
	name  string
	magic []byte // nil means the stream must start at offset zero
	open  func(io.Reader) (io.ReadCloser, error)
}

// codecs lists every supported codec with its stream magic. Ordering
// matters: callers consume the first candidate, so gzip leads (IKCONFIG
// payloads are always gzip streams) and magic-less raw deflate goes last.
var codecs = []codec{
	{
		name:  "gzip",
		magic: []byte("\x1f\x8b\x08"),
		open: func(r io.Reader) (io.ReadCloser, error) {
			zr, err := gzip.NewReader(r)
			if err != nil {
				return nil, err
			}
			// A single stream, trailing container data is expected
			zr.Multistream(false)
			return zr, nil
		},
	},
	{
		name:  "xz",
		magic: []byte("\xfd7zXZ\x00"),
		open: func(r io.Reader) (io.ReadCloser, error) {
			return xz.NewReader(r)
		},
	},
	{
		name:  "bzip2",
		magic: []byte("BZh"),
		open: func(r io.Reader) (io.ReadCloser, error) {
			return io.NopCloser(bzip2.NewReader(r)), nil
		},
	},
	{
		name:  "zstd",
		magic: []byte("\x28\xb5\x2f\xfd"),
		open: func(r io.Reader) (io.ReadCloser, error) {
			d, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
			if err != nil {
				return nil, err
			}
			return d.IOReadCloser(), nil
		},
	},
	{
		name:  "lz4",
		magic: []byte("\x04\x22\x4d\x18"),
		open: func(r io.Reader) (io.ReadCloser, error) {
			return io.NopCloser(lz4.NewReader(r)), nil
		},
	},
	{
		name:  "zlib",
		magic: []byte("\x78\x9c"),
		open: func(r io.Reader) (io.ReadCloser, error) {
			return zlib.NewReader(r)
		},
	},
	{
		name:  "deflate",
		magic: nil,
		open: func(r io.Reader) (io.ReadCloser, error) {
			return flate.NewReader(r), nil
		},
	},
}

// Decompress attempts every known codec against raw and returns the decoded
// candidates in codec order, most likely interpretation first. Codecs with a
// stream magic decode from the first occurrence of that magic, so compressed
// sub-streams embedded at arbitrary offsets are found. An empty slice means
// no codec succeeded; Decompress never returns an error.
func Decompress(raw []byte) [][]byte {
	var candidates [][]byte

	for _, c := range codecs {
		start := 0
		if c.magic != nil {
			start = bytes.Index(raw, c.magic)
			if start < 0 {
				continue
			}
		}

		decoded, err := tryCodec(c, raw[start:])
		if err != nil {
			logger.Debug().Str("codec", c.name).Err(err).Msg("codec rejected input")
			continue
		}
		if len(decoded) == 0 {
			continue
		}
		candidates = append(candidates, decoded)
	}

	return candidates
}

// tryCodec decodes raw with a single codec. Panics from codec internals on
// crafted input are converted to errors.
func tryCodec(c codec, raw []byte) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("%s: panic while decoding: %v", c.name, r)
		}
	}()

	rc, err := c.open(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	out, err = io.ReadAll(io.LimitReader(rc, MaxCandidateSize))
	if err != nil {
		return nil, err
	}
	return out, nil
}
