package extractor

import (
	"bytes"
	"testing"
)

func TestLocateSignature(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		sig  []byte
		want int
	}{
		{"at start", []byte("IKCFG_ST\x1f\x8bpayload"), ikcfgMagic, 0},
		{"at offset", append([]byte("header"), ikcfgMagic...), ikcfgMagic, 6},
		{"absent", []byte("no signature here"), ikcfgMagic, -1},
		{"partial match only", []byte("IKCFG_ST without gzip header"), ikcfgMagic, -1},
		{"empty buffer", nil, ikcfgMagic, -1},
		{"first of two", bytes.Repeat(append([]byte("x"), ikcfgMagic...), 2), ikcfgMagic, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LocateSignature(tt.buf, tt.sig); got != tt.want {
				t.Errorf("LocateSignature() = %d, want %d", got, tt.want)
			}
		})
	}
}
