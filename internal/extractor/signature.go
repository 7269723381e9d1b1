package extractor

import "bytes"

// ikcfgMagic marks the start of the compressed configuration payload
// embedded by CONFIG_IKCONFIG: the literal "IKCFG_ST" immediately followed
// by the first two bytes of the gzip header.
var ikcfgMagic = []byte("IKCFG_ST\x1f\x8b")

// LocateSignature returns the offset of the first occurrence of sig in buf,
// or -1 if absent. The search is a literal byte-substring match.
func LocateSignature(buf, sig []byte) int {
	return bytes.Index(buf, sig)
}
