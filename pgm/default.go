package pgm

import (
	"compress/bzip2"
	"encoding/base64"
	"io"
	"strings"
)

// The factory default program, bzip2-compressed and base64-encoded.
// Its header file_size field (0x2A04 = 10756) matches ProgramSize.
const defaultProgramB64 = `
QlpoOTFBWSZTWdr3EiAABa3/xH////////////////QAAECAQAABMAE4RBpSTNpQ
wIaGCbQmj0BHk0NNCMBoEG1PRAMCZMcADQGgaABppkABo0yADRkwQGIAACqSRNMg
CaZkTCYjIaNGNCYAjIyGCYjE8oaep6aWAFkDLmgEwEaM6IiInoAUgMaZACqBnzQC
jIBSAkBKUQERMpOEAoLaiBo26dpTAYsgKnomgCnUqYVPBoVJYtX1Y88D3SgEZNX0
+aH2c1tNGYrOdERESqKEv0SPAAA7pSmRV7R71HlLEq0txUluNahUoKS0Ha/JALtQ
bN15uFu5qgAAf4NJXs+Cfi2sA1k9K0a2Lgui8GD74TBYNp2XGcaC9mAAAEkRERHe
bJvJyyzkUaqtZc0SVmYzPz19nb+q1f9/z+93+sf+zTArgS2QJRWAtJkAWZWngLuS
KcKEhte4kQA=
`

var defaultProgramData []byte

func init() {
	dec := base64.NewDecoder(base64.StdEncoding, strings.NewReader(defaultProgramB64))
	b, err := io.ReadAll(bzip2.NewReader(dec))
	if err != nil {
		panic("pgm: corrupt default program data: " + err.Error())
	}
	defaultProgramData = b
}

// DefaultProgramData returns a fresh copy of the factory default
// program file.
func DefaultProgramData() []byte {
	b := make([]byte, len(defaultProgramData))
	copy(b, defaultProgramData)
	return b
}
