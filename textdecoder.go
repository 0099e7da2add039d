package main

import (
	"golang.org/x/text/encoding/japanese"
)

// maxDebugStringBytes bounds how far readDebugString searches for a NUL
// terminator, matching print_string's "no \0 ?" 1000-byte guard.
const maxDebugStringBytes = 1000

// readDebugString reads a NUL-terminated EUC-JP byte string from RDRAM at
// physical address addr and decodes it to UTF-8.
func readDebugString(i *Interpreter, addr uint32) (string, bool) {
	if !i.RDRAM.AddrValid(addr) {
		return "", false
	}
	raw, err := i.RDRAM.ReadBytes(addr, maxDebugStringBytes)
	if err != nil {
		// the string's tail ran past the end of the image: shrink the read
		// until it fits, one byte at a time.
		for n := maxDebugStringBytes - 1; n > 0; n-- {
			if raw, err = i.RDRAM.ReadBytes(addr, n); err == nil {
				break
			}
		}
		if err != nil {
			return "", false
		}
	}
	return decodeEUCJPString(raw), true
}

// decodeEUCJPString converts a NUL-terminated EUC-JP byte string (the
// encoding original N64 SDK debug builds embed for print_string's author
// comments) to UTF-8, mirroring original_source/src/libgbd/gbd.c's
// print_string iconv_open("UTF-8", "EUC-JP") call.
func decodeEUCJPString(raw []byte) string {
	nul := len(raw)
	for i, b := range raw {
		if b == 0 {
			nul = i
			break
		}
	}
	raw = raw[:nul]

	out, err := japanese.EUCJP.NewDecoder().Bytes(raw)
	if err != nil {
		return string(raw)
	}
	return string(out)
}
