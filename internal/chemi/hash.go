// Package chemi derives name compatibility results from a pair of names and a date.
// Every function here is pure: the same names on the same date always produce the same result.
package chemi

import (
	"strconv"
	"unicode/utf16"
)

// hashSeed is the djb2 starting value.
const hashSeed uint32 = 5381

// Hash returns the djb2 hash (h*33 + c) of text as an unsigned 32-bit value.
// Characters are consumed as UTF-16 code units so that results match hashes
// produced by clients that index strings by UTF-16 units.
func Hash(text string) uint32 {
	h := hashSeed
	for _, r := range text {
		if r >= 0x10000 {
			hi, lo := utf16.EncodeRune(r)
			h = (h << 5) + h + uint32(hi)
			h = (h << 5) + h + uint32(lo)
			continue
		}
		h = (h << 5) + h + uint32(r)
	}
	return h
}

// HashToRange maps h into [0, max] by re-hashing "<h>:<offset>".
// Each logical draw from the same base hash must use its own offset.
func HashToRange(h uint32, max, offset int) int {
	if max < 0 {
		panic("chemi: HashToRange called with negative max " + strconv.Itoa(max))
	}
	mixed := Hash(strconv.FormatUint(uint64(h), 10) + ":" + strconv.Itoa(offset))
	return int(uint64(mixed) % (uint64(max) + 1))
}
