// Package types holds the data model shared by the decoder registry,
// checker pipeline, knowledge store and search engine: Text, decoder and
// checker descriptors, search nodes, cache rows, configuration and the
// search error taxonomy.
package types

import "unicode/utf8"

// Text is a UTF-8 string of arbitrary length. All decoders accept and
// return Text; it exists as a distinct name so call sites read as
// "plaintext/ciphertext", not just "some string".
type Text string

// Valid reports whether t is well-formed UTF-8. Decoders that work on raw
// bytes (Base-family, Brainfuck output) must check this before handing a
// candidate back to the engine: garbage bytes masquerading as UTF-8 would
// otherwise leave the engine chasing noise (§4.1).
func (t Text) Valid() bool {
	return utf8.ValidString(string(t))
}

// Printable reports whether every rune in t is a printable character or
// common whitespace. Used by check_string_success to reject decodes that
// are technically valid UTF-8 but contain control bytes.
func (t Text) Printable() bool {
	if t == "" {
		return false
	}
	for _, r := range string(t) {
		if r == '\n' || r == '\t' || r == '\r' {
			continue
		}
		if r < 0x20 || r == 0x7f {
			return false
		}
	}
	return true
}
