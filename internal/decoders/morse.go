package decoders

import (
	"strings"

	"github.com/RenTrieu/Ares/internal/types"
)

type morseDecoder struct{}

func (morseDecoder) Identify() types.Descriptor {
	return types.Descriptor{
		Name:        "Morse",
		Description: "Morse code decode the input (. and - separated by spaces, / for word breaks)",
		Link:        "https://en.wikipedia.org/wiki/Morse_code",
		Tags:        []string{"classical-cipher", "morse"},
		Popularity:  0.2,
	}
}

var morseTable = map[string]string{
	".-": "a", "-...": "b", "-.-.": "c", "-..": "d", ".": "e",
	"..-.": "f", "--.": "g", "....": "h", "..": "i", ".---": "j",
	"-.-": "k", ".-..": "l", "--": "m", "-.": "n", "---": "o",
	".--.": "p", "--.-": "q", ".-.": "r", "...": "s", "-": "t",
	"..-": "u", "...-": "v", ".--": "w", "-..-": "x", "-.--": "y",
	"--..": "z",
	"-----": "0", ".----": "1", "..---": "2", "...--": "3", "....-": "4",
	".....": "5", "-....": "6", "--...": "7", "---..": "8", "----.": "9",
	".-.-.-": ".", "--..--": ",", "..--..": "?", "-.-.--": "!",
}

func (m morseDecoder) Attempt(text types.Text, checker types.Checker) types.CrackResult {
	d := m.Identify()
	cr := reject(d, text)

	s := trimmed(string(text))
	if s == "" || !isMorseAlphabet(s) {
		return cr
	}

	words := strings.Split(s, "/")
	var out strings.Builder
	for wi, word := range words {
		if wi > 0 {
			out.WriteByte(' ')
		}
		for _, code := range strings.Fields(word) {
			letter, ok := morseTable[code]
			if !ok {
				return cr
			}
			out.WriteString(letter)
		}
	}
	candidate := types.Text(out.String())
	if !checkStringSuccess(candidate, text) {
		return cr
	}
	return classifyOne(cr, candidate, checker)
}

func isMorseAlphabet(s string) bool {
	for _, r := range s {
		switch r {
		case '.', '-', ' ', '/':
		default:
			return false
		}
	}
	return true
}
