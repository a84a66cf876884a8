package decoders

import (
	"strings"

	"github.com/RenTrieu/Ares/internal/types"
)

type brainfuckDecoder struct{}

func (brainfuckDecoder) Identify() types.Descriptor {
	return types.Descriptor{
		Name:        "Brainfuck",
		Description: "Interpret the input as Brainfuck source and capture its output",
		Link:        "https://en.wikipedia.org/wiki/Brainfuck",
		Tags:        []string{"esoteric-language"},
		Popularity:  0.1,
	}
}

const (
	brainfuckMinInstructions = 20
	brainfuckMinOutputs      = 5
	brainfuckTapeSize        = 30000
	brainfuckMaxSteps        = 2_000_000
)

func (bf brainfuckDecoder) Attempt(text types.Text, checker types.Checker) types.CrackResult {
	d := bf.Identify()
	cr := reject(d, text)

	src := string(text)
	if !looksLikeBrainfuck(src) {
		return cr
	}

	out, err := runBrainfuck(src)
	if err != nil {
		return cr
	}
	candidate := types.Text(out)
	if !checkStringSuccess(candidate, text) {
		return cr
	}
	return classifyOne(cr, candidate, checker)
}

// looksLikeBrainfuck applies the §5 length heuristic before even
// attempting to run the program: at least 20 of the 8 Brainfuck
// instruction characters, and at least 5 '.' (output) ops, otherwise the
// interpreter would spend cycles on text that is obviously not a
// program.
func looksLikeBrainfuck(src string) bool {
	instructions := 0
	outputs := 0
	for _, r := range src {
		switch r {
		case '+', '-', '<', '>', '[', ']', '.', ',':
			instructions++
			if r == '.' {
				outputs++
			}
		}
	}
	return instructions >= brainfuckMinInstructions && outputs >= brainfuckMinOutputs
}

// runBrainfuck interprets src against an empty input stream, returning
// every byte written via '.'. Unmatched brackets (a structural
// violation per §4.1) and a step budget that would indicate an infinite
// loop both yield an error so the caller treats this as a non-decodable
// input.
func runBrainfuck(src string) (string, error) {
	jump, err := matchBrackets(src)
	if err != nil {
		return "", err
	}

	tape := make([]byte, brainfuckTapeSize)
	ptr := 0
	var out strings.Builder

	steps := 0
	for pc := 0; pc < len(src); pc++ {
		steps++
		if steps > brainfuckMaxSteps {
			return "", errBrainfuckBudget
		}
		switch src[pc] {
		case '>':
			ptr = (ptr + 1) % brainfuckTapeSize
		case '<':
			ptr = (ptr - 1 + brainfuckTapeSize) % brainfuckTapeSize
		case '+':
			tape[ptr]++
		case '-':
			tape[ptr]--
		case '.':
			out.WriteByte(tape[ptr])
		case ',':
			tape[ptr] = 0 // no input stream available; reads as zero
		case '[':
			if tape[ptr] == 0 {
				pc = jump[pc]
			}
		case ']':
			if tape[ptr] != 0 {
				pc = jump[pc]
			}
		}
	}
	return out.String(), nil
}

func matchBrackets(src string) (map[int]int, error) {
	jump := make(map[int]int)
	var stack []int
	for i, r := range src {
		switch r {
		case '[':
			stack = append(stack, i)
		case ']':
			if len(stack) == 0 {
				return nil, errBrainfuckUnmatched
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			jump[open] = i
			jump[i] = open
		}
	}
	if len(stack) != 0 {
		return nil, errBrainfuckUnmatched
	}
	return jump, nil
}
