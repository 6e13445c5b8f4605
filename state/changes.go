package state

import (
	"strings"

	. "github.com/mfdls/medford-lsp/types"
	. "github.com/mfdls/medford-lsp/utils"
)

// ChangeText replaces the text inside r with newText. Positions past the end
// of a line or of the text are clamped.
func ChangeText(text string, r Range, newText string) string {
	start := positionOffset(text, r.Start)
	end := positionOffset(text, r.End)

	if end < start {
		start, end = end, start
	}

	return text[:start] + newText + text[end:]
}

func positionOffset(text string, pos Position) int {
	offset := getLineOffset(text, int(pos.Line), 0)

	if offset >= len(text) {
		return len(text)
	}

	line := text[offset:]

	if i := strings.IndexByte(line, '\n'); i != -1 {
		line = line[:i]
	}

	return offset + UTF16ToByte(line, int(pos.Character))
}

func getLineOffset(text string, line int, offset int) int {
	if line == 0 {
		return offset
	}

	c := "\n"
	n := 0

	for {
		i := strings.Index(text[offset:], c)

		if i == -1 {
			return len(text)
		}

		offset += i + 1

		n++

		if n == line {
			return offset
		}
	}
}
