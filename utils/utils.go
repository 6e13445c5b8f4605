package utils

import (
	urlParser "net/url"
	"strings"
	"unicode/utf16"

	"fortio.org/safecast"
	. "github.com/mfdls/medford-lsp/types"
	proto "github.com/tliron/glsp/protocol_3_16"
)

func UriToPath(uri Uri) (string, error) {
	if strings.HasPrefix(uri, "/") {
		return uri, nil
	}

	url, err := urlParser.Parse(uri)

	if err != nil {
		return "", err
	}

	return url.Path, nil
}

func ToUri(path string) Uri {
	if strings.HasPrefix(path, "/") {
		path = "file://" + path
	}

	return path
}

func NormalizeUri(uri Uri) (Uri, error) {
	path, err := UriToPath(uri)

	if err != nil {
		return "", err
	}

	return ToUri(path), nil
}

func P[T ~string | ~int32](src T) *T {
	return &src
}

// UInt converts a non negative offset or line index to a protocol integer.
// Values that do not fit are clamped.
func UInt(n int) proto.UInteger {
	v, err := safecast.Conv[proto.UInteger](n)

	if err != nil {
		if n < 0 {
			return 0
		}

		return proto.UInteger(^uint32(0))
	}

	return v
}

// UTF16Len is the length of s in UTF-16 code units.
func UTF16Len(s string) int {
	n := 0

	for _, r := range s {
		n += utf16.RuneLen(r)
	}

	return n
}

// ByteToUTF16 converts a byte offset in line to a UTF-16 column.
func ByteToUTF16(line string, offset int) int {
	offset = min(max(offset, 0), len(line))

	return UTF16Len(line[:offset])
}

// UTF16ToByte converts a UTF-16 column in line to a byte offset.
func UTF16ToByte(line string, char int) int {
	n := 0

	for i, r := range line {
		if n >= char {
			return i
		}

		n += utf16.RuneLen(r)
	}

	return len(line)
}

// LineRange spans byte offsets start..end of line number lineIndex (0-based).
func LineRange(lineIndex int, line string, start int, end int) Range {
	return Range{
		Start: Position{Line: UInt(lineIndex), Character: UInt(ByteToUTF16(line, start))},
		End:   Position{Line: UInt(lineIndex), Character: UInt(ByteToUTF16(line, end))},
	}
}
