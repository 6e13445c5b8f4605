package utils

import (
	"testing"
)

func TestUTF16(t *testing.T) {
	line := "@Keyword ключ 😀 end"

	list := []struct {
		Byte int
		Char int
	}{
		{Byte: 0, Char: 0},
		{Byte: 9, Char: 9},
		{Byte: 17, Char: 13},
		{Byte: 18, Char: 14},
		{Byte: 22, Char: 16},
		{Byte: len(line), Char: 20},
	}

	for i, item := range list {
		if got := ByteToUTF16(line, item.Byte); got != item.Char {
			t.Errorf("%d - ByteToUTF16 got: %d; expect: %d", i+1, got, item.Char)
		}

		if got := UTF16ToByte(line, item.Char); got != item.Byte {
			t.Errorf("%d - UTF16ToByte got: %d; expect: %d", i+1, got, item.Byte)
		}
	}

	if got := UTF16ToByte(line, 100); got != len(line) {
		t.Errorf("past the end: %d", got)
	}
}

func TestUInt(t *testing.T) {
	if UInt(-1) != 0 || UInt(42) != 42 {
		t.Error("conversion")
	}
}

func TestNormalizeUri(t *testing.T) {
	list := [][2]string{
		{"/tmp/a.mfd", "file:///tmp/a.mfd"},
		{"file:///tmp/a.mfd", "file:///tmp/a.mfd"},
		{"file:///tmp/with%20space.mfd", "file:///tmp/with space.mfd"},
	}

	for i, item := range list {
		uri, err := NormalizeUri(item[0])

		if err != nil || uri != item[1] {
			t.Errorf("%d - got: %s %v; expect: %s", i+1, uri, err, item[1])
		}
	}
}
