// File: textio.go
// Title: Text Input Encodings
// Description: Decodes raw input in a named encoding and converts text
//              into narrow (byte) or wide (UTF-16) code units and back.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

// Package textio bridges external text encodings and seqx code units.
package textio

import (
	"io"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	mdwerrors "github.com/msto63/seqkit/foundation/core/errors"
	"github.com/msto63/seqkit/foundation/utils/mapx"
)

// Encoding is a named input encoding. Wide encodings can only be processed
// as UTF-16 code units.
type Encoding struct {
	Name string
	Wide bool

	enc encoding.Encoding
}

var registry = map[string]Encoding{
	"utf-8":    {Name: "utf-8", enc: unicode.UTF8},
	"latin1":   {Name: "latin1", enc: charmap.ISO8859_1},
	"utf-16le": {Name: "utf-16le", Wide: true, enc: unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)},
	"utf-16be": {Name: "utf-16be", Wide: true, enc: unicode.UTF16(unicode.BigEndian, unicode.UseBOM)},
}

var aliases = map[string]string{
	"utf8":       "utf-8",
	"iso-8859-1": "latin1",
	"iso8859-1":  "latin1",
	"utf16le":    "utf-16le",
	"utf16be":    "utf-16be",
}

// Names returns the canonical encoding names in sorted order.
func Names() []string {
	return mapx.SortedKeys(registry)
}

// Lookup returns the encoding registered under name or one of its aliases.
// An empty name selects utf-8.
func Lookup(name string) (Encoding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		key = "utf-8"
	}
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	e, ok := registry[key]
	if !ok {
		return Encoding{}, mdwerrors.InvalidInput(mdwerrors.ModuleCLI, "encoding",
			name, "one of "+strings.Join(Names(), ", "))
	}
	return e, nil
}

// Decode reads r to the end and returns its content as a Go string.
// Invalid input sequences are replaced with U+FFFD.
func (e Encoding) Decode(r io.Reader) (string, error) {
	data, err := io.ReadAll(transform.NewReader(r, e.enc.NewDecoder()))
	if err != nil {
		return "", mdwerrors.NewErrorBuilder(mdwerrors.ModuleCLI).
			Operation("decode").
			Message("cannot decode input as " + e.Name).
			Cause(err).
			Detail("encoding", e.Name).
			Build()
	}
	return string(data), nil
}

// Narrow converts s into byte code units of the encoding. Text that the
// encoding cannot represent is an error; wide encodings always fail.
func (e Encoding) Narrow(s string) ([]byte, error) {
	if e.Wide {
		return nil, mdwerrors.InvalidInput(mdwerrors.ModuleCLI, "narrow",
			e.Name, "a single-byte or utf-8 encoding")
	}
	units, err := e.enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, mdwerrors.NewErrorBuilder(mdwerrors.ModuleCLI).
			Operation("encode").
			Code(mdwerrors.CodeInvalidInput).
			Message("text is not representable in " + e.Name).
			Cause(err).
			Detail("encoding", e.Name).
			Build()
	}
	return units, nil
}

// NarrowText converts byte code units of the encoding back to a Go string.
func (e Encoding) NarrowText(units []byte) string {
	if e.Wide {
		return string(units)
	}
	text, err := e.enc.NewDecoder().Bytes(units)
	if err != nil {
		return string(units)
	}
	return string(text)
}

// Wide converts s into UTF-16 code units.
func Wide(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// WideText converts UTF-16 code units back to a Go string. Unpaired
// surrogates become U+FFFD.
func WideText(units []uint16) string {
	return string(utf16.Decode(units))
}
