// File: unit.go
// Title: Code Units and Character Classification
// Description: Defines the code-unit constraint shared by every sequence
//              operation and the classification collaborator that decides
//              which units count as whitespace.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package seqx

import (
	"strings"
	"unicode"
	"unicode/utf8"
	"unsafe"

	mdwerrors "github.com/msto63/seqkit/foundation/core/errors"
)

// CodeUnit is one fixed-width element of a sequence. Narrow sequences use
// byte; wide sequences use uint16 (UTF-16) or rune.
type CodeUnit interface {
	~uint8 | ~uint16 | ~int32 | ~uint32
}

// Class is the classification of a single code unit
type Class uint8

const (
	ClassOther Class = iota
	ClassAlpha
	ClassDigit
	ClassSpace
	ClassPunct
	ClassUpper
	ClassLower
)

// String returns the name of the class
func (c Class) String() string {
	switch c {
	case ClassAlpha:
		return "alpha"
	case ClassDigit:
		return "digit"
	case ClassSpace:
		return "space"
	case ClassPunct:
		return "punct"
	case ClassUpper:
		return "upper"
	case ClassLower:
		return "lower"
	default:
		return "other"
	}
}

// IsAlpha reports whether c is a letter class, cased or not
func (c Class) IsAlpha() bool {
	return c == ClassAlpha || c == ClassUpper || c == ClassLower
}

// Classifier classifies code units. Implementations must be safe for
// concurrent use.
type Classifier interface {
	Classify(r rune) Class
}

// ClassifierFunc adapts a plain function to the Classifier interface
type ClassifierFunc func(r rune) Class

// Classify calls f(r)
func (f ClassifierFunc) Classify(r rune) Class {
	return f(r)
}

var (
	// UnicodeClassifier classifies with the tables of package unicode
	UnicodeClassifier Classifier = ClassifierFunc(classifyUnicode)

	// ASCIIClassifier follows the C locale: only 0x00-0x7F is classified
	ASCIIClassifier Classifier = ClassifierFunc(classifyASCII)

	// DefaultClassifier is used by operations that take no explicit classifier
	DefaultClassifier = UnicodeClassifier
)

// ClassifierByName resolves a configured classifier name ("unicode" or "ascii")
func ClassifierByName(name string) (Classifier, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "unicode":
		return UnicodeClassifier, nil
	case "ascii", "c":
		return ASCIIClassifier, nil
	default:
		return nil, mdwerrors.InvalidInput(mdwerrors.ModuleSeqx, "classifier_by_name", name, "unicode|ascii")
	}
}

func classifyUnicode(r rune) Class {
	switch {
	case unicode.IsSpace(r):
		return ClassSpace
	case unicode.IsUpper(r):
		return ClassUpper
	case unicode.IsLower(r):
		return ClassLower
	case unicode.IsLetter(r):
		return ClassAlpha
	case unicode.IsDigit(r):
		return ClassDigit
	case unicode.IsPunct(r), unicode.IsSymbol(r):
		return ClassPunct
	default:
		return ClassOther
	}
}

func classifyASCII(r rune) Class {
	switch {
	case r < 0 || r >= utf8.RuneSelf:
		return ClassOther
	case r == ' ', r >= '\t' && r <= '\r':
		return ClassSpace
	case r >= 'A' && r <= 'Z':
		return ClassUpper
	case r >= 'a' && r <= 'z':
		return ClassLower
	case r >= '0' && r <= '9':
		return ClassDigit
	case r > ' ' && r < 0x7f:
		return ClassPunct
	default:
		return ClassOther
	}
}

// classify applies c to u. Narrow units above 0x7F are bytes of a multi-byte
// encoding and are never classified.
func classify[U CodeUnit](c Classifier, u U) Class {
	if unsafe.Sizeof(u) == 1 && uint32(u) >= utf8.RuneSelf {
		return ClassOther
	}
	if c == nil {
		c = DefaultClassifier
	}
	return c.Classify(rune(u))
}

// spaceTest returns a predicate reporting whitespace units under c
func spaceTest[U CodeUnit](c Classifier) func(U) bool {
	return func(u U) bool {
		return classify(c, u) == ClassSpace
	}
}

// IsSpace reports whether u is whitespace under the default classifier
func IsSpace[U CodeUnit](u U) bool {
	return classify(DefaultClassifier, u) == ClassSpace
}
