// File: unit_test.go
// Title: Unit Tests for Character Classification
// Description: Tests the built-in classifiers and classifier resolution.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test implementation

package seqx

import (
	"testing"

	mdwerror "github.com/msto63/seqkit/foundation/core/error"
)

func TestClassifiers(t *testing.T) {
	tests := []struct {
		r       rune
		unicode Class
		ascii   Class
	}{
		{' ', ClassSpace, ClassSpace},
		{'\v', ClassSpace, ClassSpace},
		{'\u3000', ClassSpace, ClassOther},
		{'A', ClassUpper, ClassUpper},
		{'z', ClassLower, ClassLower},
		{'é', ClassLower, ClassOther},
		{'日', ClassAlpha, ClassOther},
		{'7', ClassDigit, ClassDigit},
		{'!', ClassPunct, ClassPunct},
		{'+', ClassPunct, ClassPunct},
		{0x00, ClassOther, ClassOther},
	}

	for _, tt := range tests {
		if got := UnicodeClassifier.Classify(tt.r); got != tt.unicode {
			t.Errorf("UnicodeClassifier(%U) = %s; want %s", tt.r, got, tt.unicode)
		}
		if got := ASCIIClassifier.Classify(tt.r); got != tt.ascii {
			t.Errorf("ASCIIClassifier(%U) = %s; want %s", tt.r, got, tt.ascii)
		}
	}
}

func TestClassIsAlpha(t *testing.T) {
	for _, c := range []Class{ClassAlpha, ClassUpper, ClassLower} {
		if !c.IsAlpha() {
			t.Errorf("%s.IsAlpha() = false", c)
		}
	}
	if ClassDigit.IsAlpha() || ClassSpace.IsAlpha() {
		t.Error("digit and space are not alphabetic")
	}
}

func TestClassifierByName(t *testing.T) {
	for _, name := range []string{"", "unicode", "UNICODE", " ascii ", "c"} {
		if _, err := ClassifierByName(name); err != nil {
			t.Errorf("ClassifierByName(%q): %v", name, err)
		}
	}

	_, err := ClassifierByName("ebcdic")
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", err)
	}
}

func TestNarrowHighBytesNeverClassified(t *testing.T) {
	always := ClassifierFunc(func(rune) Class { return ClassSpace })
	if classify(always, byte(0xA0)) != ClassOther {
		t.Error("high byte should not reach the classifier")
	}
	if classify(always, uint16(0xA0)) != ClassSpace {
		t.Error("wide unit should reach the classifier")
	}
	if !IsSpace(byte('\t')) || IsSpace(byte('x')) {
		t.Error("IsSpace mismatch")
	}
}
