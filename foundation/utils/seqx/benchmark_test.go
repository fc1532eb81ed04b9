// File: benchmark_test.go
// Title: Benchmarks for the Sequence Engine
// Description: Benchmarks for search and segmentation on narrow and wide
//              sequences.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial benchmark implementation

package seqx

import (
	"strings"
	"testing"
)

var (
	benchNarrow = []byte(strings.Repeat("lorem ipsum dolor sit amet ", 200) + "needle")
	benchWide   = []rune(string(benchNarrow))
)

func BenchmarkFindNarrow(b *testing.B) {
	n := Seq([]byte("needle"))
	for i := 0; i < b.N; i++ {
		Find(benchNarrow, n)
	}
}

func BenchmarkFindWide(b *testing.B) {
	n := Seq([]rune("needle"))
	for i := 0; i < b.N; i++ {
		Find(benchWide, n)
	}
}

func BenchmarkCount(b *testing.B) {
	n := Seq([]byte("or"))
	for i := 0; i < b.N; i++ {
		Count(benchNarrow, n)
	}
}

func BenchmarkSplit(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Split(benchNarrow, -1)
	}
}

func BenchmarkSplitOn(b *testing.B) {
	sep := Seq([]byte("dolor"))
	for i := 0; i < b.N; i++ {
		SplitOn(benchNarrow, sep, -1)
	}
}

func BenchmarkApplyReverse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Reverse(benchWide)
	}
}

func BenchmarkStrip(b *testing.B) {
	hay := []byte("   \t padded value \n  ")
	for i := 0; i < b.N; i++ {
		Strip(hay)
	}
}
