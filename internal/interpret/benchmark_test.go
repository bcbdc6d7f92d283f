package interpret

import (
	"fmt"
	"testing"
)

// ============================================================================
// Value Extraction Benchmarks
// ============================================================================

// BenchmarkIdentifierExtract benchmarks identifier extraction.
// This runs once per row of every identifier-shaped column, across
// every header offset hypothesis.
func BenchmarkIdentifierExtract(b *testing.B) {
	testCases := []string{
		"19900101-1234",
		"900101 1234",
		"900101-TF12",
		"900101",
		"id: 900101-1234 (ok)",
		"not an identifier",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, tc := range testCases {
			identifierValue.FindString(tc)
		}
	}
}

// BenchmarkIdentifierExtract_Canonical benchmarks the most common form.
func BenchmarkIdentifierExtract_Canonical(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		identifierValue.FindString("900101-1234")
	}
}

// BenchmarkEmailExtract benchmarks email extraction.
func BenchmarkEmailExtract(b *testing.B) {
	testCases := []string{
		"anna.svensson@example.com",
		"björn@exämple.se",
		"mail: bo@example.com!",
		"ingen adress",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, tc := range testCases {
			emailValue.FindString(tc)
		}
	}
}

// BenchmarkIsNameLike benchmarks name validation, the per-row check of
// both name columns.
func BenchmarkIsNameLike(b *testing.B) {
	testCases := []string{
		"Svensson",
		"van der Berg",
		"?!",
		"900101",
		"",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, tc := range testCases {
			isNameLike(tc)
		}
	}
}

// BenchmarkNormalizeIdentifier benchmarks identifier canonicalization.
func BenchmarkNormalizeIdentifier(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		NormalizeIdentifier("19900101-1234")
	}
}

// ============================================================================
// Classification Benchmarks
// ============================================================================

// BenchmarkClassifyColumn benchmarks full arbitration over a realistic
// identifier column.
func BenchmarkClassifyColumn(b *testing.B) {
	values := make([]string, 100)
	for i := range values {
		values[i] = fmt.Sprintf("9001%02d-%04d", i%28+1, i)
	}
	col := newColumn("Personnummer", values...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ClassifyColumn(col)
	}
}
