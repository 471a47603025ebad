package xgxerrchain

import "testing"

func BenchmarkWalk(b *testing.B) {
	err := chain3()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Walk(err, func(error) bool { return true })
	}
}

func BenchmarkInlineString(b *testing.B) {
	err := chain3()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Inline(err).String()
	}
}

func BenchmarkArrayStrings(b *testing.B) {
	err := chain3()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Array(err).Strings()
	}
}

func BenchmarkOwned(b *testing.B) {
	err := chain3()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Owned(err)
	}
}
