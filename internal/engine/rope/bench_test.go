package rope

import (
	"math/rand"
	"strings"
	"testing"
)

func benchText(lines int) string {
	return strings.Repeat("The quick brown fox jumps over the lazy dog.\n", lines)
}

func BenchmarkFromString(b *testing.B) {
	sizes := []struct {
		name  string
		lines int
	}{
		{"100", 100},
		{"10K", 10000},
		{"100K", 100000},
	}

	for _, size := range sizes {
		text := benchText(size.lines)
		b.Run(size.name, func(b *testing.B) {
			b.SetBytes(int64(len(text)))
			for i := 0; i < b.N; i++ {
				_ = FromString(text)
			}
		})
	}
}

func BenchmarkInsertCharStart(b *testing.B) {
	r := FromString(benchText(10000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.InsertChar(0, 'x')
	}
}

func BenchmarkInsertCharMiddle(b *testing.B) {
	r := FromString(benchText(10000))
	mid := r.CharCount() / 2
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.InsertChar(mid, 'x')
	}
}

func BenchmarkInsertCharRandom(b *testing.B) {
	r := FromString(benchText(10000))
	rng := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.InsertChar(rng.Intn(r.CharCount()+1), 'x')
	}
}

func BenchmarkTypingSession(b *testing.B) {
	for i := 0; i < b.N; i++ {
		r := FromString(benchText(1000))
		pos := r.LineToChar(500)
		for j := 0; j < 200; j++ {
			r = r.InsertChar(pos+j, 'a')
		}
	}
}

func BenchmarkRemoveMiddle(b *testing.B) {
	r := FromString(benchText(10000))
	mid := r.CharCount() / 2
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Remove(mid, mid+10)
	}
}

func BenchmarkLineToChar(b *testing.B) {
	r := FromString(benchText(100000))
	rng := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.LineToChar(rng.Intn(r.LineCount()))
	}
}

func BenchmarkCharToLine(b *testing.B) {
	r := FromString(benchText(100000))
	rng := rand.New(rand.NewSource(1))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.CharToLine(rng.Intn(r.CharCount()))
	}
}

func BenchmarkLine(b *testing.B) {
	r := FromString(benchText(100000))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = r.Line(i % r.LineCount())
	}
}

func BenchmarkWriteTo(b *testing.B) {
	r := FromString(benchText(10000))
	b.SetBytes(int64(r.Len()))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var sb strings.Builder
		_, _ = r.WriteTo(&sb)
	}
}

// BenchmarkStringVsRopeInsert compares rope inserts to naive string splicing.
func BenchmarkStringVsRopeInsert(b *testing.B) {
	text := benchText(10000)

	b.Run("String", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			mid := len(text) / 2
			_ = text[:mid] + "x" + text[mid:]
		}
	})

	b.Run("Rope", func(b *testing.B) {
		r := FromString(text)
		mid := r.CharCount() / 2
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = r.InsertChar(mid, 'x')
		}
	})
}
