package bridge

import (
	"testing"

	"github.com/katalvlaran/glasseam/gridbuilder"
)

// BenchmarkBridge runs the full five-stage pass over a six-room chain.
func BenchmarkBridge(b *testing.B) {
	base, err := gridbuilder.RoomLine(6, 8, 2)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := base.Clone()
		if _, err := Bridge(g, WithCoverageThreshold(0.95)); err != nil {
			b.Fatal(err)
		}
	}
}
