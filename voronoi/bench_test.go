package voronoi_test

import (
	"testing"

	"github.com/katalvlaran/fortune/geom"
	"github.com/katalvlaran/fortune/voronoi"
)

// benchSites is the five-site pentagon from TestBuildFiveSites: three
// circle events and every border side crossed during closure.
var benchSites = []geom.Vec2{
	{X: 500, Y: 820},
	{X: 280, Y: 760},
	{X: 730, Y: 700},
	{X: 400, Y: 440},
	{X: 610, Y: 280},
}

// BenchmarkBuild measures a full sweep including clipping and face
// closure; the builder is reused across iterations the way Build
// resets it.
func BenchmarkBuild(b *testing.B) {
	builder, err := voronoi.NewBuilder(1000, 1000)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, s := range benchSites {
			if err := builder.AddSite(s.X, s.Y); err != nil {
				b.Fatal(err)
			}
		}
		if d := builder.Build(); len(d.Faces()) != len(benchSites) {
			b.Fatal("unexpected face count")
		}
	}
}

// BenchmarkCreateTriangles measures the buffer conversion alone.
func BenchmarkCreateTriangles(b *testing.B) {
	builder, err := voronoi.NewBuilder(1000, 1000)
	if err != nil {
		b.Fatal(err)
	}
	for _, s := range benchSites {
		if err := builder.AddSite(s.X, s.Y); err != nil {
			b.Fatal(err)
		}
	}
	d := builder.Build()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		vertices, indices := d.CreateTriangles()
		if len(vertices) == 0 || len(indices) == 0 {
			b.Fatal("empty buffers")
		}
	}
}
