package builder_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/plexus/basis"
	"github.com/katalvlaran/plexus/builder"
	"github.com/katalvlaran/plexus/geometric"
	"github.com/katalvlaran/plexus/metric"
	"github.com/katalvlaran/plexus/stream"
)

// Adjacent octahedron vertices are √2 apart and antipodal ones 2, so the
// Rips complex at 1.5 is the hollow octahedron.
func ExampleOctahedron() {
	space, err := metric.NewEuclidean(builder.Octahedron())
	if err != nil {
		panic(err)
	}
	s, err := geometric.VietorisRips(context.Background(), space, 1.5, 3)
	if err != nil {
		panic(err)
	}
	for k := range 4 {
		fmt.Print(stream.SkeletonSize[basis.Simplex](s, k), " ")
	}
	fmt.Println()
	// Output: 6 12 8 0
}
