package options_test

import (
	"fmt"

	"github.com/geoarc/sweep/options"
	"github.com/geoarc/sweep/point"
)

func ExampleWithEpsilon() {
	p1 := point.New(1, 1)
	p2 := point.New(1.0000001, 1.0000001)
	epsilon := 1e-6

	fmt.Printf(
		"Is point %s equal to point %s without epsilon: %t\n",
		p1, p2, p1.Eq(p2),
	)

	fmt.Printf(
		"Is point %s equal to point %s with an epsilon of %.0e: %t\n",
		p1, p2, epsilon, p1.Eq(p2, options.WithEpsilon(epsilon)),
	)

	// Output:
	// Is point (1,1) equal to point (1.0000001,1.0000001) without epsilon: false
	// Is point (1,1) equal to point (1.0000001,1.0000001) with an epsilon of 1e-06: true
}
