// SPDX-License-Identifier: MIT

package grooming_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/jetobsmc/grooming"
	"github.com/katalvlaran/jetobsmc/jet"
)

// ExamplePassFraction applies the default SoftDrop condition to a 3:1 pair.
func ExamplePassFraction() {
	j, _ := jet.New([][]float64{
		{30, 30, 0, 0},
		{10, 10 * math.Cos(0.5), 10 * math.Sin(0.5), 0},
	})

	fmt.Printf("zg=%.2f rg=%.2f pass=%v\n",
		grooming.Zg(j), grooming.Rg(j), grooming.PassFraction(j, grooming.DefaultParams()))
	// Output:
	// zg=0.25 rg=0.50 pass=1
}
