// SPDX-License-Identifier: MIT

package reduce_test

import (
	"context"
	"fmt"

	"github.com/alessimichele/PersHomEmbProj/cloud"
	"github.com/alessimichele/PersHomEmbProj/reduce"
)

func ExampleSpectral_Reduce() {
	pc, _ := cloud.FromRows([][]float64{
		{0, 0, 0},
		{1, 0, 0},
		{2, 0, 0},
	})
	out, err := reduce.NewSpectral().Reduce(context.Background(), pc, 1, reduce.Linear)
	if err != nil {
		fmt.Println(err)
		return
	}
	col, _ := out.Column(0)
	fmt.Printf("%.2f\n", col)
	// Output: [-1.00 0.00 1.00]
}
