package stomp_test

import (
	"fmt"

	"github.com/katalvlaran/mprof/stomp"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleCompute
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A twelve-point series carrying the shape [0 1 0] at positions 0 and
//	5. The profile minimum lands exactly on those windows: each one's
//	nearest neighbor is the other, at z-normalized distance 0.
//
// Complexity: O(n²) time, O(n·k) memory.
func ExampleCompute() {
	T := []float64{0, 1, 0, -1, -1, 0, 1, 0, -0.5, 0.3, -0.8, 0.2}

	prof, err := stomp.Compute(T, 3, 1)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("windows:      %d\n", len(prof.P))
	fmt.Printf("nearest to 0: %d (distance %.4f)\n", prof.I[0][0], prof.P[0][0])
	fmt.Printf("causal for 5: %d\n", prof.LeftI[5])
	// Output:
	// windows:      10
	// nearest to 0: 5 (distance 0.0000)
	// causal for 5: 0
}
