package diffusion_test

import (
	"fmt"

	"github.com/katalvlaran/fokker/diffusion"
	"github.com/katalvlaran/fokker/ensemble"
)

// ExampleNodes prints a small Lobatto grid: endpoints exact, interior
// points clustered toward the boundaries.
func ExampleNodes() {
	z, err := diffusion.Nodes(5)
	if err != nil {
		fmt.Println("nodes:", err)
		return
	}

	for _, v := range z {
		fmt.Printf("%.4f\n", v)
	}
	// Output:
	// 0.0000
	// 0.1464
	// 0.5000
	// 0.8536
	// 1.0000
}

// ExampleNew steps a small solver twice with fixed boundary values and
// reads the enforced boundaries back.
func ExampleNew() {
	cfg := diffusion.DefaultConfig()
	cfg.Points = 9
	cfg.Dt = 0.25

	s, err := diffusion.New(cfg)
	if err != nil {
		fmt.Println("new:", err)
		return
	}

	s.SetBoundary(ensemble.Lower, 0.25)
	s.SetBoundary(ensemble.Upper, 0.75)
	for n := 0; n < 2; n++ {
		if err := s.Step(); err != nil {
			fmt.Println("step:", err)
			return
		}
	}

	fmt.Printf("t=%.2f after %d steps\n", s.SimTime(), s.Iteration())
	fmt.Printf("lower=%.2f upper=%.2f\n",
		s.BoundaryValue(ensemble.Lower), s.BoundaryValue(ensemble.Upper))
	// Output:
	// t=0.50 after 2 steps
	// lower=0.25 upper=0.75
}
