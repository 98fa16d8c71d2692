// Command fmm1d runs the 1-D FMM evaluator against a YAML config and a text
// fixture, prints build/evaluate/exact timings, and reports the error
// against a direct dense evaluation.
//
// Structure mirrors FMM_Main.py's top level (build timing, evaluate timing,
// exact timing, max-error print) and the teacher's example-driver idiom
// (examples/singleparty/ckks_sigmoid_chebyshev/main.go). The command panics
// on any error: setup errors and the errors fmm.BuildTree and fmm.Evaluate
// return alike.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/bbfmm/fmm1d/config"
	"github.com/bbfmm/fmm1d/fixture"
	"github.com/bbfmm/fmm1d/fmm"
	"github.com/bbfmm/fmm1d/internal/matrix"
	"github.com/bbfmm/fmm1d/internal/precision"
	"github.com/bbfmm/fmm1d/kernel"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the run configuration")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	// m, the number of charge sets per point, isn't part of config.Config;
	// the single-charge-set case is what the fixture format is used for here.
	points, charges, err := fixture.Load(cfg.InputFile, 1)
	if err != nil {
		panic(err)
	}

	k := selectKernel(cfg)

	fmt.Printf(" Number of charges: %d\n", len(points))
	fmt.Printf(" Number of sets of charges: %d\n", charges.Cols())
	fmt.Printf(" Number of Chebyshev Nodes: %d\n", cfg.Rank)

	start := time.Now()
	tree, err := fmm.BuildTree(cfg.Rank, points, fmm.Options{Verify: cfg.Verify})
	if err != nil {
		panic(err)
	}
	fmt.Printf(" Total time taken for FMM(build tree): %s\n", time.Since(start))

	start = time.Now()
	approx, err := fmm.Evaluate(k, tree, charges)
	if err != nil {
		panic(err)
	}
	fmt.Printf(" Total time taken for FMM(calculations): %s\n", time.Since(start))

	start = time.Now()
	fmt.Println("\n Starting exact computation...")
	exact := directEvaluate(k, points, charges)
	fmt.Println(" Done.")
	fmt.Printf(" Total time taken for Exact(calculations): %s\n", time.Since(start))

	fmt.Println()
	fmt.Println(precision.Compare(approx, exact).String())
}

func selectKernel(cfg config.Config) kernel.Func {
	switch cfg.Kernel {
	case "gaussian":
		return kernel.Gaussian1D(cfg.GaussianA)
	default:
		return kernel.Laplacian1D
	}
}

// directEvaluate computes K·q without the tree, for the comparison report.
func directEvaluate(k kernel.Func, points []float64, charges matrix.Dense[float64]) matrix.Dense[float64] {
	K := k(points, points)
	return matrix.Mul(K, charges)
}
