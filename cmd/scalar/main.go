// Package main provides the scalar autodiff CLI.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/scalar/autodiff"
	"github.com/born-ml/scalar/internal/data"
	"github.com/born-ml/scalar/internal/train"
	"github.com/born-ml/scalar/nn"
)

const version = "v0.1.0"

func main() {
	log.SetFlags(0)
	log.SetPrefix("scalar: ")

	if len(os.Args) < 2 {
		usage()
		return
	}

	args := os.Args[2:]
	switch os.Args[1] {
	case "version":
		fmt.Printf("scalar %s\n", version)
	case "expr":
		runExpr(args)
	case "check":
		runCheck(args)
	case "train":
		runTrain(args)
	case "eval":
		runEval(args)
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("scalar - reverse-mode autodiff over scalar values")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  expr       Evaluate w = (a*b + c)^2 and its gradients")
	fmt.Println("  check      Compare Backward with finite differences")
	fmt.Println("  train      Train an MLP on the two-moons dataset")
	fmt.Println("  eval       Evaluate a saved model on the two-moons dataset")
}

func runExpr(args []string) {
	fs := flag.NewFlagSet("expr", flag.ExitOnError)
	a := fs.Float64("a", 2, "Value of a")
	b := fs.Float64("b", 3, "Value of b")
	c := fs.Float64("c", 1, "Value of c")
	_ = fs.Parse(args)

	va, vb, vc := autodiff.New(*a), autodiff.New(*b), autodiff.New(*c)
	w := va.Mul(vb).Add(vc).Pow(2)
	w.Backward()

	fmt.Printf("w     = %g\n", w.Data())
	fmt.Printf("dw/da = %g\n", va.Grad())
	fmt.Printf("dw/db = %g\n", vb.Grad())
	fmt.Printf("dw/dc = %g\n", vc.Grad())
	fmt.Printf("graph: %d nodes\n", len(w.Topo()))
}

func runCheck(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	at := fs.String("at", "1.5,-0.5,2", "Comma-separated point (x,y,z)")
	tol := fs.Float64("tol", 1e-4, "Maximum absolute error")
	_ = fs.Parse(args)

	point, err := parsePoint(*at)
	if err != nil {
		log.Fatalf("invalid -at: %v", err)
	}
	if len(point) != 3 {
		log.Fatalf("invalid -at: need 3 coordinates, got %d", len(point))
	}

	res, err := autodiff.GradCheck(checkFunc, point, autodiff.GradCheckConfig{Tolerance: *tol})
	fmt.Printf("f = %g\n", res.Value)
	for i := range res.Analytic {
		fmt.Printf("  x%d: analytic %12.6g  numerical %12.6g\n", i, res.Analytic[i], res.Numerical[i])
	}
	fmt.Printf("max abs error %.3g\n", res.MaxAbsError)
	if err != nil {
		log.Fatalf("gradient check failed: %v", err)
	}
	fmt.Println("OK")
}

// checkFunc is relu(x*y + z)² / (z² + 1) - x.
func checkFunc(v []*autodiff.Value) *autodiff.Value {
	x, y, z := v[0], v[1], v[2]
	num := x.Mul(y).Add(z).ReLU().Pow(2)
	den := z.Pow(2).AddScalar(1)
	return num.Div(den).Sub(x)
}

func parsePoint(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("coordinate %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

func runTrain(args []string) {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	samples := fs.Int("samples", 100, "Number of two-moons samples")
	noise := fs.Float64("noise", 0.1, "Standard deviation of the sample noise")
	steps := fs.Int("steps", 100, "Number of optimization steps")
	lr := fs.Float64("lr", 1.0, "Initial learning rate (decays linearly to lr/10)")
	batch := fs.Int("batch", 0, "Batch size (0 = full batch)")
	hidden := fs.String("hidden", "16,16", "Comma-separated hidden layer sizes")
	seed := fs.Int64("seed", 1337, "Random seed")
	save := fs.String("save", "", "Write the trained model to this SafeTensors file")
	_ = fs.Parse(args)

	sizes, err := parseSizes(*hidden)
	if err != nil {
		log.Fatalf("invalid -hidden: %v", err)
	}

	rng := rand.New(rand.NewSource(*seed)) //nolint:gosec // reproducible demo data
	xs, ys := data.Moons(*samples, *noise, rng)
	if len(xs) == 0 {
		log.Fatalf("invalid -samples: %d", *samples)
	}

	model := nn.NewMLP(2, append(sizes, 1), rng)
	fmt.Println(model)
	fmt.Printf("number of parameters %d\n", nn.CountParameters(model))

	trainer := train.NewTrainer(model, train.Config{
		Steps:     *steps,
		LR:        *lr,
		FinalLR:   *lr / 10,
		BatchSize: *batch,
		Seed:      *seed,
	})
	stats := trainer.Fit(xs, ys, func(s train.StepStats) {
		fmt.Printf("step %d loss %.6f, accuracy %.1f%% (lr %.4f)\n", s.Step, s.Loss, s.Accuracy*100, s.LR)
	})

	acc := nn.Evaluate(model, xs, ys, nn.DefaultEvalConfig())
	fmt.Printf("final accuracy %.1f%%\n", acc*100)

	if *save == "" || len(stats) == 0 {
		return
	}
	last := stats[len(stats)-1]
	ckpt := &nn.Checkpoint{
		Model:     model,
		Optimizer: trainer.Optimizer,
		Step:      last.Step,
		Loss:      last.Loss,
		Metadata: map[string]string{
			"dataset": "moons",
			"seed":    strconv.FormatInt(*seed, 10),
		},
	}
	if err := ckpt.Save(*save); err != nil {
		log.Fatalf("failed to save model: %v", err)
	}
	fmt.Printf("saved %s\n", *save)
}

func runEval(args []string) {
	fs := flag.NewFlagSet("eval", flag.ExitOnError)
	load := fs.String("load", "model.safetensors", "SafeTensors file written by train -save")
	samples := fs.Int("samples", 100, "Number of two-moons samples")
	noise := fs.Float64("noise", 0.1, "Standard deviation of the sample noise")
	hidden := fs.String("hidden", "16,16", "Comma-separated hidden layer sizes of the saved model")
	seed := fs.Int64("seed", 7, "Random seed for the evaluation data")
	_ = fs.Parse(args)

	sizes, err := parseSizes(*hidden)
	if err != nil {
		log.Fatalf("invalid -hidden: %v", err)
	}

	rng := rand.New(rand.NewSource(*seed)) //nolint:gosec // reproducible demo data
	model := nn.NewMLP(2, append(sizes, 1), rng)
	ckpt, err := nn.LoadCheckpoint(*load, model, nil)
	if err != nil {
		log.Fatalf("failed to load model: %v", err)
	}
	fmt.Printf("loaded %s (step %d, loss %.6f)\n", *load, ckpt.Step, ckpt.Loss)

	xs, ys := data.Moons(*samples, *noise, rng)
	acc := nn.Evaluate(model, xs, ys, nn.DefaultEvalConfig())
	fmt.Printf("accuracy %.1f%%\n", acc*100)
}

func parseSizes(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		if v <= 0 {
			return nil, fmt.Errorf("layer %d: size must be positive, got %d", i, v)
		}
		out[i] = v
	}
	return out, nil
}
