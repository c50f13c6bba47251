// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// scalar values.
//
// Every arithmetic operation on a *Value returns a new *Value that remembers
// its operands and the operation that produced it. Calling Backward on a
// result walks that graph in reverse topological order and adds
// ∂result/∂node to the Grad of every node it reaches.
//
// Example:
//
//	import "github.com/born-ml/scalar/autodiff"
//
//	func main() {
//	    a := autodiff.New(2)
//	    b := autodiff.New(3)
//	    c := autodiff.New(1)
//
//	    w := a.Mul(b).Add(c).Pow(2) // (a*b + c)²
//	    w.Backward()
//
//	    fmt.Println(w.Data(), a.Grad(), b.Grad(), c.Grad()) // 49 42 28 14
//	}
//
// Gradients accumulate: call ZeroGrads (or ZeroGrad on each leaf) before
// running Backward again on a graph that shares nodes.
package autodiff

import "github.com/born-ml/scalar/internal/autodiff"

// Value is a node of the computation graph.
type Value = autodiff.Value

// Op identifies the primitive operation that produced a Value.
type Op = autodiff.Op

// Primitive operations.
const (
	OpLeaf = autodiff.OpLeaf
	OpAdd  = autodiff.OpAdd
	OpMul  = autodiff.OpMul
	OpPow  = autodiff.OpPow
	OpReLU = autodiff.OpReLU
)

// Errors.
var (
	ErrTypeMismatch        = autodiff.ErrTypeMismatch
	ErrUnsupportedExponent = autodiff.ErrUnsupportedExponent
	ErrGradientMismatch    = autodiff.ErrGradientMismatch
)

// New creates a leaf with the given data and a zero gradient.
func New(data float64) *Value {
	return autodiff.New(data)
}

// Lift converts a *Value or any Go real number to a node.
func Lift(x any) (*Value, error) {
	return autodiff.Lift(x)
}

// Add returns a + b. Operands may be *Value or real numbers.
func Add(a, b any) (*Value, error) {
	return autodiff.Add(a, b)
}

// Mul returns a * b. Operands may be *Value or real numbers.
func Mul(a, b any) (*Value, error) {
	return autodiff.Mul(a, b)
}

// Sub returns a - b. Operands may be *Value or real numbers.
func Sub(a, b any) (*Value, error) {
	return autodiff.Sub(a, b)
}

// Div returns a / b. Operands may be *Value or real numbers.
func Div(a, b any) (*Value, error) {
	return autodiff.Div(a, b)
}

// Pow returns base^exp. The exponent must be a real number, not a *Value.
func Pow(base, exp any) (*Value, error) {
	return autodiff.Pow(base, exp)
}

// Neg returns -x.
func Neg(x any) (*Value, error) {
	return autodiff.Neg(x)
}

// ReLU returns max(0, x).
func ReLU(x any) (*Value, error) {
	return autodiff.ReLU(x)
}

// Sum returns the sum of values. The sum of no values is a zero leaf.
func Sum(values ...*Value) *Value {
	return autodiff.Sum(values...)
}

// Mean returns the arithmetic mean of values.
func Mean(values ...*Value) *Value {
	return autodiff.Mean(values...)
}

// Function builds a scalar graph from its leaf inputs.
type Function = autodiff.Function

// GradCheckConfig configures GradCheck.
type GradCheckConfig = autodiff.GradCheckConfig

// GradCheckResult holds both gradients compared by GradCheck.
type GradCheckResult = autodiff.GradCheckResult

// GradCheck compares Backward with a central finite-difference gradient of f at the point at.
func GradCheck(f Function, at []float64, config GradCheckConfig) (GradCheckResult, error) {
	return autodiff.GradCheck(f, at, config)
}
