package serialization

import (
	"fmt"
	"strings"
)

// Validation limits for resource protection.
const (
	MaxHeaderSize    = 100 * 1024 * 1024 // 100MB - maximum header size
	MaxTensorNameLen = 4096              // Maximum tensor name length
)

// validateName rejects empty, oversized and reserved names.
func validateName(name string) error {
	switch {
	case name == "":
		return &ValidationError{Err: ErrInvalidTensorName, Details: "empty name"}
	case len(name) > MaxTensorNameLen:
		return &ValidationError{
			Err:     ErrInvalidTensorName,
			Tensor:  name[:32] + "...",
			Details: fmt.Sprintf("length %d, max %d", len(name), MaxTensorNameLen),
		}
	case strings.HasPrefix(name, "__"):
		return &ValidationError{Err: ErrInvalidTensorName, Tensor: name, Details: "reserved prefix"}
	}
	return nil
}

// numElements returns the product of shape, or -1 for a negative dimension.
func numElements(shape []int) int {
	n := 1
	for _, d := range shape {
		if d < 0 {
			return -1
		}
		n *= d
	}
	return n
}

// validateEntry checks one header entry against the data section size.
func validateEntry(name string, h SafeTensorHeader, dataSize int64) error {
	if h.DType != dtypeF64 {
		return &ValidationError{Err: ErrUnsupportedDType, Tensor: name, Details: h.DType}
	}

	start, end := h.DataOffsets[0], h.DataOffsets[1]
	if start < 0 || end < start || end > dataSize {
		return &ValidationError{
			Err:     ErrOutOfBounds,
			Tensor:  name,
			Details: fmt.Sprintf("offsets [%d, %d), data size %d", start, end, dataSize),
		}
	}

	shape := make([]int, len(h.Shape))
	for i, d := range h.Shape {
		shape[i] = int(d)
	}
	if n := numElements(shape); n < 0 || int64(n)*8 != end-start {
		return &ValidationError{
			Err:     ErrShapeMismatch,
			Tensor:  name,
			Details: fmt.Sprintf("shape %v, %d bytes", h.Shape, end-start),
		}
	}
	return nil
}
