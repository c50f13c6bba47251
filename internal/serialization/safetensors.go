package serialization

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
)

const (
	dtypeF64    = "F64"
	metadataKey = "__metadata__"
	checksumKey = "sha256"
)

// Tensor is a named block of float64 values with a row-major shape.
type Tensor struct {
	Shape []int
	Data  []float64
}

// SafeTensorHeader represents a tensor in the SafeTensors header.
type SafeTensorHeader struct {
	DType       string   `json:"dtype"`
	Shape       []int64  `json:"shape"`
	DataOffsets [2]int64 `json:"data_offsets"`
}

// Save writes tensors to a SafeTensors file at path.
func Save(path string, tensors map[string]Tensor, metadata map[string]string) error {
	//nolint:gosec // G304: File path comes from user input, which is expected for model saving
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if err := Write(file, tensors, metadata); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// Write encodes tensors in SafeTensors format.
//
// Tensors are written in alphabetical order by name (SafeTensors requirement).
// The SHA-256 of the data section is added to the metadata.
func Write(w io.Writer, tensors map[string]Tensor, metadata map[string]string) error {
	names := make([]string, 0, len(tensors))
	for name := range tensors {
		if err := validateName(name); err != nil {
			return err
		}
		names = append(names, name)
	}
	sort.Strings(names)

	var data bytes.Buffer
	header := make(map[string]any, len(names)+1)
	for _, name := range names {
		t := tensors[name]
		if n := numElements(t.Shape); n != len(t.Data) {
			return &ValidationError{
				Err:     ErrShapeMismatch,
				Tensor:  name,
				Details: fmt.Sprintf("shape %v, %d values", t.Shape, len(t.Data)),
			}
		}

		shape := make([]int64, len(t.Shape))
		for i, d := range t.Shape {
			shape[i] = int64(d)
		}
		start := int64(data.Len())
		for _, v := range t.Data {
			_ = binary.Write(&data, binary.LittleEndian, math.Float64bits(v))
		}
		header[name] = SafeTensorHeader{
			DType:       dtypeF64,
			Shape:       shape,
			DataOffsets: [2]int64{start, int64(data.Len())},
		}
	}

	meta := make(map[string]string, len(metadata)+1)
	for k, v := range metadata {
		meta[k] = v
	}
	meta[checksumKey] = ComputeChecksum(data.Bytes())
	header[metadataKey] = meta

	headerJSON, err := json.Marshal(header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}

	if err := binary.Write(w, binary.LittleEndian, uint64(len(headerJSON))); err != nil {
		return fmt.Errorf("failed to write header size: %w", err)
	}
	if _, err := w.Write(headerJSON); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	if _, err := w.Write(data.Bytes()); err != nil {
		return fmt.Errorf("failed to write tensor data: %w", err)
	}
	return nil
}

// Load reads a SafeTensors file written by Save.
func Load(path string) (map[string]Tensor, map[string]string, error) {
	//nolint:gosec // G304: File path comes from user input, which is expected for model loading
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	return Read(file)
}

// Read decodes SafeTensors data containing F64 tensors.
//
// The header is validated before any tensor is decoded. If the metadata
// carries a checksum, it must match the data section.
func Read(r io.Reader) (map[string]Tensor, map[string]string, error) {
	var headerSize uint64
	if err := binary.Read(r, binary.LittleEndian, &headerSize); err != nil {
		return nil, nil, fmt.Errorf("failed to read header size: %w", err)
	}
	if headerSize > MaxHeaderSize {
		return nil, nil, fmt.Errorf("%w: %d bytes", ErrHeaderTooLarge, headerSize)
	}

	headerJSON := make([]byte, headerSize)
	if _, err := io.ReadFull(r, headerJSON); err != nil {
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(headerJSON, &raw); err != nil {
		return nil, nil, fmt.Errorf("failed to parse header: %w", err)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read tensor data: %w", err)
	}

	var metadata map[string]string
	if m, ok := raw[metadataKey]; ok {
		if err := json.Unmarshal(m, &metadata); err != nil {
			return nil, nil, fmt.Errorf("failed to parse metadata: %w", err)
		}
		delete(raw, metadataKey)
	}
	if sum, ok := metadata[checksumKey]; ok {
		if err := ValidateChecksum(data, sum); err != nil {
			return nil, nil, err
		}
	}

	tensors := make(map[string]Tensor, len(raw))
	for name, msg := range raw {
		var h SafeTensorHeader
		if err := json.Unmarshal(msg, &h); err != nil {
			return nil, nil, fmt.Errorf("failed to parse tensor %q: %w", name, err)
		}
		if err := validateEntry(name, h, int64(len(data))); err != nil {
			return nil, nil, err
		}

		block := data[h.DataOffsets[0]:h.DataOffsets[1]]
		t := Tensor{
			Shape: make([]int, len(h.Shape)),
			Data:  make([]float64, len(block)/8),
		}
		for i, d := range h.Shape {
			t.Shape[i] = int(d)
		}
		for i := range t.Data {
			t.Data[i] = math.Float64frombits(binary.LittleEndian.Uint64(block[i*8:]))
		}
		tensors[name] = t
	}

	return tensors, metadata, nil
}
