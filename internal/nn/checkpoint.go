package nn

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/born-ml/scalar/internal/serialization"
	"github.com/pkg/errors"
)

const optimPrefix = "optim."

// OptimizerState represents an optimizer that can save/load its state.
//
// This interface is used by checkpoints to serialize optimizer state
// without importing the optim package. optim.SGD implements it.
type OptimizerState interface {
	StateDict() map[string][]float64
	LoadStateDict(state map[string][]float64) error
	GetLR() float64
	SetLR(lr float64)
}

// Checkpoint represents a training state snapshot.
//
// A checkpoint includes:
//   - Model parameters, one weight matrix and bias vector per layer
//   - Optimizer state (momentum buffers) when an optimizer is given
//   - Training metadata (step, loss, learning rate)
//
// Example:
//
//	ckpt := &nn.Checkpoint{Model: model, Optimizer: optimizer, Step: 100, Loss: 0.01}
//	err := ckpt.Save("model.safetensors")
//
// To resume training:
//
//	ckpt, err := nn.LoadCheckpoint("model.safetensors", model, optimizer)
type Checkpoint struct {
	Model     *MLP
	Optimizer OptimizerState // Optional
	Step      int
	Loss      float64
	Metadata  map[string]string // Additional metadata
}

// Save writes the checkpoint to a SafeTensors file.
func (c *Checkpoint) Save(path string) error {
	tensors := modelTensors(c.Model)

	meta := make(map[string]string, len(c.Metadata)+4)
	for k, v := range c.Metadata {
		meta[k] = v
	}
	meta["architecture"] = architecture(c.Model)
	meta["step"] = strconv.Itoa(c.Step)
	meta["loss"] = strconv.FormatFloat(c.Loss, 'g', -1, 64)

	if c.Optimizer != nil {
		meta["lr"] = strconv.FormatFloat(c.Optimizer.GetLR(), 'g', -1, 64)
		for k, v := range c.Optimizer.StateDict() {
			tensors[optimPrefix+k] = serialization.Tensor{Shape: []int{len(v)}, Data: v}
		}
	}

	if err := serialization.Save(path, tensors, meta); err != nil {
		return errors.Wrap(err, "save checkpoint")
	}
	return nil
}

// LoadCheckpoint reads a checkpoint written by Save into model and, when not
// nil, optimizer.
//
// The model must have the same architecture as the saved one; otherwise
// ErrCheckpointMismatch is returned and model is left untouched.
func LoadCheckpoint(path string, model *MLP, optimizer OptimizerState) (*Checkpoint, error) {
	tensors, meta, err := serialization.Load(path)
	if err != nil {
		return nil, errors.Wrap(err, "load checkpoint")
	}

	if err := checkShapes(model, tensors); err != nil {
		return nil, err
	}
	for li, l := range model.layers {
		w := tensors[weightName(li)].Data
		b := tensors[biasName(li)].Data
		nin := l.inputs()
		for ni, n := range l.neurons {
			for i, wi := range n.w {
				wi.SetData(w[ni*nin+i])
			}
			n.b.SetData(b[ni])
		}
	}

	ckpt := &Checkpoint{Model: model, Optimizer: optimizer, Metadata: meta}
	if s, ok := meta["step"]; ok {
		if ckpt.Step, err = strconv.Atoi(s); err != nil {
			return nil, errors.Wrap(err, "checkpoint step")
		}
	}
	if s, ok := meta["loss"]; ok {
		if ckpt.Loss, err = strconv.ParseFloat(s, 64); err != nil {
			return nil, errors.Wrap(err, "checkpoint loss")
		}
	}

	if optimizer != nil {
		state := make(map[string][]float64)
		for name, t := range tensors {
			if k, ok := strings.CutPrefix(name, optimPrefix); ok {
				state[k] = t.Data
			}
		}
		if err := optimizer.LoadStateDict(state); err != nil {
			return nil, errors.WithMessage(err, "checkpoint optimizer state")
		}
		if s, ok := meta["lr"]; ok {
			lr, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, errors.Wrap(err, "checkpoint lr")
			}
			optimizer.SetLR(lr)
		}
	}

	return ckpt, nil
}

func weightName(layer int) string { return fmt.Sprintf("layers.%d.weight", layer) }
func biasName(layer int) string   { return fmt.Sprintf("layers.%d.bias", layer) }

// modelTensors lays out each layer as a [nout, nin] weight matrix and a
// [nout] bias vector.
func modelTensors(m *MLP) map[string]serialization.Tensor {
	tensors := make(map[string]serialization.Tensor, 2*len(m.layers))
	for li, l := range m.layers {
		nout, nin := len(l.neurons), l.inputs()
		w := make([]float64, 0, nout*nin)
		b := make([]float64, 0, nout)
		for _, n := range l.neurons {
			for _, wi := range n.w {
				w = append(w, wi.Data())
			}
			b = append(b, n.b.Data())
		}
		tensors[weightName(li)] = serialization.Tensor{Shape: []int{nout, nin}, Data: w}
		tensors[biasName(li)] = serialization.Tensor{Shape: []int{nout}, Data: b}
	}
	return tensors
}

func checkShapes(m *MLP, tensors map[string]serialization.Tensor) error {
	for li, l := range m.layers {
		nout, nin := len(l.neurons), l.inputs()
		w, ok := tensors[weightName(li)]
		if !ok || len(w.Shape) != 2 || w.Shape[0] != nout || w.Shape[1] != nin {
			return errors.Wrapf(ErrCheckpointMismatch, "%s: want [%d %d], got %v", weightName(li), nout, nin, w.Shape)
		}
		b, ok := tensors[biasName(li)]
		if !ok || len(b.Shape) != 1 || b.Shape[0] != nout {
			return errors.Wrapf(ErrCheckpointMismatch, "%s: want [%d], got %v", biasName(li), nout, b.Shape)
		}
	}
	if _, ok := tensors[weightName(len(m.layers))]; ok {
		return errors.Wrapf(ErrCheckpointMismatch, "checkpoint has more than %d layers", len(m.layers))
	}
	return nil
}

// architecture returns the layer sizes of m, e.g. "2-16-16-1".
func architecture(m *MLP) string {
	if len(m.layers) == 0 {
		return ""
	}
	sizes := []string{strconv.Itoa(m.layers[0].inputs())}
	for _, l := range m.layers {
		sizes = append(sizes, strconv.Itoa(len(l.neurons)))
	}
	return strings.Join(sizes, "-")
}
