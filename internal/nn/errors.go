package nn

import "github.com/pkg/errors"

// ErrParameterCount is returned when a parameter snapshot does not match the
// number of parameters of the module it is restored into.
var ErrParameterCount = errors.New("nn: parameter count mismatch")

// ErrCheckpointMismatch is returned when a checkpoint does not match the
// architecture of the model it is loaded into.
var ErrCheckpointMismatch = errors.New("nn: checkpoint does not match model")
