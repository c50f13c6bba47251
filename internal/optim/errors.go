package optim

import "github.com/pkg/errors"

// ErrStateSize is returned when loaded optimizer state does not match the
// number of parameters.
var ErrStateSize = errors.New("optim: state size mismatch")
