package soft

import "errors"

// ErrInvalidChannel is returned by NewColor when a channel is nil.
var ErrInvalidChannel = errors.New("soft: invalid color channel")
