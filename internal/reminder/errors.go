package reminder

import "errors"

var ErrUnknownJob = errors.New("unknown job")
