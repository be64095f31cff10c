package eventstream

import "github.com/imtaco/infinity-session/internal/errors"

const ErrGaveUp errors.Code = "event stream restart policy gave up"
