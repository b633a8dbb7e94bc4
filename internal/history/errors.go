package history

import "errors"

var ErrNotFound = errors.New("cycle record not found")
