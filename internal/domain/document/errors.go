package document

import "errors"

var ErrLineNotFound = errors.New("document line not found")
