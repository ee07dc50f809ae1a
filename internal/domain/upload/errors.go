package upload

import "errors"

var (
	ErrUploadNotFound = errors.New("upload not found")
	ErrNoFile         = errors.New("no file provided")
)
