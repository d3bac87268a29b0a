package ir

import "errors"

var (
	ErrPath    = errors.New("path error")
	ErrConvert = errors.New("conversion error")
)
