package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse         = errors.New("parse error")
	ErrUnknownSource = fmt.Errorf("%w: unknown event source", ErrParse)
)
