package app

import "errors"

var ErrUnknownSourceMode = errors.New("unknown source mode")
