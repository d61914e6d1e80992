package entities

import "errors"

var errNilManager = errors.New("entity manager cannot be nil")
