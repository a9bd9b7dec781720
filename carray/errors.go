package carray

import "errors"

var (
	ErrArrayNotFound = errors.New("array declaration not found")
)
