// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ydd

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidCacheSize is the sentinel wrapped by every configuration error
// New returns. Callers can recover it with errors.Is, the same way the rudd
// library this package is adapted from lets a caller test a bddError value
// after building up a chain by hand in seterror; this package leans on
// github.com/pkg/errors to get that chaining for free.
var ErrInvalidCacheSize = errors.New("ydd: invalid cache size")

func errInvalidCacheSize(cache string, size int) error {
	return errors.Wrapf(ErrInvalidCacheSize, "%s cache size %d (minimum is 1)", cache, size)
}

// errMismatchedEngine reports an operation given handles produced by two
// different engines. engineFor in operations.go panics with it when both
// operands of a binary set operation carry non-nil engines that differ; the
// accessor panics in handle.go cover a different misuse (Key/Then/Else on a
// terminal or null Handle).
func errMismatchedEngine(op string) error {
	return errors.Wrap(fmt.Errorf("handles from two different engines"), "ydd: "+op)
}
