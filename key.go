// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package ydd

import "cmp"

// Key is the contract an engine's ground-set elements must satisfy: value
// semantics (copyable, comparable via Go's built-in ==, which backs the
// unique table's map) and a total order, given by cmp.Ordered's <. Every
// built-in integer, floating-point and string type satisfies Key out of the
// box (complex types do not, having no order); a caller
// with a more elaborate key (a struct) can always project it onto one of
// these before handing it to the engine.
type Key interface {
	cmp.Ordered
}
