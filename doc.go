// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package ydd defines a concrete type for Yet-another Decision Diagrams (YDD), a
data structure used to efficiently represent finite families of finite subsets
of a totally ordered key type, also known as a Zero-suppressed Binary Decision
Diagram (ZDD).

Basics

Each Engine is parametrized by a key type K: any type satisfying the standard
library's cmp.Ordered constraint (comparable, totally ordered by <). A family F
of subsets of K is represented as a rooted DAG of nodes, shared maximally
through a unique table so that distinct families always correspond to distinct
nodes: testing whether two families are equal reduces to comparing two Handle
values by pointer identity.

Most operations over an Engine return a Handle: a reference to a node in the
diagram, together with a back-pointer to the engine that produced it. The two
distinguished families are the empty family (the nil Handle, also "zero") and
the family containing only the empty set (returned by MakeTerminal(true), also
"one").

Automatic memory management

Like the BuDDy-derived library this package started from, we piggyback on the
garbage collector offered by the host language instead of implementing a mark
and sweep collector of our own. Every node carries a reference count; a
Handle's Retain and Release methods let a caller manage that count explicitly,
the same way BuDDy's AddRef/DelRef do. A Handle dropped without an explicit
call to Release is still reclaimed once the Go runtime proves it unreachable:
every handle the engine returns installs a runtime.SetFinalizer that performs
the matching decrement, so accidental leaks degrade to "collected a little
later" rather than "collected never". The library is written in pure Go,
without CGo or any other native dependency.

Use of the debug build tag

Compiling with the build tag `debug` unlocks verbose structured logging of
engine creation and of fresh nodes entering the unique table, emitted through
a zap.SugaredLogger; cache hits and misses are not logged. Without
the tag, logging calls compile down to a no-op; Stats() tracks its counters
unconditionally either way.
*/
package ydd
