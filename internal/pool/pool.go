// Copyright 2025 The tcam Authors
// This file is part of tcam.
//
// tcam is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// tcam is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with tcam. If not, see <http://www.gnu.org/licenses/>.

// Package pool stands in for the external pool allocator collaborator: a
// process-wide, lazily-initialized recycler of same-shaped objects. The
// core consumes only reuse/recycle; this stand-in is built directly on
// sync.Pool, which already implements that exact lifecycle.
package pool

import "sync"

// Pool recycles *T values. It is safe for concurrent use, mirroring the
// source's "created on demand, never torn down" singleton lifecycle.
type Pool[T any] struct {
	p sync.Pool
}

// New creates a pool whose elements are produced by zero.
func New[T any](zero func() *T) *Pool[T] {
	return &Pool[T]{p: sync.Pool{New: func() any { return zero() }}}
}

// Reuse returns a recycled or freshly allocated *T.
func (p *Pool[T]) Reuse() *T {
	return p.p.Get().(*T)
}

// Recycle returns v to the pool for future reuse.
func (p *Pool[T]) Recycle(v *T) {
	p.p.Put(v)
}
