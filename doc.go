/*
Package fabric computes the area covered by overlapping axis-aligned rectangles.

Overlap

Given a set of rectangles on a grid of unit cells, fabric counts the cells which
are covered by two or more rectangles. The classic puzzle formulation talks about
elves claiming patches of a large piece of fabric:

	#123 @ 3,2: 5x4

is a claim for a rectangle 3 cells from the left edge, 2 cells from the top edge,
5 cells wide and 4 cells tall. Parsing this notation is the job of package claims;
package fabric works on plain Rectangle values.

Sweep Line

A naive solution marks every cell of every rectangle in a map and counts cells
with more than one mark. This is O(W·H) in time and space. Package fabric instead
sweeps a vertical line from left to right over the rectangles' edges:

1. Every rectangle produces two events, one opening at its left edge and one
closing one past its right edge. Events are held in a priority queue ordered by X.

2. For every distinct X, all events at X are applied to a column tree (package bst),
which maps Y coordinates to the net number of edges opening (+1) or closing (-1)
there. Keys whose deltas cancel out are removed right away.

3. An in-order traversal of the column tree yields the Y boundaries in ascending
order. Counting open rectangles along the way measures the length of the column
covered at least twice.

4. The column's state stays valid until the next event's X, so its contribution to
the total is length × (next X − X).

Only the X coordinates where the covered set changes are visited, giving O(M log M)
time and O(M) space for M rectangles (for trees of reasonable shape).

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package fabric

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fabric'
func tracer() tracing.Trace {
	return tracing.Select("fabric")
}

// FabricError is an error type for the fabric module
type FabricError string

func (e FabricError) Error() string {
	return string(e)
}

// ErrInvalidRectangle is flagged whenever a rectangle has a non-positive width
// or height, or a negative offset.
const ErrInvalidRectangle = FabricError("invalid rectangle")

// ErrEmptyQueue is flagged when the minimum of an empty event queue is requested.
const ErrEmptyQueue = FabricError("event queue is empty")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
