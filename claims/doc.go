/*
Package claims reads rectangle claims in the notation

	#<id> @ <left>,<top>: <width>x<height>

e.g. "#123 @ 3,2: 5x4", one claim per line. Blank lines are skipped.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package claims

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fabric'
func tracer() tracing.Trace {
	return tracing.Select("fabric")
}

// ErrSyntax is returned (wrapped) for lines which do not follow the claim notation.
var ErrSyntax = errors.New("claims: syntax error")
