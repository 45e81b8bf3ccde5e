/*
Package report formats the results of an overlap computation, either for a
console or as an HTML document.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package report

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fabric'
func tracer() tracing.Trace {
	return tracing.Select("fabric")
}
