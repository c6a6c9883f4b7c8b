// Package frontend runs the whole pipeline over a Java source: tokenize, parse, then
// collect declarations. Every stage runs even when an earlier one reports errors.
package frontend

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("jpred.frontend")
}
