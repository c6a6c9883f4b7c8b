// Package semantic collects the declarations of a parsed program into a symbol table and
// reports duplicate declarations.
package semantic

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("jpred.semantic")
}
