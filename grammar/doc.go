/*
Package grammar analyzes a context-free grammar for predictive parsing.

A Definition is turned into a Grammar by a GrammarBuilder, which interns every
symbol and rejects malformed definitions. Generate then computes FIRST and
FOLLOW sets by fixpoint iteration and derives an LL(1) parsing table. Table
cells are written first-write-wins; every later claim on an occupied cell is
recorded as a Conflict, and the definition's resolutions are forced into the
table last.

The resulting Analysis is immutable and may be shared by any number of
parsers running concurrently.
*/
package grammar

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'jpred.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("jpred.grammar")
}
