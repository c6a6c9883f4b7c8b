// Package spec reads and writes grammar definitions in a textual notation.
//
//	// a comment
//	#name expr;
//	#start Expr;
//	#terminals id;
//	Expr     : Term ExprRest;
//	ExprRest : "+" Term ExprRest | ε;
//	Term     : id | "(" Expr ")";
//	#resolve ExprRest "+" : "+" Term ExprRest;
//
// Quoted elements are terminals. A bare identifier names either a rule or a terminal
// declared by #terminals. When #start is omitted, the first rule is the start.
package spec

import "github.com/npillmayer/schuko/tracing"

func tracer() tracing.Trace {
	return tracing.Select("jpred.spec")
}
