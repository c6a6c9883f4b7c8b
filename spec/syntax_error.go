package spec

import "fmt"

type SyntaxError struct {
	message string
}

func newSyntaxError(message string) *SyntaxError {
	return &SyntaxError{
		message: message,
	}
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: %s", e.message)
}

var (
	// lexical errors
	synErrInvalidToken  = newSyntaxError("invalid token")
	synErrInvalidEscSeq = newSyntaxError("invalid escape sequence")
	synErrEmptyTerminal = newSyntaxError("a terminal must not be empty")

	// syntax errors
	synErrNoProduction       = newSyntaxError("a grammar must have at least one production")
	synErrNoProductionName   = newSyntaxError("a production name is missing")
	synErrNoColon            = newSyntaxError("the colon must precede alternatives")
	synErrNoSemicolon        = newSyntaxError("the semicolon is missing at the last of an alternative")
	synErrNoDirectiveName    = newSyntaxError("a directive needs a name")
	synErrUnknownDirective   = newSyntaxError("unknown directive")
	synErrDuplicateDirective = newSyntaxError("a directive can appear only once")
	synErrDirectiveNoParam   = newSyntaxError("a directive needs a parameter")
	synErrDirectiveTooMany   = newSyntaxError("a directive takes only one parameter")
	synErrResolveNoTerminal  = newSyntaxError("a resolution needs a terminal")
)
