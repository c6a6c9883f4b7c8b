package grammar

type SemanticError struct {
	message string
}

func newSemanticError(message string) *SemanticError {
	return &SemanticError{
		message: message,
	}
}

func (e *SemanticError) Error() string {
	return e.message
}

var (
	semErrNoGrammarName         = newSemanticError("name is missing")
	semErrNoStartSymbol         = newSemanticError("start symbol is missing")
	semErrNoProduction          = newSemanticError("a grammar needs at least one production")
	semErrUndefinedStart        = newSemanticError("the start symbol has no rule")
	semErrUndefinedSym          = newSemanticError("undefined symbol")
	semErrReservedSym           = newSemanticError("the end-marker cannot appear in a production")
	semErrInvalidEpsilon        = newSemanticError("epsilon must be the only symbol of an alternative")
	semErrDuplicateRule         = newSemanticError("duplicate rule")
	semErrDuplicateProduction   = newSemanticError("duplicate production")
	semErrDuplicateTerminal     = newSemanticError("duplicate terminal")
	semErrDuplicateName         = newSemanticError("duplicate names are not allowed between terminals and non-terminals")
	semErrResolutionNonTerminal = newSemanticError("a resolution refers to an undefined non-terminal")
	semErrResolutionTerminal    = newSemanticError("a resolution refers to an undefined terminal")
	semErrResolutionAlternative = newSemanticError("a resolution refers to an alternative the rule does not have")
	semErrEmptyTerminalName     = newSemanticError("a terminal name must not be empty")
	semErrEmptyNonTerminalName  = newSemanticError("a non-terminal name must not be empty")
)
