package semantic

import "fmt"

type ErrorKind string

const (
	ErrorKindDuplicateClass  ErrorKind = "duplicate class"
	ErrorKindDuplicateField  ErrorKind = "duplicate field"
	ErrorKindDuplicateMethod ErrorKind = "duplicate method"
	ErrorKindDuplicateLocal  ErrorKind = "duplicate local"
)

// SemanticError reports a declaration whose name is already taken in its scope. Row and
// Col locate the identifier of the rejected declaration. Method is empty unless Kind is
// ErrorKindDuplicateLocal.
type SemanticError struct {
	Kind   ErrorKind
	Name   string
	Class  string
	Method string
	Row    int
	Col    int
}

func (e *SemanticError) Message() string {
	switch e.Kind {
	case ErrorKindDuplicateClass:
		return fmt.Sprintf("%v %v", e.Kind, e.Name)
	case ErrorKindDuplicateLocal:
		return fmt.Sprintf("%v %v in method %v of class %v", e.Kind, e.Name, e.Method, e.Class)
	}
	return fmt.Sprintf("%v %v in class %v", e.Kind, e.Name, e.Class)
}

func (e *SemanticError) Error() string {
	return fmt.Sprintf("%v:%v: %v", e.Row, e.Col, e.Message())
}
