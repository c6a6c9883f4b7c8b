package semantic

import (
	"github.com/nihei9/jpred/driver"
	"github.com/nihei9/jpred/lexer"
)

const (
	TypeInt     = "int"
	TypeString  = "String"
	TypeChar    = "char"
	TypeBoolean = "boolean"
)

// InferExprType returns the type of the first literal or identifier under `n` in
// depth-first order. An identifier yields the identifier category since names are not
// resolved. It returns an empty string when nothing under `n` has a type.
func InferExprType(n *driver.Node) string {
	if n == nil {
		return ""
	}
	if n.Kind == driver.NodeKindTerminal && n.Token != nil {
		switch n.Token.Kind {
		case lexer.CategoryNumber:
			return TypeInt
		case lexer.CategoryString:
			return TypeString
		case lexer.CategoryChar:
			return TypeChar
		case "true", "false":
			return TypeBoolean
		case lexer.CategoryID:
			return lexer.CategoryID
		}
	}
	for _, c := range n.Children {
		if typ := InferExprType(c); typ != "" {
			return typ
		}
	}
	return ""
}
