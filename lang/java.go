// Package lang holds the Java subset: its grammar definition and the vocabulary its
// lexer is built from.
package lang

import (
	"github.com/nihei9/jpred/grammar"
	"github.com/nihei9/jpred/lexer"
)

// Non-terminals the semantic pass looks for.
const (
	Program       = "Prog"
	ClassDecl     = "ClassDecl"
	MemberList    = "MemberList"
	Member        = "Member"
	MemberRest    = "MemberRest"
	FieldRest     = "FieldRest"
	MethodRest    = "MethodRest"
	CtorRest      = "CtorRest"
	Type          = "Type"
	PrimType      = "PrimType"
	ParamList     = "ParamList"
	Param         = "Param"
	Block         = "Block"
	LocalVarDecl  = "LocalVarDecl"
	ObjectVarDecl = "ObjectVarDecl"
	VarDeclList   = "VarDeclList"
	VarDecl       = "VarDecl"
	IfStmt        = "IfStmt"
	ElseOpt       = "ElseOpt"
	Expr          = "Expr"
	Literal       = "Literal"
)

const eps = grammar.Epsilon

var keywords = []string{
	"class", "extends", "public", "private", "protected", "static", "final",
	"int", "void", "boolean", "char", "String", "if", "else", "while", "for",
	"return", "new", "this", "true", "false", "null",
}

var symbols = []string{
	"==", "!=", "<=", ">=", "&&", "||", "++", "--",
	"+", "-", "*", "/", "%", "=", "<", ">", "!",
	"(", ")", "{", "}", "[", "]", ",", ";", ".",
}

// JavaVocabulary returns the reserved words and the operators of the subset.
func JavaVocabulary() *lexer.Vocabulary {
	return &lexer.Vocabulary{
		Keywords: append([]string{}, keywords...),
		Symbols:  append([]string{}, symbols...),
	}
}

func alt(syms ...string) []string {
	return syms
}

func rule(lhs string, alts ...[]string) *grammar.Rule {
	return &grammar.Rule{
		LHS:          lhs,
		Alternatives: alts,
	}
}

// JavaDefinition returns the grammar of the subset. Alternatives are left-factored so
// that the dangling else is the only cell claimed twice; a resolution binds an else to
// the nearest unmatched if.
func JavaDefinition() *grammar.Definition {
	return &grammar.Definition{
		Name:      "java",
		Start:     Program,
		Terminals: JavaVocabulary().Categories(),
		Rules: []*grammar.Rule{
			rule(Program, alt("ClassList")),
			rule("ClassList", alt(ClassDecl, "ClassList"), alt(eps)),
			rule(ClassDecl, alt("class", "id", "ClassExt", "{", MemberList, "}")),
			rule("ClassExt", alt("extends", "id"), alt(eps)),
			rule(MemberList, alt(Member, MemberList), alt(eps)),
			rule(Member, alt("Modifiers", Type, MemberRest)),
			rule("Modifiers", alt("Modifier", "Modifiers"), alt(eps)),
			rule("Modifier", alt("public"), alt("private"), alt("protected"), alt("static"), alt("final")),
			rule(Type, alt(PrimType, "ArrayTypeOpt"), alt("id", "ArrayTypeOpt"), alt("void")),
			rule(PrimType, alt("int"), alt("boolean"), alt("char"), alt("String")),
			rule("ArrayTypeOpt", alt("[", "]"), alt(eps)),
			rule(MemberRest, alt("id", "MemberTail"), alt(CtorRest)),
			rule("MemberTail", alt(MethodRest), alt(FieldRest)),
			rule(MethodRest, alt("(", ParamList, ")", Block)),
			rule(CtorRest, alt("(", ParamList, ")", Block)),
			rule(FieldRest, alt("ArrayDeclOpt", "InitOpt", "VarDeclRest", ";")),
			rule(VarDeclList, alt(VarDecl, "VarDeclRest")),
			rule("VarDeclRest", alt(",", VarDecl, "VarDeclRest"), alt(eps)),
			rule(VarDecl, alt("id", "ArrayDeclOpt", "InitOpt")),
			rule("ArrayDeclOpt", alt("[", "]"), alt(eps)),
			rule("InitOpt", alt("=", Expr), alt(eps)),
			rule(ParamList, alt(Param, "ParamRest"), alt(eps)),
			rule("ParamRest", alt(",", Param, "ParamRest"), alt(eps)),
			rule(Param, alt(Type, "id", "ArrayDeclOpt")),
			rule(Block, alt("{", "StmtList", "}")),
			rule("StmtList", alt("Stmt", "StmtList"), alt(eps)),
			rule("Stmt",
				alt(LocalVarDecl),
				alt("IdStmt"),
				alt(IfStmt),
				alt("WhileStmt"),
				alt("ForStmt"),
				alt("ReturnStmt"),
				alt("ExprStmt"),
				alt(Block),
				alt(";"),
			),
			rule(LocalVarDecl, alt(PrimType, "ArrayTypeOpt", VarDeclList, ";")),
			rule("IdStmt", alt("id", "IdStmtTail")),
			rule("IdStmtTail", alt(ObjectVarDecl), alt("PrimarySuffix", "PostfixTail", "BinaryTail", ";")),
			rule(ObjectVarDecl, alt("id", "ArrayDeclOpt", "InitOpt", "VarDeclRest", ";")),
			rule("ExprStmt", alt("LeadExpr", "BinaryTail", ";")),
			rule("LeadExpr", alt("UnaryOp", "UnaryExpr"), alt("LeadPrimary", "PostfixTail")),
			rule("LeadPrimary", alt(Literal), alt("(", Expr, ")"), alt("new", "Creator"), alt("this", "PrimarySuffix")),
			rule("BinaryTail", alt("MulRest", "AddRest", "RelRest", "CondAndRest", "CondOrRest", "AssignTail")),
			rule(IfStmt, alt("if", "(", Expr, ")", "Stmt", ElseOpt)),
			rule(ElseOpt, alt("else", "Stmt"), alt(eps)),
			rule("WhileStmt", alt("while", "(", Expr, ")", "Stmt")),
			rule("ForStmt", alt("for", "(", "ForInit", "ForCond", "ForUpdate", ")", "Stmt")),
			rule("ForInit", alt(LocalVarDecl), alt("IdStmt"), alt("ExprStmt"), alt(";")),
			rule("ForCond", alt(Expr, ";"), alt(";")),
			rule("ForUpdate", alt("ExprList")),
			rule("ExprList", alt(Expr, "ExprListRest"), alt(eps)),
			rule("ExprListRest", alt(",", Expr, "ExprListRest"), alt(eps)),
			rule("ReturnStmt", alt("return", "ExprOpt", ";")),
			rule("ExprOpt", alt(Expr), alt(eps)),
			rule(Expr, alt("AssignExpr")),
			rule("AssignExpr", alt("CondOrExpr", "AssignTail")),
			rule("AssignTail", alt("=", "AssignExpr"), alt(eps)),
			rule("CondOrExpr", alt("CondAndExpr", "CondOrRest")),
			rule("CondOrRest", alt("||", "CondAndExpr", "CondOrRest"), alt(eps)),
			rule("CondAndExpr", alt("RelExpr", "CondAndRest")),
			rule("CondAndRest", alt("&&", "RelExpr", "CondAndRest"), alt(eps)),
			rule("RelExpr", alt("AddExpr", "RelRest")),
			rule("RelRest",
				alt("<", "AddExpr", "RelRest"),
				alt(">", "AddExpr", "RelRest"),
				alt("<=", "AddExpr", "RelRest"),
				alt(">=", "AddExpr", "RelRest"),
				alt("==", "AddExpr", "RelRest"),
				alt("!=", "AddExpr", "RelRest"),
				alt(eps),
			),
			rule("AddExpr", alt("MulExpr", "AddRest")),
			rule("AddRest", alt("+", "MulExpr", "AddRest"), alt("-", "MulExpr", "AddRest"), alt(eps)),
			rule("MulExpr", alt("UnaryExpr", "MulRest")),
			rule("MulRest",
				alt("*", "UnaryExpr", "MulRest"),
				alt("/", "UnaryExpr", "MulRest"),
				alt("%", "UnaryExpr", "MulRest"),
				alt(eps),
			),
			rule("UnaryExpr", alt("UnaryOp", "UnaryExpr"), alt("PostfixExpr")),
			rule("UnaryOp", alt("+"), alt("-"), alt("!"), alt("++"), alt("--")),
			rule("PostfixExpr", alt("PrimaryExpr", "PostfixTail")),
			rule("PostfixTail", alt("++", "PostfixTail"), alt("--", "PostfixTail"), alt(eps)),
			rule("PrimaryExpr",
				alt(Literal),
				alt("id", "PrimarySuffix"),
				alt("(", Expr, ")"),
				alt("new", "Creator"),
				alt("this", "PrimarySuffix"),
			),
			rule("PrimarySuffix", alt("Selector", "PrimarySuffix"), alt(eps)),
			rule("Selector", alt(".", "id"), alt("[", Expr, "]"), alt("(", "ArgList", ")")),
			rule("ArgList", alt(Expr, "ArgRest"), alt(eps)),
			rule("ArgRest", alt(",", Expr, "ArgRest"), alt(eps)),
			rule("Creator", alt("id", "CreatorRest"), alt(PrimType, "ArrayCreatorRest")),
			rule("CreatorRest", alt("(", "ArgList", ")"), alt("ArrayCreatorRest")),
			rule("ArrayCreatorRest", alt("[", Expr, "]", "ArrayCreatorRest"), alt(eps)),
			rule(Literal,
				alt("number"),
				alt("char_literal"),
				alt("string_literal"),
				alt("true"),
				alt("false"),
				alt("null"),
			),
		},
		Resolutions: []*grammar.Resolution{
			{NonTerminal: ElseOpt, Terminal: "else", Alternative: alt("else", "Stmt")},
		},
	}
}
