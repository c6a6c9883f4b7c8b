package semantic

import (
	"github.com/nihei9/jpred/driver"
	"github.com/nihei9/jpred/lang"
	"github.com/nihei9/jpred/lexer"
)

type analyzer struct {
	tree   *driver.Tree
	symTab *SymbolTable
	errs   []*SemanticError
}

// Analyze walks the tree once from its root and collects classes, their fields and
// methods, and the parameters and locals of each method. Every duplicate declaration is
// reported in source order. Subtrees left incomplete by syntax errors are tolerated;
// declarations whose names are missing are ignored.
func Analyze(tree *driver.Tree) (*SymbolTable, []*SemanticError) {
	a := &analyzer{
		tree:   tree,
		symTab: newSymbolTable(),
	}
	if tree == nil || tree.Root == nil {
		return a.symTab, nil
	}

	// Classes are searched through the whole tree, not only at the positions the grammar
	// allows, so that a class survives recovery moving it elsewhere.
	for _, n := range tree.FindAll(tree.Root, lang.ClassDecl) {
		a.analyzeClass(n)
	}

	tracer().Debugf("%v classes, %v semantic errors", len(a.symTab.order), len(a.errs))

	return a.symTab, a.errs
}

func (a *analyzer) analyzeClass(classNode *driver.Node) {
	idNode := a.tree.FirstLeaf(classNode, lexer.CategoryID)
	if idNode == nil {
		tracer().Debugf("a class without a name was ignored")
		return
	}
	name := idNode.Token.Text
	if _, ok := a.symTab.Classes[name]; ok {
		a.appendError(ErrorKindDuplicateClass, name, "", "", idNode)
		return
	}
	cls := newClassInfo(name)
	a.symTab.addClass(cls)

	members := a.tree.FindNearest(classNode, lang.MemberList)
	if members == nil {
		return
	}
	for _, m := range a.tree.FindAll(members, lang.Member) {
		a.analyzeMember(cls, m)
	}
}

func (a *analyzer) analyzeMember(cls *ClassInfo, member *driver.Node) {
	rest := a.tree.FindNearest(member, lang.MemberRest)
	if rest == nil || len(rest.Children) == 0 {
		return
	}
	typ := a.typeOf(a.tree.FindNearest(member, lang.Type))

	// Constructors are not recorded.
	idNode := rest.Children[0]
	if idNode.Kind != driver.NodeKindTerminal || a.tree.Name(idNode) != lexer.CategoryID {
		return
	}

	if field := a.tree.FindNearest(rest, lang.FieldRest); field != nil {
		if !idNode.IsPlaceholder() {
			a.addField(cls, typ, idNode)
		}
		for _, vd := range a.tree.FindAll(field, lang.VarDecl) {
			if id := declaredName(a.tree, vd); id != nil {
				a.addField(cls, typ, id)
			}
		}
		return
	}
	if method := a.tree.FindNearest(rest, lang.MethodRest); method != nil && !idNode.IsPlaceholder() {
		a.analyzeMethod(cls, typ, idNode, method)
	}
}

func (a *analyzer) addField(cls *ClassInfo, typ string, idNode *driver.Node) {
	name := idNode.Token.Text
	if _, ok := cls.Fields[name]; ok {
		a.appendError(ErrorKindDuplicateField, name, cls.Name, "", idNode)
		return
	}
	cls.Fields[name] = typ
}

func (a *analyzer) analyzeMethod(cls *ClassInfo, retType string, idNode *driver.Node, methodNode *driver.Node) {
	name := idNode.Token.Text
	if _, ok := cls.Methods[name]; ok {
		a.appendError(ErrorKindDuplicateMethod, name, cls.Name, "", idNode)
		return
	}

	m := &MethodInfo{
		Name:       name,
		ReturnType: retType,
		Params:     []*Param{},
		Locals:     map[string]string{},
	}
	cls.Methods[name] = m

	if params := a.tree.FindNearest(methodNode, lang.ParamList); params != nil {
		for _, p := range a.tree.FindAll(params, lang.Param) {
			param := &Param{
				Type: a.typeOf(a.tree.FindNearest(p, lang.Type)),
			}
			if id := declaredName(a.tree, p); id != nil {
				param.Name = id.Token.Text
			}
			m.Params = append(m.Params, param)
		}
	}

	body := a.tree.FindNearest(methodNode, lang.Block)
	if body == nil {
		return
	}
	for _, decl := range a.tree.FindAll(body, lang.LocalVarDecl, lang.ObjectVarDecl) {
		a.analyzeLocalDecl(cls, m, decl)
	}
}

// analyzeLocalDecl registers the variables of one declaration statement. A class-typed
// declaration starts with its first variable name because the grammar shares the type
// identifier with expression statements, so its type is recorded as the identifier
// category.
func (a *analyzer) analyzeLocalDecl(cls *ClassInfo, m *MethodInfo, decl *driver.Node) {
	var typ string
	if a.tree.Name(decl) == lang.ObjectVarDecl {
		typ = lexer.CategoryID
		if id := declaredName(a.tree, decl); id != nil {
			a.addLocal(cls, m, typ, id)
		}
	} else {
		typ = a.typeOf(a.tree.FindNearest(decl, lang.PrimType))
	}
	for _, vd := range a.tree.FindAll(decl, lang.VarDecl) {
		if id := declaredName(a.tree, vd); id != nil {
			a.addLocal(cls, m, typ, id)
		}
	}
}

func (a *analyzer) addLocal(cls *ClassInfo, m *MethodInfo, typ string, idNode *driver.Node) {
	name := idNode.Token.Text
	if _, ok := m.Locals[name]; ok {
		a.appendError(ErrorKindDuplicateLocal, name, cls.Name, m.Name, idNode)
		return
	}
	m.Locals[name] = typ
}

// typeOf returns the category of the first token under a type node: a primitive type
// keyword, void, or the identifier category for class types.
func (a *analyzer) typeOf(typeNode *driver.Node) string {
	if typeNode == nil {
		return ""
	}
	var typ string
	driver.Walk(typeNode, func(n *driver.Node) bool {
		if typ != "" {
			return false
		}
		if n.Kind == driver.NodeKindTerminal && n.Token != nil {
			typ = n.Token.Kind
			return false
		}
		return true
	})
	return typ
}

// declaredName returns the identifier leaf directly under a declarator.
func declaredName(tree *driver.Tree, n *driver.Node) *driver.Node {
	for _, c := range n.Children {
		if c.Kind == driver.NodeKindTerminal && c.Token != nil && tree.Name(c) == lexer.CategoryID {
			return c
		}
	}
	return nil
}

func (a *analyzer) appendError(kind ErrorKind, name, class, method string, idNode *driver.Node) {
	semErr := &SemanticError{
		Kind:   kind,
		Name:   name,
		Class:  class,
		Method: method,
		Row:    idNode.Token.Row,
		Col:    idNode.Token.Col,
	}
	tracer().Debugf("%v", semErr)
	a.errs = append(a.errs, semErr)
}
