package semantic

import "sort"

type Param struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// MethodInfo describes a method. Locals maps every local variable declared anywhere in
// the body, nested blocks included, to its type; parameters are not locals.
type MethodInfo struct {
	Name       string            `json:"name"`
	ReturnType string            `json:"return_type"`
	Params     []*Param          `json:"params"`
	Locals     map[string]string `json:"locals"`
}

type ClassInfo struct {
	Name    string                 `json:"name"`
	Fields  map[string]string      `json:"fields"`
	Methods map[string]*MethodInfo `json:"methods"`
}

func newClassInfo(name string) *ClassInfo {
	return &ClassInfo{
		Name:    name,
		Fields:  map[string]string{},
		Methods: map[string]*MethodInfo{},
	}
}

// FieldNames returns the field names in lexical order.
func (c *ClassInfo) FieldNames() []string {
	return sortedKeys(c.Fields)
}

// MethodNames returns the method names in lexical order.
func (c *ClassInfo) MethodNames() []string {
	names := make([]string, 0, len(c.Methods))
	for name := range c.Methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LocalNames returns the names of the locals in lexical order.
func (m *MethodInfo) LocalNames() []string {
	return sortedKeys(m.Locals)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SymbolTable maps class names to their declarations. A name is bound by its first
// declaration; later declarations of the same name are reported and dropped.
type SymbolTable struct {
	Classes map[string]*ClassInfo `json:"classes"`

	order []string
}

func newSymbolTable() *SymbolTable {
	return &SymbolTable{
		Classes: map[string]*ClassInfo{},
	}
}

// ClassNames returns the class names in declaration order.
func (t *SymbolTable) ClassNames() []string {
	return append([]string{}, t.order...)
}

func (t *SymbolTable) Class(name string) (*ClassInfo, bool) {
	c, ok := t.Classes[name]
	return c, ok
}

func (t *SymbolTable) addClass(c *ClassInfo) {
	t.Classes[c.Name] = c
	t.order = append(t.order, c.Name)
}
