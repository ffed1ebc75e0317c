package types

import (
	"fmt"
	"strings"
)

// ScopeID addresses a scope in a ScopeTree.
type ScopeID int

// NoScope is the parent of the root scope.
const NoScope ScopeID = -1

// RootName is the name of the root scope of every tree.
const RootName = "ROOT"

// scope is one record of the arena.
type scope struct {
	name     string
	parent   ScopeID
	children []ScopeID
	elems    map[string]*Symbol
	order    []string // names in declaration order
}

// ScopeTree is a tree of lexical scopes stored in a flat arena. Scopes
// are addressed by ScopeID; a scope records its parent id for lookup
// chaining and owns the ids of its children. The root has id 0.
type ScopeTree struct {
	scopes []scope
}

// NewScopeTree returns a tree holding only the root scope.
func NewScopeTree() *ScopeTree {
	t := &ScopeTree{}
	t.Reset()
	return t
}

// Root returns the id of the root scope.
func (t *ScopeTree) Root() ScopeID { return 0 }

// Len returns the number of scopes in the tree.
func (t *ScopeTree) Len() int { return len(t.scopes) }

// NewScope creates a child of parent and returns its id.
func (t *ScopeTree) NewScope(parent ScopeID, name string) ScopeID {
	id := ScopeID(len(t.scopes))
	t.scopes = append(t.scopes, scope{
		name:   name,
		parent: parent,
		elems:  make(map[string]*Symbol),
	})
	if parent != NoScope {
		p := &t.scopes[parent]
		p.children = append(p.children, id)
	}
	return id
}

// Name returns the scope's name.
func (t *ScopeTree) Name(id ScopeID) string { return t.scopes[id].name }

// Parent returns the parent scope, or NoScope for the root.
func (t *ScopeTree) Parent(id ScopeID) ScopeID { return t.scopes[id].parent }

// Children returns the child scopes in creation order.
func (t *ScopeTree) Children(id ScopeID) []ScopeID { return t.scopes[id].children }

// NumChildren returns the number of child scopes.
func (t *ScopeTree) NumChildren(id ScopeID) int { return len(t.scopes[id].children) }

// Lookup returns the symbol with the given name in scope id only,
// or nil if there is none.
func (t *ScopeTree) Lookup(id ScopeID, name string) *Symbol {
	return t.scopes[id].elems[name]
}

// LookupParent searches scope id and then its ancestors for name.
// It returns the first symbol found and the scope holding it, or
// (nil, NoScope).
func (t *ScopeTree) LookupParent(id ScopeID, name string) (*Symbol, ScopeID) {
	for s := id; s != NoScope; s = t.scopes[s].parent {
		if sym := t.scopes[s].elems[name]; sym != nil {
			return sym, s
		}
	}
	return nil, NoScope
}

// Insert binds sym in scope id.
// If the name is already bound there, Insert leaves the scope unchanged
// and returns the existing symbol. Otherwise, it returns nil.
func (t *ScopeTree) Insert(id ScopeID, sym *Symbol) *Symbol {
	s := &t.scopes[id]
	name := sym.Name()
	if existing := s.elems[name]; existing != nil {
		return existing
	}
	s.elems[name] = sym
	s.order = append(s.order, name)
	return nil
}

// Names returns the names bound in scope id in declaration order.
func (t *ScopeTree) Names(id ScopeID) []string {
	return t.scopes[id].order
}

// NumSymbols returns the number of names bound in scope id.
func (t *ScopeTree) NumSymbols(id ScopeID) int {
	return len(t.scopes[id].elems)
}

// Walk calls fn for every scope in depth-first order, parents before
// children, starting at the root.
func (t *ScopeTree) Walk(fn func(id ScopeID, depth int)) {
	var walk func(id ScopeID, depth int)
	walk = func(id ScopeID, depth int) {
		fn(id, depth)
		for _, c := range t.scopes[id].children {
			walk(c, depth+1)
		}
	}
	walk(t.Root(), 0)
}

// Reset drops every scope except the root and clears the root's symbols.
func (t *ScopeTree) Reset() {
	t.scopes = t.scopes[:0]
	t.NewScope(NoScope, RootName)
}

// String returns a string representation of the tree for debugging.
func (t *ScopeTree) String() string {
	var buf strings.Builder
	t.writeTo(&buf, t.Root(), 0)
	return buf.String()
}

func (t *ScopeTree) writeTo(buf *strings.Builder, id ScopeID, indent int) {
	prefix := strings.Repeat("  ", indent)
	s := &t.scopes[id]
	fmt.Fprintf(buf, "%sscope %s {\n", prefix, s.name)
	for _, name := range s.order {
		fmt.Fprintf(buf, "%s  %s: %s\n", prefix, name, s.elems[name].Meta.Class)
	}
	for _, child := range s.children {
		t.writeTo(buf, child, indent+1)
	}
	fmt.Fprintf(buf, "%s}\n", prefix)
}
