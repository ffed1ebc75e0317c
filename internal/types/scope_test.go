package types

import (
	"testing"

	"github.com/you-not-fish/calvin/internal/syntax"
)

// sym creates a symbol for name declared on line with class c.
func sym(name string, line uint32, c TypeClass) *Symbol {
	tok := syntax.Lexeme{Tok: syntax.Name, Lit: name, Pos: syntax.NewPos("test.cal", line, 1)}
	return &Symbol{Tok: tok, Meta: MetaOf(c, tok)}
}

func TestScopeInsertAndLookup(t *testing.T) {
	tree := NewScopeTree()
	root := tree.Root()

	x := sym("x", 1, Integral)
	if existing := tree.Insert(root, x); existing != nil {
		t.Errorf("Insert() returned non-nil for first insert")
	}
	if found := tree.Lookup(root, "x"); found != x {
		t.Errorf("Lookup() did not return inserted symbol")
	}

	// Insert duplicate
	x2 := sym("x", 2, Real)
	if existing := tree.Insert(root, x2); existing != x {
		t.Errorf("Insert() should return first symbol for duplicate")
	}
	if found := tree.Lookup(root, "x"); found != x {
		t.Errorf("duplicate Insert() replaced the first binding")
	}
	if n := tree.NumSymbols(root); n != 1 {
		t.Errorf("NumSymbols() = %d, want 1", n)
	}
}

func TestScopeLookupParent(t *testing.T) {
	tree := NewScopeTree()
	parent := tree.Root()
	child := tree.NewScope(parent, "if-0")

	x := sym("x", 1, Integral)
	tree.Insert(parent, x)

	found, foundScope := tree.LookupParent(child, "x")
	if found != x {
		t.Errorf("LookupParent() did not find parent's symbol")
	}
	if foundScope != parent {
		t.Errorf("LookupParent() returned scope %d, want %d", foundScope, parent)
	}
	if tree.Lookup(child, "x") != nil {
		t.Errorf("Lookup() should not find parent's symbol")
	}

	if found, s := tree.LookupParent(child, "y"); found != nil || s != NoScope {
		t.Errorf("LookupParent(y) = %v, %d; want nil, NoScope", found, s)
	}
}

func TestScopeShadowing(t *testing.T) {
	tree := NewScopeTree()
	parent := tree.Root()
	child := tree.NewScope(parent, "anon-0")

	tree.Insert(parent, sym("x", 1, Integral))
	inner := sym("x", 3, Real)
	tree.Insert(child, inner)

	found, foundScope := tree.LookupParent(child, "x")
	if found != inner || foundScope != child {
		t.Errorf("LookupParent() should find child's shadowing symbol")
	}
}

func TestScopeHierarchy(t *testing.T) {
	tree := NewScopeTree()
	root := tree.Root()
	w := tree.NewScope(root, "while-0")
	i := tree.NewScope(w, "if-0")
	b := tree.NewScope(i, "anon-0")

	tree.Insert(root, sym("global", 1, Integral))
	tree.Insert(w, sym("loop", 2, Integral))
	tree.Insert(i, sym("cond", 3, Boolean))
	tree.Insert(b, sym("local", 4, String))

	for _, name := range []string{"global", "loop", "cond", "local"} {
		if found, _ := tree.LookupParent(b, name); found == nil {
			t.Errorf("LookupParent(%q) failed from innermost scope", name)
		}
	}
	if found, _ := tree.LookupParent(w, "local"); found != nil {
		t.Errorf("outer scope sees inner declaration")
	}
}

func TestScopeSiblingsIsolated(t *testing.T) {
	tree := NewScopeTree()
	root := tree.Root()
	ifs := tree.NewScope(root, "if-0")
	elifs := tree.NewScope(root, "elif-0")

	tree.Insert(ifs, sym("b", 3, Integral))
	if found, _ := tree.LookupParent(elifs, "b"); found != nil {
		t.Errorf("sibling scope sees declaration")
	}
}

func TestScopeNames(t *testing.T) {
	tree := NewScopeTree()
	root := tree.Root()

	tree.Insert(root, sym("c", 1, Integral))
	tree.Insert(root, sym("a", 2, Real))
	tree.Insert(root, sym("b", 3, Boolean))
	tree.Insert(root, sym("a", 4, Boolean))

	names := tree.Names(root)
	expected := []string{"c", "a", "b"}
	if len(names) != len(expected) {
		t.Fatalf("Names() returned %d names, want %d", len(names), len(expected))
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], name)
		}
	}
}

func TestScopeParentAndName(t *testing.T) {
	tree := NewScopeTree()
	root := tree.Root()
	child := tree.NewScope(root, "do-0")

	if tree.Parent(child) != root {
		t.Errorf("Parent() != root")
	}
	if tree.Parent(root) != NoScope {
		t.Errorf("Parent() should be NoScope for root scope")
	}
	if tree.Name(root) != RootName {
		t.Errorf("Name(root) = %q, want %q", tree.Name(root), RootName)
	}
	if tree.Name(child) != "do-0" {
		t.Errorf("Name(child) = %q", tree.Name(child))
	}
}

func TestScopeChildren(t *testing.T) {
	tree := NewScopeTree()
	root := tree.Root()
	c1 := tree.NewScope(root, "if-0")
	c2 := tree.NewScope(root, "else-0")

	if tree.NumChildren(root) != 2 {
		t.Errorf("NumChildren() = %d, want 2", tree.NumChildren(root))
	}
	children := tree.Children(root)
	if len(children) != 2 || children[0] != c1 || children[1] != c2 {
		t.Errorf("Children() = %v, want [%d %d]", children, c1, c2)
	}
}

func TestScopeWalk(t *testing.T) {
	tree := NewScopeTree()
	root := tree.Root()
	w := tree.NewScope(root, "while-0")
	tree.NewScope(w, "if-0")
	tree.NewScope(root, "finally-0")

	var got []string
	tree.Walk(func(id ScopeID, depth int) {
		got = append(got, tree.Name(id)+":"+string(rune('0'+depth)))
	})
	want := []string{"ROOT:0", "while-0:1", "if-0:2", "finally-0:1"}
	if len(got) != len(want) {
		t.Fatalf("Walk visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("visit %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestScopeReset(t *testing.T) {
	tree := NewScopeTree()
	root := tree.Root()
	tree.Insert(root, sym("a", 1, Integral))
	child := tree.NewScope(root, "anon-0")
	tree.Insert(child, sym("b", 2, Integral))

	tree.Reset()

	if tree.Len() != 1 {
		t.Errorf("Len() after Reset = %d, want 1", tree.Len())
	}
	if tree.NumChildren(root) != 0 || tree.NumSymbols(root) != 0 {
		t.Errorf("root not cleared: %d children, %d symbols", tree.NumChildren(root), tree.NumSymbols(root))
	}
	if found, _ := tree.LookupParent(root, "a"); found != nil {
		t.Errorf("symbol survived Reset")
	}

	// The tree is usable again.
	c := tree.NewScope(root, "anon-0")
	if tree.NumSymbols(c) != 0 {
		t.Errorf("new scope inherited symbols")
	}
}

func TestScopeString(t *testing.T) {
	tree := NewScopeTree()
	root := tree.Root()
	tree.Insert(root, sym("a", 1, Integral))
	child := tree.NewScope(root, "if-0")
	tree.Insert(child, sym("b", 2, String))

	want := `scope ROOT {
  a: integer
  scope if-0 {
    b: string
  }
}
`
	if got := tree.String(); got != want {
		t.Errorf("String() mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}
