package render

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/you-not-fish/calvin/internal/types"
	"github.com/you-not-fish/calvin/internal/types2"
)

// Report is the machine-readable result of checking one file.
type Report struct {
	File        string       `yaml:"file"`
	Errors      int          `yaml:"errors"`
	Warnings    int          `yaml:"warnings"`
	Diagnostics []Diagnostic `yaml:"diagnostics,omitempty"`
	Scope       *ScopeDoc    `yaml:"scope,omitempty"`
}

// Diagnostic is one entry of Report.Diagnostics.
type Diagnostic struct {
	Pos      string `yaml:"pos"`
	Severity string `yaml:"severity"`
	Msg      string `yaml:"msg"`
}

// ScopeDoc mirrors one scope and its descendants.
type ScopeDoc struct {
	Name     string      `yaml:"name"`
	Symbols  []SymbolDoc `yaml:"symbols,omitempty"`
	Children []*ScopeDoc `yaml:"children,omitempty"`
}

// SymbolDoc describes one binding.
type SymbolDoc struct {
	Name     string `yaml:"name"`
	Line     uint32 `yaml:"line"`
	Type     string `yaml:"type"`
	From     string `yaml:"from"`
	FromLine uint32 `yaml:"from_line"`
}

// NewReport builds a Report for file from the diagnostics and scope
// tree of a finished check. t may be nil.
func NewReport(file string, diags []*types2.Diagnostic, t *types.ScopeTree) *Report {
	r := &Report{File: file}
	for _, d := range diags {
		if d.Severity == types2.Error {
			r.Errors++
		} else {
			r.Warnings++
		}
		r.Diagnostics = append(r.Diagnostics, Diagnostic{
			Pos:      d.Pos.String(),
			Severity: d.Severity.String(),
			Msg:      d.Msg,
		})
	}
	if t != nil {
		r.Scope = ScopeTreeDoc(t, t.Root())
	}
	return r
}

// ScopeTreeDoc converts the subtree rooted at id.
func ScopeTreeDoc(t *types.ScopeTree, id types.ScopeID) *ScopeDoc {
	doc := &ScopeDoc{Name: t.Name(id)}
	for _, name := range t.Names(id) {
		sym := t.Lookup(id, name)
		doc.Symbols = append(doc.Symbols, SymbolDoc{
			Name:     sym.Name(),
			Line:     sym.Line(),
			Type:     sym.Meta.Class.String(),
			From:     sym.Meta.Source.Lit,
			FromLine: sym.Meta.Source.Line(),
		})
	}
	for _, c := range t.Children(id) {
		doc.Children = append(doc.Children, ScopeTreeDoc(t, c))
	}
	return doc
}

// ReportYAML writes reports as a YAML sequence.
func ReportYAML(w io.Writer, reports []*Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(reports); err != nil {
		return err
	}
	return enc.Close()
}
