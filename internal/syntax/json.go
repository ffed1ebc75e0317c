package syntax

import (
	"encoding/json"
	"io"
)

// FprintJSON writes a JSON representation of the CST to w. Every object
// carries the node type, its grammar production and its position.
func FprintJSON(w io.Writer, node Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSON(node))
}

type object map[string]interface{}

func newObject(typ string, n Node) object {
	return object{
		"type":       typ,
		"production": n.Production(),
		"pos":        n.Pos().String(),
	}
}

// setExpr, setBody and setDecl add optional children only when present.

func (o object) setExpr(key string, x *Expression) {
	if x != nil {
		o[key] = toJSON(x)
	}
}

func (o object) setBody(key string, b *Body) {
	if b != nil {
		o[key] = toJSON(b)
	}
}

func (o object) setDecl(key string, d *Declaration) {
	if d != nil {
		o[key] = toJSON(d)
	}
}

func lexemeJSON(l Lexeme) object {
	o := object{"token": l.Tok.String(), "image": l.Lit, "pos": l.Pos.String()}
	if l.Tok == _Literal {
		o["kind"] = l.Kind.String()
	}
	return o
}

func toJSON(node Node) interface{} {
	if node == nil {
		return nil
	}

	switch n := node.(type) {
	case *File:
		o := newObject("File", n)
		o["stmts"] = mapSlice(n.Stmts, func(s Stmt) interface{} { return toJSON(s) })
		return o

	case *EmptyStmt:
		return newObject("EmptyStmt", n)

	case *LetStmt:
		o := newObject("LetStmt", n)
		o.setDecl("decl", n.Decl)
		return o

	case *BranchStmt:
		o := newObject("BranchStmt", n)
		o["tok"] = n.Tok.String()
		return o

	case *ReturnStmt:
		o := newObject("ReturnStmt", n)
		o.setExpr("result", n.Result)
		return o

	case *ExprStmt:
		o := newObject("ExprStmt", n)
		o.setExpr("x", n.X)
		return o

	case *IfStmt:
		o := newObject("IfStmt", n)
		o["if"] = toJSON(n.If)
		if len(n.Elifs) > 0 {
			o["elifs"] = mapSlice(n.Elifs, func(pb *IfPredBody) interface{} { return toJSON(pb) })
		}
		o.setBody("else", n.Else)
		return o

	case *WhileStmt:
		o := newObject("WhileStmt", n)
		o.setBody("do", n.Do)
		o.setExpr("cond", n.Cond)
		o.setBody("body", n.Body)
		o.setBody("finally", n.Finally)
		return o

	case *BlockStmt:
		o := newObject("BlockStmt", n)
		o.setBody("body", n.Body)
		return o

	case *IfPredBody:
		o := newObject("IfPredBody", n)
		o.setDecl("let", n.Decl)
		o.setExpr("cond", n.Cond)
		o.setBody("body", n.Body)
		return o

	case *Body:
		o := newObject("Body", n)
		o["stmts"] = mapSlice(n.Stmts, func(s Stmt) interface{} { return toJSON(s) })
		return o

	case *Declaration:
		o := newObject("Declaration", n)
		o["name"] = lexemeJSON(n.Name)
		if n.Type != nil {
			o["vartype"] = toJSON(n.Type)
		}
		o.setExpr("value", n.Value)
		return o

	case *Expression:
		o := newObject("Expression", n)
		o["x"] = toJSON(n.X)
		if n.Op != nil {
			o["op"] = lexemeJSON(*n.Op)
		}
		o.setExpr("y", n.Y)
		if n.Postfix != nil {
			o["postfix"] = lexemeJSON(*n.Postfix)
		}
		return o

	case *ChainValue:
		o := newObject("ChainValue", n)
		o["value"] = toJSON(n.X)
		if len(n.Index) > 0 {
			o["index"] = mapSlice(n.Index, func(ix *IndexOrSlice) interface{} { return toJSON(ix) })
		}
		return o

	case *IndexOrSlice:
		o := newObject("IndexOrSlice", n)
		o["colons"] = n.Colons
		o.setExpr("start", n.Start)
		o.setExpr("end", n.End)
		o.setExpr("step", n.Step)
		return o

	case *UnaryValue:
		o := newObject("UnaryValue", n)
		o["op"] = lexemeJSON(n.Op)
		o["x"] = toJSON(n.X)
		return o

	case *ConstValue:
		o := newObject("ConstValue", n)
		o["const"] = toJSON(n.Const)
		return o

	case *NameValue:
		o := newObject("NameValue", n)
		o["name"] = lexemeJSON(n.Name)
		return o

	case *ParenValue:
		o := newObject("ParenValue", n)
		o.setExpr("x", n.X)
		return o

	case *BasicLit:
		o := newObject("BasicLit", n)
		o["lit"] = lexemeJSON(n.Lit)
		return o

	case *ListLit:
		o := newObject("ListLit", n)
		o["elems"] = mapSlice(n.Elems, func(x *Expression) interface{} { return toJSON(x) })
		return o

	case *TypeExpr:
		o := newObject("TypeExpr", n)
		o["name"] = n.Name.Lit
		o["dims"] = mapSlice(n.Dims, func(d *ArrayType) interface{} {
			if d.Len == nil {
				return nil
			}
			return d.Len.Lit
		})
		return o

	default:
		return object{"type": "Unknown"}
	}
}

func mapSlice[T any](s []T, f func(T) interface{}) []interface{} {
	result := make([]interface{}, len(s))
	for i, v := range s {
		result[i] = f(v)
	}
	return result
}
