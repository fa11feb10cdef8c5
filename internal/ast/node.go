package ast

import "viewmacro/internal/source"

// NodeClass selects which ID of a Node handle is meaningful.
type NodeClass uint8

const (
	NodeDecl NodeClass = iota
	NodeMember
	NodeExpr
)

// Node is a generic handle over the three node categories, so traversals can
// run over one worklist without reflection.
type Node struct {
	Class  NodeClass
	Decl   DeclID
	Member MemberID
	Expr   ExprID
}

func DeclNode(id DeclID) Node     { return Node{Class: NodeDecl, Decl: id} }
func MemberNode(id MemberID) Node { return Node{Class: NodeMember, Member: id} }
func ExprNode(id ExprID) Node     { return Node{Class: NodeExpr, Expr: id} }

// Span returns the source span of the node the handle points at.
func (b *Builder) Span(n Node) source.Span {
	switch n.Class {
	case NodeDecl:
		if d := b.Decls.Get(n.Decl); d != nil {
			return d.Span
		}
	case NodeMember:
		if m := b.Members.Get(n.Member); m != nil {
			return m.Span
		}
	case NodeExpr:
		if e := b.Exprs.Get(n.Expr); e != nil {
			return e.Span
		}
	}
	return source.Span{}
}

// Children returns the direct child nodes in source order. Attribute
// arguments count as children of their declaration, so scans see usage
// anywhere in the declaration's syntax, nested declarations included.
func (b *Builder) Children(n Node) []Node {
	switch n.Class {
	case NodeDecl:
		decl := b.Decls.Get(n.Decl)
		if decl == nil {
			return nil
		}
		out := make([]Node, 0, len(decl.Attrs)+len(decl.Members))
		for _, attrID := range decl.Attrs {
			attr := b.Attrs.Get(attrID)
			if attr == nil {
				continue
			}
			for _, arg := range attr.Args {
				if arg.Value.IsValid() {
					out = append(out, ExprNode(arg.Value))
				}
			}
		}
		for _, m := range decl.Members {
			out = append(out, MemberNode(m))
		}
		return out

	case NodeMember:
		member := b.Members.Get(n.Member)
		if member == nil {
			return nil
		}
		switch member.Kind {
		case MemberBinding:
			data, _ := b.Members.Binding(n.Member)
			if data != nil && data.Init.IsValid() {
				return []Node{ExprNode(data.Init)}
			}
			return nil
		case MemberFunc:
			data, _ := b.Members.Func(n.Member)
			if data == nil {
				return nil
			}
			out := make([]Node, 0, len(data.Body))
			for _, e := range data.Body {
				out = append(out, ExprNode(e))
			}
			return out
		case MemberNested:
			declID, _ := b.Members.NestedDecl(n.Member)
			if declID.IsValid() {
				return []Node{DeclNode(declID)}
			}
			return nil
		case MemberCase:
			data, _ := b.Members.Case(n.Member)
			if data != nil && data.Value.IsValid() {
				return []Node{ExprNode(data.Value)}
			}
			return nil
		}
		return nil

	case NodeExpr:
		expr := b.Exprs.Get(n.Expr)
		if expr == nil {
			return nil
		}
		switch expr.Kind {
		case ExprMember:
			data, _ := b.Exprs.Member(n.Expr)
			if data != nil && data.Base.IsValid() {
				return []Node{ExprNode(data.Base)}
			}
			return nil
		case ExprCall:
			data, _ := b.Exprs.Call(n.Expr)
			if data == nil {
				return nil
			}
			out := make([]Node, 0, len(data.Args)+2)
			if data.Callee.IsValid() {
				out = append(out, ExprNode(data.Callee))
			}
			for _, arg := range data.Args {
				if arg.Value.IsValid() {
					out = append(out, ExprNode(arg.Value))
				}
			}
			if data.Trailing.IsValid() {
				out = append(out, ExprNode(data.Trailing))
			}
			return out
		case ExprClosure:
			data, _ := b.Exprs.Closure(n.Expr)
			if data == nil {
				return nil
			}
			out := make([]Node, 0, len(data.Body))
			for _, e := range data.Body {
				out = append(out, ExprNode(e))
			}
			return out
		}
		return nil
	}
	return nil
}
