// Package mdfmt turns goldmark syntax trees back into canonical Markdown.
//
// Inline content is first lowered into a small closed variant (Inline) and then
// rendered by Normalize. The same rendering is used when extracting list-item
// text during parsing and when re-serializing nested blocks, so both directions
// agree on how emphasis, code and links are spelled.
package mdfmt

import (
	"strings"

	"github.com/yuin/goldmark/ast"
)

// Kind identifies an inline variant.
type Kind int

// Inline variants.
const (
	KindText Kind = iota
	KindStrong
	KindEmphasis
	KindCode
	KindLink
	KindBreak
	KindContainer
)

// Inline is a closed tagged variant over the inline constructs the résumé
// dialect preserves.
type Inline struct {
	Kind     Kind
	Value    string // KindText, KindCode
	URL      string // KindLink
	Children []Inline
}

// Text returns a plain text inline.
func Text(v string) Inline { return Inline{Kind: KindText, Value: v} }

// Strong returns a bold inline.
func Strong(children ...Inline) Inline { return Inline{Kind: KindStrong, Children: children} }

// Emphasis returns an italic inline.
func Emphasis(children ...Inline) Inline { return Inline{Kind: KindEmphasis, Children: children} }

// Code returns an inline code span.
func Code(v string) Inline { return Inline{Kind: KindCode, Value: v} }

// Link returns a link inline. An empty url renders as bare text.
func Link(url string, children ...Inline) Inline {
	return Inline{Kind: KindLink, URL: url, Children: children}
}

// Break returns a line break.
func Break() Inline { return Inline{Kind: KindBreak} }

// Container groups inlines without adding markup.
func Container(children ...Inline) Inline { return Inline{Kind: KindContainer, Children: children} }

// Normalize renders an inline tree as canonical inline Markdown.
func Normalize(in Inline) string {
	switch in.Kind {
	case KindText:
		return in.Value
	case KindBreak:
		return "\n"
	case KindCode:
		return codeSpan(in.Value)
	case KindStrong:
		inner := normalizeChildren(in.Children)
		if inner == "" {
			return ""
		}
		return "**" + inner + "**"
	case KindEmphasis:
		inner := normalizeChildren(in.Children)
		if inner == "" {
			return ""
		}
		return "*" + inner + "*"
	case KindLink:
		inner := normalizeChildren(in.Children)
		if in.URL == "" {
			return inner
		}
		return "[" + inner + "](" + in.URL + ")"
	default:
		return normalizeChildren(in.Children)
	}
}

func normalizeChildren(children []Inline) string {
	var b strings.Builder
	for _, c := range children {
		b.WriteString(Normalize(c))
	}
	return strings.TrimSpace(b.String())
}

// codeSpan picks a backtick fence longer than any run inside v.
func codeSpan(v string) string {
	longest, run := 0, 0
	for _, r := range v {
		if r == '`' {
			run++
			if run > longest {
				longest = run
			}
			continue
		}
		run = 0
	}
	if longest == 0 {
		return "`" + v + "`"
	}
	fence := strings.Repeat("`", longest+1)
	return fence + " " + v + " " + fence
}

// FromNode lowers a goldmark node into the Inline variant.
// Block nodes (paragraphs, headings) become containers of their inline children.
func FromNode(n ast.Node, source []byte) Inline {
	switch v := n.(type) {
	case *ast.Text:
		return Text(string(v.Value(source)))
	case *ast.String:
		return Text(string(v.Value))
	case *ast.Emphasis:
		if v.Level >= 2 {
			return Strong(fromChildren(v, source)...)
		}
		return Emphasis(fromChildren(v, source)...)
	case *ast.CodeSpan:
		return Code(codeSpanValue(v, source))
	case *ast.Link:
		return Link(string(v.Destination), fromChildren(v, source)...)
	case *ast.AutoLink:
		return Link(string(v.URL(source)), Text(string(v.Label(source))))
	case *ast.Image:
		alt := Normalize(Container(fromChildren(v, source)...))
		return Text("![" + alt + "](" + string(v.Destination) + ")")
	case *ast.RawHTML:
		var b strings.Builder
		for i := 0; i < v.Segments.Len(); i++ {
			seg := v.Segments.At(i)
			b.Write(seg.Value(source))
		}
		return Text(b.String())
	default:
		return Container(fromChildren(n, source)...)
	}
}

// fromChildren lowers the children of n. Soft and hard line breaks carried as
// flags on text nodes become explicit Break siblings.
func fromChildren(n ast.Node, source []byte) []Inline {
	var out []Inline
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		out = append(out, FromNode(c, source))
		if t, ok := c.(*ast.Text); ok && (t.SoftLineBreak() || t.HardLineBreak()) {
			out = append(out, Break())
		}
	}
	return out
}

func codeSpanValue(n *ast.CodeSpan, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Value(source))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
	}
	return b.String()
}

// InlineText renders the inline content of n (a paragraph, heading or any
// inline container) as canonical Markdown.
func InlineText(n ast.Node, source []byte) string {
	return Normalize(FromNode(n, source))
}

// PlainText renders the text content of an inline tree without any markup.
func PlainText(in Inline) string {
	switch in.Kind {
	case KindText, KindCode:
		return in.Value
	case KindBreak:
		return "\n"
	default:
		var b strings.Builder
		for _, c := range in.Children {
			b.WriteString(PlainText(c))
		}
		return strings.TrimSpace(b.String())
	}
}
