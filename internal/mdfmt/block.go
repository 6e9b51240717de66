package mdfmt

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Canonical spellings used by the formatter.
const (
	Bullet       = "-"
	thematicRule = "***"
	codeFence    = "```"
)

var defaultParser = goldmark.DefaultParser()

// Parse builds a CommonMark syntax tree for source.
func Parse(source []byte) ast.Node {
	return ParseWith(defaultParser, source)
}

// ParseWith builds a syntax tree using p.
func ParseWith(p parser.Parser, source []byte) ast.Node {
	return p.Parse(text.NewReader(source))
}

// Format re-renders a whole Markdown document in canonical form:
// "-" bullets, one space after list markers, fenced code blocks and "*"
// emphasis. The result ends with a single newline, or is empty.
func Format(source []byte) string {
	doc := Parse(source)
	out := renderSequence(doc, source, false)
	if out == "" {
		return ""
	}
	return out + "\n"
}

// RenderBlocks renders the given block nodes as canonical Markdown, in order.
func RenderBlocks(nodes []ast.Node, source []byte) string {
	var prev ast.Node
	var b strings.Builder
	for _, n := range nodes {
		s := RenderBlock(n, source)
		if s == "" {
			continue
		}
		if prev != nil {
			b.WriteString(separator(prev, n, true))
		}
		b.WriteString(s)
		prev = n
	}
	return b.String()
}

// RenderBlock renders a single block node as canonical Markdown without a
// trailing newline.
func RenderBlock(n ast.Node, source []byte) string {
	switch v := n.(type) {
	case *ast.Heading:
		return strings.Repeat("#", v.Level) + " " + InlineText(v, source)
	case *ast.Paragraph, *ast.TextBlock:
		return InlineText(v, source)
	case *ast.List:
		return renderList(v, source)
	case *ast.ListItem:
		return renderItem(v, Bullet+" ", source)
	case *ast.FencedCodeBlock:
		return fenced(string(v.Language(source)), lines(v, source))
	case *ast.CodeBlock:
		return fenced("", lines(v, source))
	case *ast.Blockquote:
		return prefixLines(renderSequence(v, source, false), "> ", ">")
	case *ast.ThematicBreak:
		return thematicRule
	case *ast.HTMLBlock:
		body := lines(v, source)
		if v.HasClosure() {
			body += string(v.ClosureLine.Value(source))
		}
		return strings.TrimRight(body, "\n")
	default:
		return InlineText(n, source)
	}
}

// renderSequence renders the block children of parent. Inside list items a
// nested list follows its paragraph directly, which keeps tight items tight.
func renderSequence(parent ast.Node, source []byte, inItem bool) string {
	var b strings.Builder
	var prev ast.Node
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		s := RenderBlock(c, source)
		if s == "" {
			continue
		}
		if prev != nil {
			b.WriteString(separator(prev, c, inItem))
		}
		b.WriteString(s)
		prev = c
	}
	return b.String()
}

func separator(prev, next ast.Node, tight bool) string {
	if tight {
		if _, ok := next.(*ast.List); ok {
			if isParagraph(prev) {
				return "\n"
			}
		}
	}
	return "\n\n"
}

func isParagraph(n ast.Node) bool {
	switch n.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		return true
	}
	return false
}

func renderList(l *ast.List, source []byte) string {
	var b strings.Builder
	num := l.Start
	first := true
	for c := l.FirstChild(); c != nil; c = c.NextSibling() {
		item, ok := c.(*ast.ListItem)
		if !ok {
			continue
		}
		marker := Bullet + " "
		if l.IsOrdered() {
			marker = strconv.Itoa(num) + string(l.Marker) + " "
			num++
		}
		if !first {
			if l.IsTight {
				b.WriteString("\n")
			} else {
				b.WriteString("\n\n")
			}
		}
		b.WriteString(renderItem(item, marker, source))
		first = false
	}
	return b.String()
}

func renderItem(item *ast.ListItem, marker string, source []byte) string {
	body := renderSequence(item, source, true)
	if body == "" {
		return strings.TrimRight(marker, " ")
	}
	indent := strings.Repeat(" ", len(marker))
	ls := strings.Split(body, "\n")
	for i, l := range ls {
		switch {
		case i == 0:
			ls[i] = marker + l
		case l == "":
		default:
			ls[i] = indent + l
		}
	}
	return strings.Join(ls, "\n")
}

// IndentBlock prefixes every non-empty line of s with indent.
func IndentBlock(s, indent string) string {
	return prefixLines(s, indent, "")
}

func prefixLines(s, prefix, emptyPrefix string) string {
	ls := strings.Split(s, "\n")
	for i, l := range ls {
		if l == "" {
			ls[i] = emptyPrefix
			continue
		}
		ls[i] = prefix + l
	}
	return strings.Join(ls, "\n")
}

func lines(n ast.Node, source []byte) string {
	var b strings.Builder
	segs := n.Lines()
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		b.Write(seg.Value(source))
	}
	return b.String()
}

func fenced(lang, body string) string {
	fence := codeFence
	for strings.Contains(body, fence) {
		fence += "`"
	}
	body = strings.TrimRight(body, "\n")
	if body == "" {
		return fence + lang + "\n" + fence
	}
	return fence + lang + "\n" + body + "\n" + fence
}
