package pipeline

import (
	"regexp"
	"strings"
)

// frontMatterDelimiter opens and closes the key: value preamble.
const frontMatterDelimiter = "---"

// tabWidth is the number of spaces a tab expands to. Two spaces keep nested
// bullets nested instead of turning them into indented code.
const tabWidth = 2

var (
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// "- contributions:" / "* **Contributions**：" and similar.
	contributionsItem = regexp.MustCompile(`(?i)^( *)[-*+][ \t]+[*_]*contributions[*_]*[ \t]*[:：]`)

	bulletLine  = regexp.MustCompile(`^( *)[-*+](?:[ \t]|$)`)
	headingLine = regexp.MustCompile(`^ {0,3}#{1,6}(?:[ \t]|$)`)
)

// FrontMatter holds lower-cased front-matter keys and their trimmed values.
type FrontMatter map[string]string

// Get returns the value for key (case-insensitive), or "".
func (f FrontMatter) Get(key string) string {
	return f[strings.ToLower(key)]
}

// Document is Markdown split into its front matter and a repaired body.
type Document struct {
	FrontMatter FrontMatter
	Body        string
}

// Preprocess prepares raw résumé text for the Markdown tree builder:
// line endings are normalized, the optional front matter is split off, tabs
// are expanded and loosely indented contributions blocks are re-nested.
func Preprocess(content string) Document {
	content = strings.TrimPrefix(content, "\ufeff")
	content = NormalizeLineEndings(content)
	fm, body := SplitFrontMatter(content)
	body = ExpandTabs(body)
	body = RepairContributionsIndent(body)
	return Document{FrontMatter: fm, Body: body}
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// SplitFrontMatter extracts a leading "---" delimited block of key: value
// lines. The closing delimiter is optional; without it every remaining line is
// front matter. Lines without a colon are skipped.
func SplitFrontMatter(content string) (FrontMatter, string) {
	fm := FrontMatter{}
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != frontMatterDelimiter {
		return fm, content
	}

	i := 1
	for ; i < len(lines); i++ {
		line := lines[i]
		if strings.TrimSpace(line) == frontMatterDelimiter {
			i++
			break
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		if key == "" {
			continue
		}
		fm[key] = unquote(strings.TrimSpace(value))
	}

	if i >= len(lines) {
		return fm, ""
	}
	return fm, strings.Join(lines[i:], "\n")
}

func unquote(v string) string {
	if len(v) >= 2 {
		first, last := v[0], v[len(v)-1]
		if (first == '"' || first == '\'') && first == last {
			return v[1 : len(v)-1]
		}
	}
	return v
}

// ExpandTabs replaces each tab with two spaces.
func ExpandTabs(content string) string {
	return strings.ReplaceAll(content, "\t", strings.Repeat(" ", tabWidth))
}

// RepairContributionsIndent re-nests the lines following a "- contributions:"
// bullet so that they sit at least two columns deeper than the bullet. The
// repaired range ends at the next bullet at the same or a shallower indent, or
// at the next heading. Relative indentation inside the range is preserved.
func RepairContributionsIndent(content string) string {
	lines := strings.Split(content, "\n")
	for i := 0; i < len(lines); i++ {
		m := contributionsItem.FindStringSubmatch(lines[i])
		if m == nil {
			continue
		}
		base := len(m[1])
		end := contributionsRangeEnd(lines, i+1, base)
		shiftRange(lines[i+1:end], base+tabWidth)
		i = end - 1
	}
	return strings.Join(lines, "\n")
}

func contributionsRangeEnd(lines []string, start, base int) int {
	for j := start; j < len(lines); j++ {
		line := lines[j]
		if headingLine.MatchString(line) {
			return j
		}
		if m := bulletLine.FindStringSubmatch(line); m != nil && len(m[1]) <= base {
			return j
		}
	}
	return len(lines)
}

// shiftRange indents every non-blank line by the same amount so that the
// shallowest one starts at column want.
func shiftRange(lines []string, want int) {
	minIndent := -1
	for _, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		if ind := leadingSpaces(l); minIndent < 0 || ind < minIndent {
			minIndent = ind
		}
	}
	if minIndent < 0 || minIndent >= want {
		return
	}
	pad := strings.Repeat(" ", want-minIndent)
	for k, l := range lines {
		if strings.TrimSpace(l) == "" {
			continue
		}
		lines[k] = pad + l
	}
}

func leadingSpaces(s string) int {
	return len(s) - len(strings.TrimLeft(s, " "))
}
