package resumemd

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yuin/goldmark/ast"
	"golang.org/x/text/cases"
	"golang.org/x/text/width"

	"github.com/alnah/go-resumemd/internal/mdfmt"
	"github.com/alnah/go-resumemd/internal/pipeline"
)

// List-item keys recognized inside experiences and projects.
const (
	keyResponsibility = "responsibility"
	keySummary        = "summary"
	keyStack          = "stack"
	keyContributions  = "contributions"
)

var (
	fieldSeparator   = regexp.MustCompile(`[|｜]`)
	graduationPrefix = regexp.MustCompile(`^毕业[：:]\s*`)
	keyFolder        = cases.Fold()
)

// durationSeparators are tried in order; the first one present splits the
// duration into start and end.
var durationSeparators = []string{"–", "—", " - ", "-"}

// WarningKind classifies a recovered parse anomaly.
type WarningKind int

// Warning kinds.
const (
	WarnUnrecognizedSection WarningKind = iota + 1
	WarnOrphanProject
	WarnIgnoredItem
)

// Warning describes content the parser skipped. Warnings never make Parse fail.
type Warning struct {
	Kind WarningKind
	Text string
}

func (w Warning) String() string {
	switch w.Kind {
	case WarnUnrecognizedSection:
		return fmt.Sprintf("unrecognized section %q: content ignored", w.Text)
	case WarnOrphanProject:
		return fmt.Sprintf("project %q outside of an experience: ignored", w.Text)
	case WarnIgnoredItem:
		return fmt.Sprintf("project item %q has no known key: ignored", w.Text)
	default:
		return w.Text
	}
}

// Parse converts résumé Markdown into a Resume.
// Malformed content never causes an error: unknown sections are skipped and
// unknown list items are ignored. ErrParse is returned only if the Markdown
// tree builder itself fails.
func Parse(markdown string) (*Resume, error) {
	r, _, err := ParseWithWarnings(markdown)
	return r, err
}

// ParseWithWarnings is Parse that also reports the content it skipped.
func ParseWithWarnings(markdown string) (r *Resume, warnings []Warning, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r, warnings = nil, nil
			err = fmt.Errorf("%w: %v", ErrParse, rec)
		}
	}()

	doc := pipeline.Preprocess(markdown)
	src := []byte(doc.Body)

	p := &parser{src: src, resume: &Resume{}}
	root := mdfmt.Parse(src)
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		p.block(n)
	}
	p.flushExperience()

	mergeFrontMatter(p.resume, doc.FrontMatter)
	return p.resume, p.warnings, nil
}

// parseState is the section the scanner is in.
type parseState int

const (
	stateNoSection parseState = iota
	stateCore
	stateWork
	stateEducation
	stateOther
)

// parser is a single-pass state machine over the top-level blocks of the
// document. exp and proj are the open experience and project, if any.
type parser struct {
	src      []byte
	resume   *Resume
	state    parseState
	exp      *Experience
	proj     *Project
	warnings []Warning
}

func (p *parser) warn(kind WarningKind, text string) {
	p.warnings = append(p.warnings, Warning{Kind: kind, Text: text})
}

func (p *parser) block(n ast.Node) {
	switch v := n.(type) {
	case *ast.Heading:
		p.heading(v)
	case *ast.List:
		p.list(v)
	}
}

func (p *parser) heading(h *ast.Heading) {
	switch h.Level {
	case 1:
		p.resume.Basics.Name = mdfmt.InlineText(h, p.src)
	case 2:
		label := mdfmt.PlainText(mdfmt.FromNode(h, p.src))
		kind := Classify(label)
		if kind != SectionWorkExperience {
			p.flushExperience()
		}
		switch kind {
		case SectionCoreAbilities:
			p.state = stateCore
		case SectionWorkExperience:
			p.state = stateWork
		case SectionEducation:
			p.state = stateEducation
		default:
			p.state = stateOther
			p.warn(WarnUnrecognizedSection, label)
		}
	case 3:
		if p.state != stateWork {
			return
		}
		p.flushExperience()
		exp := parseExperienceHeading(mdfmt.InlineText(h, p.src))
		p.exp = &exp
	case 4:
		if p.state != stateWork {
			return
		}
		name := mdfmt.InlineText(h, p.src)
		if p.exp == nil {
			p.warn(WarnOrphanProject, name)
			return
		}
		p.flushProject()
		p.proj = &Project{Name: name}
	}
}

func (p *parser) list(l *ast.List) {
	items := listItems(l)
	switch p.state {
	case stateCore:
		for _, item := range items {
			if text := p.itemText(item); text != "" {
				p.resume.CoreAbilities = append(p.resume.CoreAbilities, text)
			}
		}
	case stateEducation:
		for _, item := range items {
			p.resume.Education = append(p.resume.Education, parseEducation(p.itemText(item)))
		}
	case stateWork:
		switch {
		case p.proj != nil:
			p.projectItems(items)
		case p.exp != nil:
			for _, item := range items {
				if kv, ok := splitKeyValue(p.keyText(item)); ok && kv.key == keyResponsibility {
					p.exp.Responsibilities = kv.value
				}
			}
		}
	}
}

func (p *parser) projectItems(items []*ast.ListItem) {
	for i := 0; i < len(items); i++ {
		item := items[i]
		kv, ok := splitKeyValue(p.keyText(item))
		switch {
		case ok && kv.key == keySummary:
			p.proj.Description = kv.value
		case ok && kv.key == keyStack:
			p.proj.TechStack = kv.value
		case ok && kv.key == keyContributions:
			i = p.contributions(items, i, kv.value)
		case nestedList(item) != nil:
			if g, ok := p.fallbackGroup(item); ok {
				p.proj.Contributions = append(p.proj.Contributions, g)
			}
		default:
			p.warn(WarnIgnoredItem, p.itemText(item))
		}
	}
}

// contributions handles the "contributions:" item at items[i] and returns the
// index of the last item it consumed.
//
// Following sibling items are absorbed until the next summary, stack or
// contributions key. If the key has no inline value, carries nothing but a
// nested list, and every nested or absorbed item has its own sub-list, the
// content is read as structured groups. Otherwise it is kept as Markdown.
func (p *parser) contributions(items []*ast.ListItem, i int, value string) int {
	item := items[i]

	end := i + 1
	for end < len(items) && !isProjectKey(p.keyText(items[end])) {
		end++
	}
	absorbed := items[i+1 : end]

	rest := blocksAfterKey(item)
	candidates := make([]*ast.ListItem, 0, len(absorbed))
	onlyList := true
	for _, b := range rest {
		l, ok := b.(*ast.List)
		if !ok {
			onlyList = false
			break
		}
		candidates = append(candidates, listItems(l)...)
	}
	candidates = append(candidates, absorbed...)

	if value == "" && onlyList && allHaveSubList(candidates) {
		for _, c := range candidates {
			p.proj.Contributions = append(p.proj.Contributions, p.legacyGroup(c))
		}
		return end - 1
	}

	var parts []string
	if value != "" {
		parts = append(parts, value)
	}
	if s := mdfmt.RenderBlocks(rest, p.src); s != "" {
		parts = append(parts, s)
	}
	if len(absorbed) > 0 {
		siblings := make([]string, 0, len(absorbed))
		for _, a := range absorbed {
			siblings = append(siblings, mdfmt.RenderBlock(a, p.src))
		}
		parts = append(parts, strings.Join(siblings, "\n"))
	}
	p.appendContributionsMarkdown(strings.Join(parts, "\n"))
	return end - 1
}

func (p *parser) appendContributionsMarkdown(md string) {
	if md == "" {
		return
	}
	if p.proj.ContributionsMarkdown != "" {
		p.proj.ContributionsMarkdown += "\n"
	}
	p.proj.ContributionsMarkdown += md
}

func (p *parser) legacyGroup(item *ast.ListItem) ContributionGroup {
	title := p.itemText(item)
	if title == "" {
		title = DefaultContributionTitle
	}
	items := p.nestedTexts(item)
	if len(items) == 0 {
		items = []string{title}
	}
	return ContributionGroup{Title: title, Items: items}
}

func (p *parser) fallbackGroup(item *ast.ListItem) (ContributionGroup, bool) {
	items := p.nestedTexts(item)
	if len(items) == 0 {
		return ContributionGroup{}, false
	}
	title := p.itemText(item)
	if title == "" {
		title = DefaultContributionTitle
	}
	return ContributionGroup{Title: title, Items: items}, true
}

func (p *parser) nestedTexts(item *ast.ListItem) []string {
	l := nestedList(item)
	if l == nil {
		return nil
	}
	var out []string
	for _, c := range listItems(l) {
		if text := p.itemText(c); text != "" {
			out = append(out, text)
		}
	}
	return out
}

func (p *parser) flushProject() {
	if p.proj == nil {
		return
	}
	if p.exp != nil {
		proj := *p.proj
		if proj.ContributionsMarkdown != "" && len(proj.Contributions) > 0 {
			proj.ContributionsMarkdown += "\n" + contributionGroupsMarkdown(proj.Contributions)
			proj.Contributions = nil
		}
		p.exp.Projects = append(p.exp.Projects, proj)
	}
	p.proj = nil
}

func (p *parser) flushExperience() {
	p.flushProject()
	if p.exp == nil {
		return
	}
	p.resume.Experiences = append(p.resume.Experiences, *p.exp)
	p.exp = nil
}

// itemText joins the text of every paragraph directly inside item.
// Nested lists are not included.
func (p *parser) itemText(item *ast.ListItem) string {
	var parts []string
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		if isParagraph(c) {
			if s := mdfmt.InlineText(c, p.src); s != "" {
				parts = append(parts, s)
			}
		}
	}
	return strings.Join(parts, " ")
}

// keyText is the text of the item's leading paragraph, where a key: value
// pair is written.
func (p *parser) keyText(item *ast.ListItem) string {
	first := item.FirstChild()
	if first == nil || !isParagraph(first) {
		return ""
	}
	return mdfmt.InlineText(first, p.src)
}

func isProjectKey(text string) bool {
	kv, ok := splitKeyValue(text)
	if !ok {
		return false
	}
	switch kv.key {
	case keySummary, keyStack, keyContributions:
		return true
	}
	return false
}

func isParagraph(n ast.Node) bool {
	switch n.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		return true
	}
	return false
}

func listItems(l *ast.List) []*ast.ListItem {
	var items []*ast.ListItem
	for c := l.FirstChild(); c != nil; c = c.NextSibling() {
		if item, ok := c.(*ast.ListItem); ok {
			items = append(items, item)
		}
	}
	return items
}

func nestedList(item *ast.ListItem) *ast.List {
	for c := item.FirstChild(); c != nil; c = c.NextSibling() {
		if l, ok := c.(*ast.List); ok {
			return l
		}
	}
	return nil
}

// blocksAfterKey returns the children of item that follow its key paragraph.
func blocksAfterKey(item *ast.ListItem) []ast.Node {
	c := item.FirstChild()
	if c != nil && isParagraph(c) {
		c = c.NextSibling()
	}
	var out []ast.Node
	for ; c != nil; c = c.NextSibling() {
		out = append(out, c)
	}
	return out
}

func allHaveSubList(items []*ast.ListItem) bool {
	if len(items) == 0 {
		return false
	}
	for _, it := range items {
		if nestedList(it) == nil {
			return false
		}
	}
	return true
}

type keyValue struct {
	key   string
	value string
}

// splitKeyValue splits "key: value" at the first half- or full-width colon.
// The key is folded (full-width to half-width, case-folded) and stripped of
// emphasis markers, so "**Summary**：" matches "summary". An emphasis run
// closing after the colon ("**summary:** x") is removed from the value.
func splitKeyValue(text string) (keyValue, bool) {
	idx := strings.IndexAny(text, ":：")
	if idx < 0 {
		return keyValue{}, false
	}
	sep := ":"
	if strings.HasPrefix(text[idx:], "：") {
		sep = "："
	}
	rawKey := strings.TrimSpace(text[:idx])
	value := strings.TrimSpace(text[idx+len(sep):])

	opening := leadingMarkers(rawKey)
	key := strings.Trim(rawKey, "*_` ")
	if key == "" {
		return keyValue{}, false
	}
	if opening != "" && !strings.HasSuffix(rawKey, opening) && strings.HasPrefix(value, opening) {
		value = strings.TrimSpace(strings.TrimPrefix(value, opening))
	}

	key = keyFolder.String(width.Fold.String(key))
	return keyValue{key: key, value: value}, true
}

func leadingMarkers(s string) string {
	end := strings.IndexFunc(s, func(r rune) bool { return r != '*' && r != '_' })
	if end < 0 {
		return s
	}
	return s[:end]
}

func parseExperienceHeading(text string) Experience {
	parts := splitFields(text)
	exp := Experience{
		Position: field(parts, 0),
		Company:  field(parts, 1),
	}
	exp.Start, exp.End = splitDuration(field(parts, 2))
	if exp.End == "" {
		exp.End = Present
	}
	return exp
}

func splitDuration(d string) (start, end string) {
	for _, sep := range durationSeparators {
		if before, after, ok := strings.Cut(d, sep); ok {
			return strings.TrimSpace(before), strings.TrimSpace(after)
		}
	}
	return strings.TrimSpace(d), ""
}

func parseEducation(text string) Education {
	parts := splitFields(text)
	return Education{
		School:     field(parts, 0),
		Major:      field(parts, 1),
		Degree:     field(parts, 2),
		Graduation: strings.TrimSpace(graduationPrefix.ReplaceAllString(field(parts, 3), "")),
		Nature:     field(parts, 4),
	}
}

func splitFields(text string) []string {
	parts := fieldSeparator.Split(text, -1)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func field(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return ""
}
