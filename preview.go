package resumemd

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/alnah/go-resumemd/internal/pipeline"
)

// Preview headings. They follow the printed layout, not the Markdown
// section names.
const (
	previewCoreHeading      = "个人优势"
	previewWorkHeading      = "工作经历"
	previewProjectsHeading  = "项目经历"
	previewEducationHeading = "教育背景"
	previewStackLabel       = "技术栈："
	previewGraduationSuffix = " 毕业"
	previewJoiner           = " · "
	previewPeriodJoiner     = " - "
)

// Document render modes. They become the body class.
const (
	modeMeasure = "measure"
	modePrint   = "print"
)

// PreviewBlock is one atomic content block of the rendered résumé.
// Pagination never splits a block.
type PreviewBlock struct {
	ID   string        `json:"id"`
	HTML template.HTML `json:"html"`
}

// previewRenderer renders a résumé into content blocks and assembles blocks
// into full HTML documents.
type previewRenderer struct {
	tmpl *template.Template
	md   pipeline.HTMLConverter
}

// newPreviewRenderer parses the block and document templates.
func newPreviewRenderer(templateSource string, md pipeline.HTMLConverter) (*previewRenderer, error) {
	tmpl, err := template.New("resume").Parse(templateSource)
	if err != nil {
		return nil, fmt.Errorf("parsing resume template: %w", err)
	}
	for _, name := range []string{"basics", "core", "experience", "education", "document"} {
		if tmpl.Lookup(name) == nil {
			return nil, fmt.Errorf("resume template: missing %q definition", name)
		}
	}
	return &previewRenderer{tmpl: tmpl, md: md}, nil
}

type basicsView struct {
	Name    string
	Title   string
	Meta    []string
	Contact []string
}

type coreView struct {
	Heading string
	Items   []template.HTML
}

type experienceView struct {
	ID               string
	First            bool
	SectionHeading   string
	ProjectsHeading  string
	StackLabel       string
	Title            string
	Period           string
	Responsibilities template.HTML
	Projects         []projectView
}

type projectView struct {
	Name              template.HTML
	Description       template.HTML
	TechStack         template.HTML
	ContributionsHTML template.HTML
	Groups            []groupView
}

type groupView struct {
	Title template.HTML
	Items []template.HTML
}

type educationView struct {
	Heading string
	Rows    []educationRow
}

type educationRow struct {
	Left  string
	Right string
}

type documentView struct {
	Title           string
	Mode            string
	ExperienceStyle ExperienceStyle
	Pages           []pageView
}

type pageView struct {
	Number int
	Blocks []template.HTML
}

// blocks renders r into its content blocks in document order: the header,
// core abilities, one block per experience, then education. Empty sections
// produce no block.
func (p *previewRenderer) blocks(ctx context.Context, r *Resume) ([]PreviewBlock, error) {
	if r == nil {
		return nil, ErrNilResume
	}

	var out []PreviewBlock
	add := func(id, name string, data any) error {
		html, err := p.execute(name, data)
		if err != nil {
			return err
		}
		out = append(out, PreviewBlock{ID: id, HTML: html})
		return nil
	}

	if err := add("basics", "basics", basicsBlock(r.Basics)); err != nil {
		return nil, err
	}

	if len(r.CoreAbilities) > 0 {
		items, err := p.inlineAll(ctx, r.CoreAbilities)
		if err != nil {
			return nil, err
		}
		if err := add("core", "core", coreView{Heading: previewCoreHeading, Items: items}); err != nil {
			return nil, err
		}
	}

	for i, exp := range r.Experiences {
		view, err := p.experienceBlock(ctx, i, exp)
		if err != nil {
			return nil, err
		}
		if err := add(view.ID, "experience", view); err != nil {
			return nil, err
		}
	}

	if len(r.Education) > 0 {
		if err := add("education", "education", educationBlock(r.Education)); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func basicsBlock(b Basics) basicsView {
	name := b.Name
	if name == "" {
		name = PlaceholderName
	}
	location := b.Location
	if location == "" {
		location = b.Contact.City
	}
	return basicsView{
		Name:    name,
		Title:   b.Title,
		Meta:    nonEmpty(b.Gender, b.YearsOfExperience),
		Contact: nonEmpty(b.Contact.Phone, b.Contact.Email, b.Contact.WeChat, location, b.GitHub, b.Website),
	}
}

func (p *previewRenderer) experienceBlock(ctx context.Context, i int, exp Experience) (experienceView, error) {
	view := experienceView{
		ID:              fmt.Sprintf("experience-%d", i),
		First:           i == 0,
		SectionHeading:  previewWorkHeading,
		ProjectsHeading: previewProjectsHeading,
		StackLabel:      previewStackLabel,
		Title:           strings.Join(nonEmpty(exp.Position, exp.Company), previewJoiner),
		Period:          strings.Join(nonEmpty(exp.Start, exp.End), previewPeriodJoiner),
	}

	var err error
	if view.Responsibilities, err = p.inline(ctx, exp.Responsibilities); err != nil {
		return view, err
	}

	for _, proj := range exp.Projects {
		pv, err := p.projectBlock(ctx, proj)
		if err != nil {
			return view, err
		}
		view.Projects = append(view.Projects, pv)
	}
	return view, nil
}

func (p *previewRenderer) projectBlock(ctx context.Context, proj Project) (projectView, error) {
	var (
		pv  projectView
		err error
	)
	if pv.Name, err = p.inline(ctx, proj.Name); err != nil {
		return pv, err
	}
	if pv.Description, err = p.inline(ctx, proj.Description); err != nil {
		return pv, err
	}
	if pv.TechStack, err = p.inline(ctx, proj.TechStack); err != nil {
		return pv, err
	}

	// The Markdown blob is the active representation when both are set.
	if proj.ContributionsMarkdown != "" {
		html, err := p.md.ToHTML(ctx, proj.ContributionsMarkdown)
		if err != nil {
			return pv, err
		}
		pv.ContributionsHTML = template.HTML(html) // #nosec G203 -- goldmark output, raw HTML disabled
		return pv, nil
	}

	for _, g := range proj.Contributions {
		gv := groupView{}
		if gv.Title, err = p.inline(ctx, g.Title); err != nil {
			return pv, err
		}
		if gv.Items, err = p.inlineAll(ctx, g.Items); err != nil {
			return pv, err
		}
		pv.Groups = append(pv.Groups, gv)
	}
	return pv, nil
}

func educationBlock(entries []Education) educationView {
	view := educationView{Heading: previewEducationHeading}
	for _, e := range entries {
		grad := ""
		if e.Graduation != "" {
			grad = e.Graduation + previewGraduationSuffix
		}
		view.Rows = append(view.Rows, educationRow{
			Left:  strings.Join(nonEmpty(e.School, e.Major), previewJoiner),
			Right: strings.Join(nonEmpty(e.Degree, grad), previewJoiner),
		})
	}
	return view
}

// document assembles blocks into a complete HTML page set. pages holds block
// indices per page; a nil pages puts every block on one page.
func (p *previewRenderer) document(blocks []PreviewBlock, pages [][]int, mode, title string, style ExperienceStyle) (string, error) {
	if pages == nil {
		all := make([]int, len(blocks))
		for i := range all {
			all[i] = i
		}
		pages = [][]int{all}
	}

	view := documentView{Title: title, Mode: mode, ExperienceStyle: style}
	for n, indices := range pages {
		page := pageView{Number: n + 1}
		for _, i := range indices {
			if i >= 0 && i < len(blocks) {
				page.Blocks = append(page.Blocks, blocks[i].HTML)
			}
		}
		view.Pages = append(view.Pages, page)
	}

	html, err := p.execute("document", view)
	if err != nil {
		return "", err
	}
	return string(html), nil
}

func (p *previewRenderer) execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := p.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("rendering %s block: %w", name, err)
	}
	return template.HTML(buf.String()), nil // #nosec G203 -- produced by html/template
}

// inline renders one Markdown string without its paragraph wrapper.
func (p *previewRenderer) inline(ctx context.Context, s string) (template.HTML, error) {
	html, err := pipeline.InlineHTML(ctx, p.md, s)
	if err != nil {
		return "", err
	}
	return template.HTML(html), nil // #nosec G203 -- goldmark output, raw HTML disabled
}

func (p *previewRenderer) inlineAll(ctx context.Context, items []string) ([]template.HTML, error) {
	out := make([]template.HTML, 0, len(items))
	for _, item := range items {
		html, err := p.inline(ctx, item)
		if err != nil {
			return nil, err
		}
		out = append(out, html)
	}
	return out, nil
}

func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
