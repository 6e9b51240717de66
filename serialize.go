package resumemd

import (
	"strings"

	"github.com/alnah/go-resumemd/internal/mdfmt"
)

// fieldJoiner separates heading and education fields in serialized output.
const fieldJoiner = " ｜ "

// durationJoiner separates start and end dates in experience headings.
const durationJoiner = "–"

const frontMatterDelimiter = "---"

// Serialize renders r as canonical résumé Markdown.
//
// The body is assembled and then passed once more through the canonical
// formatter, so the output style does not depend on how the input was written.
// Parse(Serialize(r)) yields a résumé equal to r for any r produced by Parse
// from a named document. A nameless résumé is written under PlaceholderName,
// which the next Parse reads back as the name.
func Serialize(r *Resume) (string, error) {
	if r == nil {
		return "", ErrNilResume
	}

	var body strings.Builder
	b := r.Basics

	name := b.Name
	if name == "" {
		name = PlaceholderName
	}
	writeLine(&body, "# "+name)
	writeLine(&body, "")
	writeLine(&body, "## "+SectionCoreAbilities.String())
	writeLine(&body, "")
	for _, ability := range r.CoreAbilities {
		writeLine(&body, bullet(ability))
	}

	writeLine(&body, "")
	writeLine(&body, "## "+SectionWorkExperience.String())
	for _, exp := range r.Experiences {
		writeExperience(&body, exp)
	}

	writeLine(&body, "")
	writeLine(&body, "## "+SectionEducation.String())
	writeLine(&body, "")
	for _, edu := range r.Education {
		writeLine(&body, bullet(educationLine(edu)))
	}

	out := mdfmt.Format([]byte(body.String()))
	if fm := frontMatterBlock(b); fm != "" {
		out = fm + "\n" + out
	}
	return out, nil
}

// frontMatterBlock renders the basics as a front-matter block. The block is
// emitted only when the name, email or school is set.
func frontMatterBlock(b Basics) string {
	if b.Name == "" && b.Contact.Email == "" && b.School == "" {
		return ""
	}

	var s strings.Builder
	writeLine(&s, frontMatterDelimiter)
	pairs := []struct{ key, value string }{
		{"name", b.Name},
		{"gender", b.Gender},
		{"birth", b.Birth},
		{"yearsExp", b.YearsOfExperience},
		{"title", b.Title},
		{"phone", b.Contact.Phone},
		{"email", b.Contact.Email},
		{"wechat", b.Contact.WeChat},
		{"location", b.Location},
		{"city", cityEntry(b)},
		{"github", b.GitHub},
		{"website", b.Website},
		{"education_school", b.School},
		{"education_major", b.Major},
		{"education_degree", b.Degree},
		{"education_gradYear", b.Graduation},
	}
	for _, kv := range pairs {
		if v := strings.TrimSpace(kv.value); v != "" {
			writeLine(&s, kv.key+": "+v)
		}
	}
	writeLine(&s, frontMatterDelimiter)
	return s.String()
}

// cityEntry returns the contact city when location alone would not restore it.
func cityEntry(b Basics) string {
	if b.Contact.City == b.Location {
		return ""
	}
	return b.Contact.City
}

func writeExperience(w *strings.Builder, exp Experience) {
	writeLine(w, "")
	heading := strings.Join([]string{exp.Position, exp.Company, exp.Start + durationJoiner + exp.End}, fieldJoiner)
	writeLine(w, "### "+heading)
	if exp.Responsibilities != "" {
		writeLine(w, "")
		writeLine(w, bullet(keyResponsibility+": "+exp.Responsibilities))
	}
	for _, proj := range exp.Projects {
		writeProject(w, proj)
	}
}

func writeProject(w *strings.Builder, proj Project) {
	writeLine(w, "")
	writeLine(w, "#### "+proj.Name)
	writeLine(w, "")
	if proj.Description != "" {
		writeLine(w, bullet(keySummary+": "+proj.Description))
	}
	if proj.TechStack != "" {
		writeLine(w, bullet(keyStack+": "+proj.TechStack))
	}

	switch {
	case proj.ContributionsMarkdown != "":
		writeLine(w, mdfmt.Bullet+" "+keyContributions+":")
		writeLine(w, mdfmt.IndentBlock(proj.ContributionsMarkdown, "  "))
	case len(proj.Contributions) > 0:
		writeLine(w, mdfmt.Bullet+" "+keyContributions+":")
		writeLine(w, mdfmt.IndentBlock(contributionGroupsMarkdown(proj.Contributions), "  "))
	}
}

// contributionGroupsMarkdown renders groups as a two-level bullet list. The
// title line is always written, so groups read back with the same title.
func contributionGroupsMarkdown(groups []ContributionGroup) string {
	var lines []string
	for _, g := range groups {
		title := g.Title
		if title == "" {
			title = DefaultContributionTitle
		}
		lines = append(lines, bullet(title))
		for _, item := range g.Items {
			lines = append(lines, mdfmt.IndentBlock(bullet(item), "  "))
		}
	}
	return strings.Join(lines, "\n")
}

// educationLine joins the education fields, dropping only trailing blanks so
// that every field keeps its position.
func educationLine(e Education) string {
	grad := ""
	if e.Graduation != "" {
		grad = "毕业：" + e.Graduation
	}
	parts := []string{e.School, e.Major, e.Degree, grad, e.Nature}
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	return strings.Join(parts, fieldJoiner)
}

// bullet renders text as a list item, indenting continuation lines under the
// marker.
func bullet(text string) string {
	lines := strings.Split(text, "\n")
	for i := 1; i < len(lines); i++ {
		if lines[i] != "" {
			lines[i] = "  " + lines[i]
		}
	}
	return mdfmt.Bullet + " " + strings.Join(lines, "\n")
}

func writeLine(w *strings.Builder, s string) {
	w.WriteString(s)
	w.WriteByte('\n')
}
