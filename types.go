package resumemd

import (
	"fmt"
	"math"
	"strings"
)

// Present is the end-date sentinel used when an experience has no end date.
const Present = "至今"

// DefaultContributionTitle is the title given to a contribution group whose
// bullet carries no text of its own.
const DefaultContributionTitle = "贡献"

// PlaceholderName is emitted by the serializer when the résumé has no name.
const PlaceholderName = "姓名"

// Resume is the structured document produced by Parse.
// It is a plain value: every Parse call builds a fresh one and nothing holds on
// to it afterwards.
type Resume struct {
	Basics        Basics       `json:"basics" yaml:"basics"`
	CoreAbilities []string     `json:"coreAbilities" yaml:"coreAbilities"`
	Experiences   []Experience `json:"experiences" yaml:"experiences"`
	Education     []Education  `json:"education" yaml:"education"`
}

// Basics holds personal details. Front matter only fills fields that the body
// left blank.
type Basics struct {
	Name              string  `json:"name" yaml:"name"`
	Gender            string  `json:"gender,omitempty" yaml:"gender,omitempty"`
	Birth             string  `json:"birth,omitempty" yaml:"birth,omitempty"`
	YearsOfExperience string  `json:"yearsOfExperience,omitempty" yaml:"yearsOfExperience,omitempty"`
	Title             string  `json:"title,omitempty" yaml:"title,omitempty"`
	Location          string  `json:"location,omitempty" yaml:"location,omitempty"`
	GitHub            string  `json:"github,omitempty" yaml:"github,omitempty"`
	Website           string  `json:"website,omitempty" yaml:"website,omitempty"`
	School            string  `json:"school,omitempty" yaml:"school,omitempty"`
	Major             string  `json:"major,omitempty" yaml:"major,omitempty"`
	Degree            string  `json:"degree,omitempty" yaml:"degree,omitempty"`
	Graduation        string  `json:"graduation,omitempty" yaml:"graduation,omitempty"`
	Contact           Contact `json:"contact" yaml:"contact"`
}

// Contact holds contact channels.
type Contact struct {
	Phone  string `json:"phone,omitempty" yaml:"phone,omitempty"`
	Email  string `json:"email,omitempty" yaml:"email,omitempty"`
	WeChat string `json:"wechat,omitempty" yaml:"wechat,omitempty"`
	City   string `json:"city,omitempty" yaml:"city,omitempty"`
}

// Experience is one job, introduced by a level-3 heading.
type Experience struct {
	Company          string    `json:"company" yaml:"company"`
	Position         string    `json:"position" yaml:"position"`
	Start            string    `json:"start" yaml:"start"`
	End              string    `json:"end" yaml:"end"`
	Responsibilities string    `json:"responsibilities,omitempty" yaml:"responsibilities,omitempty"`
	Projects         []Project `json:"projects" yaml:"projects"`
}

// Project is one project within an experience, introduced by a level-4 heading.
//
// Contributions are held in one of two forms. ContributionsMarkdown keeps the
// author's own Markdown and is preferred; Contributions is the structured
// fallback. A parsed project never has both set.
type Project struct {
	Name                  string              `json:"name" yaml:"name"`
	Description           string              `json:"description,omitempty" yaml:"description,omitempty"`
	TechStack             string              `json:"techStack,omitempty" yaml:"techStack,omitempty"`
	ContributionsMarkdown string              `json:"contributionsMarkdown,omitempty" yaml:"contributionsMarkdown,omitempty"`
	Contributions         []ContributionGroup `json:"contributions,omitempty" yaml:"contributions,omitempty"`
}

// ContributionGroup is a titled list of contribution bullets.
type ContributionGroup struct {
	Title string   `json:"title" yaml:"title"`
	Items []string `json:"items" yaml:"items"`
}

// Education is one education entry.
type Education struct {
	School     string `json:"school" yaml:"school"`
	Major      string `json:"major" yaml:"major"`
	Degree     string `json:"degree" yaml:"degree"`
	Graduation string `json:"graduation,omitempty" yaml:"graduation,omitempty"`
	Nature     string `json:"nature,omitempty" yaml:"nature,omitempty"`
}

// ExperienceStyle selects the visual variant of the work-experience section.
type ExperienceStyle string

// Experience style variants.
const (
	ExperienceStandard ExperienceStyle = "standard"
	ExperienceCompact  ExperienceStyle = "compact"
	ExperienceImpact   ExperienceStyle = "impact"
)

// IsValid reports whether s is a known variant.
func (s ExperienceStyle) IsValid() bool {
	switch s {
	case ExperienceStandard, ExperienceCompact, ExperienceImpact:
		return true
	}
	return false
}

// DefaultFontFamily is the CSS font stack used when none is configured.
const DefaultFontFamily = `Inter, "PingFang SC", "Noto Sans SC", "Microsoft YaHei", sans-serif`

// Typography bounds. Sizes are CSS pixels, paddings millimetres.
const (
	MinNameSize    = 24.0
	MaxNameSize    = 32.0
	MinHeadingSize = 14.0
	MaxHeadingSize = 18.0
	MinBodySize    = 10.0
	MaxBodySize    = 14.0
	MinLineHeight  = 1.2
	MaxLineHeight  = 1.6
	MaxPaddingMm   = 40.0
	MaxContentGap  = 40.0
)

// TypographySettings drives how the preview is rendered, and through the
// rendered heights, how it is paginated. The parser never reads it.
type TypographySettings struct {
	BodySize            float64         `json:"bodySize" yaml:"bodySize"`
	HeadingSize         float64         `json:"headingSize" yaml:"headingSize"`
	NameSize            float64         `json:"nameSize" yaml:"nameSize"`
	LineHeight          float64         `json:"lineHeight" yaml:"lineHeight"`
	FontFamily          string          `json:"fontFamily" yaml:"fontFamily"`
	ExperienceStyle     ExperienceStyle `json:"experienceStyle" yaml:"experienceStyle"`
	ContentGapPx        float64         `json:"contentGapPx" yaml:"contentGapPx"`
	PagePaddingTopMm    float64         `json:"pagePaddingTopMm" yaml:"pagePaddingTopMm"`
	PagePaddingBottomMm float64         `json:"pagePaddingBottomMm" yaml:"pagePaddingBottomMm"`
	PagePaddingLeftMm   float64         `json:"pagePaddingLeftMm" yaml:"pagePaddingLeftMm"`
	PagePaddingRightMm  float64         `json:"pagePaddingRightMm" yaml:"pagePaddingRightMm"`
}

// DefaultTypography returns the stock settings.
func DefaultTypography() TypographySettings {
	return TypographySettings{
		BodySize:            12,
		HeadingSize:         15,
		NameSize:            26,
		LineHeight:          1.4,
		FontFamily:          DefaultFontFamily,
		ExperienceStyle:     ExperienceStandard,
		ContentGapPx:        6,
		PagePaddingTopMm:    DefaultPagePaddingMm,
		PagePaddingBottomMm: DefaultPagePaddingMm,
		PagePaddingLeftMm:   DefaultPagePaddingMm,
		PagePaddingRightMm:  DefaultPagePaddingMm,
	}
}

// Validate checks every setting against its bounds.
// Returns nil if t is nil (nil means use defaults).
func (t *TypographySettings) Validate() error {
	if t == nil {
		return nil
	}

	checks := []struct {
		field    string
		v        float64
		min, max float64
	}{
		{"nameSize", t.NameSize, MinNameSize, MaxNameSize},
		{"headingSize", t.HeadingSize, MinHeadingSize, MaxHeadingSize},
		{"bodySize", t.BodySize, MinBodySize, MaxBodySize},
		{"lineHeight", t.LineHeight, MinLineHeight, MaxLineHeight},
		{"contentGapPx", t.ContentGapPx, 0, MaxContentGap},
		{"pagePaddingTopMm", t.PagePaddingTopMm, 0, MaxPaddingMm},
		{"pagePaddingBottomMm", t.PagePaddingBottomMm, 0, MaxPaddingMm},
		{"pagePaddingLeftMm", t.PagePaddingLeftMm, 0, MaxPaddingMm},
		{"pagePaddingRightMm", t.PagePaddingRightMm, 0, MaxPaddingMm},
	}
	for _, c := range checks {
		if math.IsNaN(c.v) || c.v < c.min || c.v > c.max {
			return fmt.Errorf("%w: %s %.2f (must be between %.2f and %.2f)",
				ErrInvalidTypography, c.field, c.v, c.min, c.max)
		}
	}

	if strings.TrimSpace(t.FontFamily) == "" {
		return fmt.Errorf("%w: fontFamily is empty", ErrInvalidTypography)
	}
	if !t.ExperienceStyle.IsValid() {
		return fmt.Errorf("%w: experienceStyle %q (must be standard, compact, or impact)",
			ErrInvalidTypography, t.ExperienceStyle)
	}
	return nil
}
