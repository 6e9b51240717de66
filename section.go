package resumemd

import (
	"strings"
	"unicode"
)

// SectionKind is the canonical kind of a level-2 heading.
type SectionKind int

// Section kinds. The zero value is SectionUnrecognized.
const (
	SectionUnrecognized SectionKind = iota
	SectionCoreAbilities
	SectionWorkExperience
	SectionEducation
)

// String returns the canonical heading text for the kind.
func (k SectionKind) String() string {
	switch k {
	case SectionCoreAbilities:
		return "核心能力"
	case SectionWorkExperience:
		return "工作经历"
	case SectionEducation:
		return "教育经历"
	default:
		return "unrecognized"
	}
}

var sectionSynonyms = map[string]SectionKind{
	"核心能力":  SectionCoreAbilities,
	"技能":    SectionCoreAbilities,
	"专业技能":  SectionCoreAbilities,
	"技术能力":  SectionCoreAbilities,
	"核心竞争力": SectionCoreAbilities,
	"技术栈":   SectionCoreAbilities,
	"个人优势":  SectionCoreAbilities,
	"个人亮点":  SectionCoreAbilities,

	"工作经历": SectionWorkExperience,
	"工作经验": SectionWorkExperience,
	"项目经验": SectionWorkExperience,
	"工作履历": SectionWorkExperience,
	"项目经历": SectionWorkExperience,

	"教育经历": SectionEducation,
	"教育背景": SectionEducation,
}

// Classify maps a heading to its section kind. All whitespace is removed
// before matching, so "工作 经历" is recognized. Any other text, including
// the empty string, is SectionUnrecognized.
func Classify(heading string) SectionKind {
	return sectionSynonyms[stripSpace(heading)]
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
