package resumemd

import (
	"strings"

	"github.com/alnah/go-resumemd/internal/pipeline"
)

// Front-matter keys. Keys are matched lower-cased.
const (
	fmName              = "name"
	fmGender            = "gender"
	fmBirth             = "birth"
	fmYearsExp          = "yearsexp"
	fmTitle             = "title"
	fmPhone             = "phone"
	fmEmail             = "email"
	fmWeChat            = "wechat"
	fmLocation          = "location"
	fmCity              = "city"
	fmGitHub            = "github"
	fmWebsite           = "website"
	fmEducationSchool   = "education_school"
	fmEducationMajor    = "education_major"
	fmEducationDegree   = "education_degree"
	fmEducationGradYear = "education_gradyear"
)

// mergeFrontMatter fills blank fields of r from fm. Values parsed from the
// body always win. The location key also fills the contact city.
func mergeFrontMatter(r *Resume, fm pipeline.FrontMatter) {
	if len(fm) == 0 {
		return
	}

	b := &r.Basics
	fill(&b.Name, fm.Get(fmName))
	fill(&b.Gender, fm.Get(fmGender))
	fill(&b.Birth, fm.Get(fmBirth))
	fill(&b.YearsOfExperience, fm.Get(fmYearsExp))
	fill(&b.Title, fm.Get(fmTitle))
	fill(&b.Location, fm.Get(fmLocation))
	fill(&b.GitHub, fm.Get(fmGitHub))
	fill(&b.Website, fm.Get(fmWebsite))
	fill(&b.School, fm.Get(fmEducationSchool))
	fill(&b.Major, fm.Get(fmEducationMajor))
	fill(&b.Degree, fm.Get(fmEducationDegree))
	fill(&b.Graduation, fm.Get(fmEducationGradYear))

	c := &b.Contact
	fill(&c.Phone, fm.Get(fmPhone))
	fill(&c.Email, fm.Get(fmEmail))
	fill(&c.WeChat, fm.Get(fmWeChat))
	fill(&c.City, fm.Get(fmCity))
	fill(&c.City, fm.Get(fmLocation))

	school, major, degree := fm.Get(fmEducationSchool), fm.Get(fmEducationMajor), fm.Get(fmEducationDegree)
	if school == "" && major == "" && degree == "" {
		return
	}
	if len(r.Education) == 0 {
		r.Education = append(r.Education, Education{})
	}
	first := &r.Education[0]
	fill(&first.School, school)
	fill(&first.Major, major)
	fill(&first.Degree, degree)
	fill(&first.Graduation, fm.Get(fmEducationGradYear))
}

func fill(dst *string, v string) {
	if strings.TrimSpace(*dst) == "" && v != "" {
		*dst = v
	}
}
