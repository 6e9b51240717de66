package resumemd

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const fullResume = `---
phone: 13800000000
email: a@b.com
wechat: zhangsan
---
# 张三

## 核心能力

- Go
- 熟悉 **分布式** 系统

## 工作经历

### 后端工程师 | 字节跳动 | 2020-至今

- responsibility: 负责推荐系统

#### 推荐引擎

- summary: 实时推荐
- stack: Go, Kafka
- contributions:
  - 设计接口
  - 优化性能

#### 旧项目

- contributions:
  - 后端
    - 设计 API
  - 前端
    - 重构组件

#### 重构

- contributions: 主导重构
- 性能优化
  - QPS 提升 3 倍
- stack: Go

### 工程师 ｜ 腾讯 ｜ 2016.07–2020.03

## 教育经历

- 北京大学 | 计算机 | 本科 | 毕业：2016 | 统招
`

func TestSerialize_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		md   string
	}{
		{"full resume", fullResume},
		{"core abilities only", "# 张三\n\n## 核心能力\n- Go\n- 分布式系统\n"},
		{"front matter only", "---\nname: 李四\nlocation: 北京\ncity: 上海\n---\n"},
		{"education from front matter", "---\nname: 王五\neducation_school: 清华大学\neducation_major: 软件工程\n---\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			first, err := Parse(tt.md)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			out, err := Serialize(first)
			if err != nil {
				t.Fatalf("Serialize() error = %v", err)
			}
			second, err := Parse(out)
			if err != nil {
				t.Fatalf("Parse(Serialize()) error = %v", err)
			}
			if diff := cmp.Diff(first, second, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("round trip mismatch (-first +second):\n%s\nserialized:\n%s", diff, out)
			}

			again, err := Serialize(second)
			if err != nil {
				t.Fatalf("Serialize() second pass error = %v", err)
			}
			if again != out {
				t.Errorf("Serialize is not idempotent:\nfirst:\n%s\nsecond:\n%s", out, again)
			}
		})
	}
}

func TestSerialize_Canonical(t *testing.T) {
	t.Parallel()

	r := &Resume{
		Basics:        Basics{Name: "张三"},
		CoreAbilities: []string{"Go"},
	}

	got, err := Serialize(r)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	want := "---\nname: 张三\n---\n\n# 张三\n\n## 核心能力\n\n- Go\n\n## 工作经历\n\n## 教育经历\n"
	if got != want {
		t.Errorf("Serialize() =\n%q\nwant\n%q", got, want)
	}
}

func TestSerialize_Experience(t *testing.T) {
	t.Parallel()

	r := &Resume{
		Basics: Basics{Name: "张三"},
		Experiences: []Experience{{
			Position:         "工程师",
			Company:          "字节跳动",
			Start:            "2020",
			End:              Present,
			Responsibilities: "负责后端",
			Projects: []Project{{
				Name:      "推荐",
				TechStack: "Go",
				Contributions: []ContributionGroup{
					{Title: "", Items: []string{"设计 API"}},
				},
			}},
		}},
		Education: []Education{{School: "北京大学", Major: "计算机", Graduation: "2016"}},
	}

	got, err := Serialize(r)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	for _, want := range []string{
		"### 工程师 ｜ 字节跳动 ｜ 2020–至今\n",
		"- responsibility: 负责后端\n",
		"#### 推荐\n",
		"- stack: Go\n",
		"- contributions:\n  - " + DefaultContributionTitle + "\n    - 设计 API\n",
		"- 北京大学 ｜ 计算机 ｜  ｜ 毕业：2016\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Serialize() missing %q in:\n%s", want, got)
		}
	}
}

func TestSerialize_FrontMatterRule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		basics Basics
		wantFM bool
	}{
		{"name", Basics{Name: "张三"}, true},
		{"email", Basics{Contact: Contact{Email: "a@b.com"}}, true},
		{"school", Basics{School: "北京大学"}, true},
		{"phone only", Basics{Contact: Contact{Phone: "13800000000"}}, false},
		{"wechat and location", Basics{Location: "北京", Contact: Contact{WeChat: "zs"}}, false},
		{"empty", Basics{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Serialize(&Resume{Basics: tt.basics})
			if err != nil {
				t.Fatalf("Serialize() error = %v", err)
			}
			if hasFM := strings.HasPrefix(got, frontMatterDelimiter+"\n"); hasFM != tt.wantFM {
				t.Errorf("front matter emitted = %v, want %v:\n%s", hasFM, tt.wantFM, got)
			}
		})
	}
}

func TestSerialize_PlaceholderName(t *testing.T) {
	t.Parallel()

	got, err := Serialize(&Resume{})
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if !strings.HasPrefix(got, "# "+PlaceholderName+"\n") {
		t.Errorf("Serialize() = %q, want placeholder heading first", got)
	}
}

func TestSerialize_NamelessRoundTrip(t *testing.T) {
	t.Parallel()

	r, err := Parse("## 核心能力\n- Go\n")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if r.Basics.Name != "" {
		t.Fatalf("Name = %q, want empty", r.Basics.Name)
	}

	first, err := Serialize(r)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	again, err := Parse(first)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if again.Basics.Name != PlaceholderName {
		t.Errorf("re-parsed Name = %q, want %q", again.Basics.Name, PlaceholderName)
	}

	// The placeholder becomes a real name, so the next pass adds front matter
	// and the output is stable from there on.
	second, err := Serialize(again)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if want := "---\nname: " + PlaceholderName + "\n---\n"; !strings.HasPrefix(second, want) {
		t.Errorf("second pass = %q, want prefix %q", second, want)
	}
	third, err := Parse(second)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	stable, err := Serialize(third)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if stable != second {
		t.Errorf("third pass differs:\n%s\nwant:\n%s", stable, second)
	}
}

func TestSerialize_CityEntry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		basics   Basics
		wantCity bool
	}{
		{"same as location", Basics{Name: "张三", Location: "北京", Contact: Contact{City: "北京"}}, false},
		{"differs from location", Basics{Name: "张三", Location: "北京", Contact: Contact{City: "上海"}}, true},
		{"city only", Basics{Name: "张三", Contact: Contact{City: "上海"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Serialize(&Resume{Basics: tt.basics})
			if err != nil {
				t.Fatalf("Serialize() error = %v", err)
			}
			if hasCity := strings.Contains(got, "\ncity: "); hasCity != tt.wantCity {
				t.Errorf("city emitted = %v, want %v:\n%s", hasCity, tt.wantCity, got)
			}

			back, err := Parse(got)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if back.Basics.Contact.City != tt.basics.Contact.City {
				t.Errorf("City after round trip = %q, want %q", back.Basics.Contact.City, tt.basics.Contact.City)
			}
		})
	}
}

func TestSerialize_NilResume(t *testing.T) {
	t.Parallel()

	_, err := Serialize(nil)
	if !errors.Is(err, ErrNilResume) {
		t.Errorf("Serialize(nil) error = %v, want ErrNilResume", err)
	}
}

func TestEducationLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Education
		want string
	}{
		{"all fields", Education{School: "北大", Major: "计算机", Degree: "本科", Graduation: "2016", Nature: "统招"}, "北大 ｜ 计算机 ｜ 本科 ｜ 毕业：2016 ｜ 统招"},
		{"trailing blanks dropped", Education{School: "北大", Major: "计算机"}, "北大 ｜ 计算机"},
		{"inner blanks kept", Education{School: "北大", Degree: "本科"}, "北大 ｜  ｜ 本科"},
		{"empty", Education{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := educationLine(tt.in); got != tt.want {
				t.Errorf("educationLine() = %q, want %q", got, tt.want)
			}
		})
	}
}
