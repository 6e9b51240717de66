package resumemd

import (
	"strings"
	"testing"
)

func TestBuildTypographyCSS(t *testing.T) {
	t.Parallel()

	t.Run("nil uses defaults", func(t *testing.T) {
		t.Parallel()

		got := buildTypographyCSS(nil)
		for _, want := range []string{
			"--body-size: 12px;",
			"--heading-size: 15px;",
			"--name-size: 26px;",
			"--line-height: 1.4;",
			"--content-gap: 6px;",
			"--page-padding-top: 8mm;",
			"--font-family: " + DefaultFontFamily + ";",
		} {
			if !strings.Contains(got, want) {
				t.Errorf("buildTypographyCSS(nil) missing %q", want)
			}
		}
	})

	t.Run("custom values", func(t *testing.T) {
		t.Parallel()

		ts := DefaultTypography()
		ts.BodySize = 10.5
		ts.PagePaddingLeftMm = 12.25
		ts.FontFamily = `"Source Han Serif", serif`

		got := buildTypographyCSS(&ts)
		for _, want := range []string{
			"--body-size: 10.5px;",
			"--page-padding-left: 12.25mm;",
			`--font-family: "Source Han Serif", serif;`,
		} {
			if !strings.Contains(got, want) {
				t.Errorf("buildTypographyCSS() missing %q in\n%s", want, got)
			}
		}
	})
}

func TestSanitizeFontFamily(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain stack", input: "Inter, sans-serif", want: "Inter, sans-serif"},
		{name: "quoted names kept", input: `"PingFang SC", serif`, want: `"PingFang SC", serif`},
		{name: "declaration break removed", input: "serif; color: red", want: "serif color: red"},
		{name: "style close removed", input: "serif</style><script>", want: "serif/stylescript"},
		{name: "braces removed", input: "serif} body {", want: "serif body"},
		{name: "empty falls back", input: "  ", want: DefaultFontFamily},
		{name: "only unsafe falls back", input: ";{}", want: DefaultFontFamily},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := sanitizeFontFamily(tt.input); got != tt.want {
				t.Errorf("sanitizeFontFamily(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCSSNumber(t *testing.T) {
	t.Parallel()

	tests := map[float64]string{12: "12", 1.4: "1.4", 0: "0", 7.125: "7.125"}
	for in, want := range tests {
		if got := cssNumber(in); got != want {
			t.Errorf("cssNumber(%v) = %q, want %q", in, got, want)
		}
	}
}
