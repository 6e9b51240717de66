package resumemd

import (
	"fmt"
	"strconv"
	"strings"
)

// buildTypographyCSS renders t as custom properties on :root. The base
// stylesheet reads every size through these variables, so this sheet is
// injected after it. A nil t renders the defaults.
func buildTypographyCSS(t *TypographySettings) string {
	if t == nil {
		d := DefaultTypography()
		t = &d
	}

	return fmt.Sprintf(`
/* Typography */
:root {
  --font-family: %s;
  --body-size: %spx;
  --heading-size: %spx;
  --name-size: %spx;
  --line-height: %s;
  --content-gap: %spx;
  --page-padding-top: %smm;
  --page-padding-right: %smm;
  --page-padding-bottom: %smm;
  --page-padding-left: %smm;
}
`,
		sanitizeFontFamily(t.FontFamily),
		cssNumber(t.BodySize),
		cssNumber(t.HeadingSize),
		cssNumber(t.NameSize),
		cssNumber(t.LineHeight),
		cssNumber(t.ContentGapPx),
		cssNumber(t.PagePaddingTopMm),
		cssNumber(t.PagePaddingRightMm),
		cssNumber(t.PagePaddingBottomMm),
		cssNumber(t.PagePaddingLeftMm),
	)
}

// cssNumber formats v with the fewest digits that round-trip.
func cssNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// sanitizeFontFamily drops characters that could end the declaration or the
// <style> element. An empty result falls back to the default stack.
func sanitizeFontFamily(s string) string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ';', '{', '}', '<', '>', '\\', '\n', '\r':
			return -1
		}
		return r
	}, s)
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultFontFamily
	}
	return s
}
