package pipeline

import (
	"context"
	"strings"
)

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent string, sheets ...string) string
}

// CSSInjection injects stylesheets as one <style> block into an HTML document.
type CSSInjection struct{}

// Compile-time interface check.
var _ CSSInjector = (*CSSInjection)(nil)

// InjectCSS inserts the non-empty sheets, in order, as a single <style> block.
// Later sheets win on equal specificity, so callers pass the base style first
// and typography overrides last. Tries </head>, then after <body>, then
// prepends.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent string, sheets ...string) string {
	if ctx.Err() != nil {
		return htmlContent
	}

	var css strings.Builder
	for _, sheet := range sheets {
		if strings.TrimSpace(sheet) == "" {
			continue
		}
		if css.Len() > 0 {
			css.WriteString("\n")
		}
		css.WriteString(sanitizeCSS(sheet))
	}
	if css.Len() == 0 {
		return htmlContent
	}

	styleBlock := "<style>" + css.String() + "</style>"
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + htmlContent[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		if closeIdx := strings.Index(htmlContent[idx:], ">"); closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + styleBlock + htmlContent[insertPos:]
		}
	}

	return styleBlock + htmlContent
}

// sanitizeCSS escapes "</" so a sheet cannot close the <style> element early.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
