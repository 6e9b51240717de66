// Package assets provides the résumé stylesheets and the HTML page template.
// Assets can be loaded from embedded files or a custom directory.
package assets

// Built-in asset names.
const (
	// DefaultStyleName is the base résumé stylesheet.
	DefaultStyleName = "resume"

	// DefaultTemplateName is the template that renders blocks and pages.
	DefaultTemplateName = "resume"
)
