// Package assets provides the résumé stylesheets and the HTML page template.
//
// # Loaders
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - go:embed styles and templates
//	    ├── FilesystemLoader  - a custom directory on disk
//	    └── AssetResolver     - custom first, embedded on "not found"
//
// The embedded styles are "resume" (base layout) and one sheet per
// experience variant: "standard", "compact" and "impact". The converter
// loads the base sheet and then the sheet named after the configured variant.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css
//	└── templates/
//	    └── {name}.html
//
// A custom directory only needs the files it overrides.
//
// # Security
//
// Asset names are validated so they cannot carry path components.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
