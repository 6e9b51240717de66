package resumemd

import (
	"errors"

	"github.com/alnah/go-resumemd/internal/assets"
)

// Built-in asset names.
const (
	// DefaultStyle is the base résumé stylesheet.
	DefaultStyle = assets.DefaultStyleName

	// DefaultTemplate renders the content blocks and the page set.
	DefaultTemplate = assets.DefaultTemplateName
)

// AssetLoader loads stylesheets and HTML templates by name.
// Implement it to serve assets from another backend.
//
// Experience variants are loaded as styles named after the variant
// ("standard", "compact", "impact"); a loader without them simply gets no
// variant sheet.
type AssetLoader interface {
	// LoadStyle loads a stylesheet by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)
}

// NewAssetLoader creates an AssetLoader for basePath. An empty basePath uses
// the embedded assets only; otherwise files under basePath win and missing
// ones fall back to the embedded set.
//
// The directory may contain styles/{name}.css and templates/{name}.html.
//
// Returns ErrInvalidAssetPath if basePath is set but not a readable directory.
func NewAssetLoader(basePath string) (AssetLoader, error) {
	resolver, err := assets.NewAssetResolver(basePath)
	if err != nil {
		return nil, convertAssetError(err)
	}
	return &assetLoaderAdapter{loader: resolver}, nil
}

// assetLoaderAdapter maps internal asset errors onto the public sentinels.
type assetLoaderAdapter struct {
	loader assets.AssetLoader
}

func (a *assetLoaderAdapter) LoadStyle(name string) (string, error) {
	content, err := a.loader.LoadStyle(name)
	return content, convertAssetError(err)
}

func (a *assetLoaderAdapter) LoadTemplate(name string) (string, error) {
	content, err := a.loader.LoadTemplate(name)
	return content, convertAssetError(err)
}

// convertAssetError maps internal asset errors to public errors.
func convertAssetError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, assets.ErrInvalidBasePath), errors.Is(err, assets.ErrPathTraversal):
		return &assetError{sentinel: ErrInvalidAssetPath, original: err}
	case errors.Is(err, assets.ErrInvalidAssetName):
		// An unusable name cannot exist.
		return &assetError{sentinel: ErrStyleNotFound, original: err}
	default:
		return err
	}
}

// assetError keeps the original message while matching a public sentinel.
type assetError struct {
	sentinel error
	original error
}

func (e *assetError) Error() string {
	return e.original.Error()
}

func (e *assetError) Unwrap() error {
	return e.sentinel
}
