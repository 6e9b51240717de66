package resumemd

import (
	"errors"

	"github.com/alnah/go-resumemd/internal/assets"
	"github.com/alnah/go-resumemd/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrParse             = errors.New("markdown parse failed")
	ErrNilResume         = errors.New("resume cannot be nil")
	ErrInvalidTypography = errors.New("invalid typography settings")

	// ErrHTMLConversion is shared with the rendering pipeline so callers can
	// match either with errors.Is.
	ErrHTMLConversion = pipeline.ErrHTMLConversion

	// Browser errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrMeasure        = errors.New("failed to measure content blocks")
	ErrPDFGeneration  = errors.New("PDF generation failed")

	// Asset loading errors. The not-found errors are the asset package's own,
	// so they match whichever loader produced them.
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrTemplateNotFound = assets.ErrTemplateNotFound
	ErrInvalidAssetPath = errors.New("invalid asset path")
)
