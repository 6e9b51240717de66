package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestEmbeddedLoader_LoadStyle(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	got, err := loader.LoadStyle(DefaultStyleName)
	if err != nil {
		t.Fatalf("LoadStyle() unexpected error: %v", err)
	}
	if !strings.Contains(got, "--body-size") {
		t.Error("base stylesheet should declare the typography variables")
	}

	_, err = loader.LoadStyle("nonexistent-style-xyz")
	if !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle() error = %v, want ErrStyleNotFound", err)
	}
}

func TestEmbeddedLoader_LoadTemplate(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	tests := []struct {
		name         string
		templateName string
		wantErr      error
	}{
		{name: "loads resume template", templateName: DefaultTemplateName},
		{name: "nonexistent template", templateName: "nonexistent-template-xyz", wantErr: ErrTemplateNotFound},
		{name: "empty name", templateName: "", wantErr: ErrInvalidAssetName},
		{name: "path traversal", templateName: "../secret", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loader.LoadTemplate(tt.templateName)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadTemplate(%q) error = %v, want %v", tt.templateName, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadTemplate(%q) unexpected error: %v", tt.templateName, err)
			}
			if got == "" {
				t.Errorf("LoadTemplate(%q) returned empty content", tt.templateName)
			}
		})
	}
}
