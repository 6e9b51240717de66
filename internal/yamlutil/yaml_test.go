package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alnah/go-resumemd/internal/yamlutil"
)

type project struct {
	Name  string   `yaml:"name"`
	Text  string   `yaml:"text,omitempty"`
	Items []string `yaml:"items,omitempty"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		want    project
		wantErr error
	}{
		{
			name: "known keys",
			data: "name: 推荐平台\nitems:\n  - 召回\n  - 排序\n",
			want: project{Name: "推荐平台", Items: []string{"召回", "排序"}},
		},
		{
			name: "unknown keys ignored",
			data: "name: A\nowner: B\n",
			want: project{Name: "A"},
		},
		{name: "empty", data: "", wantErr: yamlutil.ErrEmptyInput},
		{name: "too large", data: strings.Repeat("#", yamlutil.MaxInputSize+1), wantErr: yamlutil.ErrInputTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got project
			err := yamlutil.Unmarshal([]byte(tt.data), &got)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("Unmarshal() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnmarshal_NilDestination(t *testing.T) {
	t.Parallel()

	if err := yamlutil.Unmarshal([]byte("name: A"), nil); !errors.Is(err, yamlutil.ErrNilDestination) {
		t.Errorf("Unmarshal(nil) error = %v, want ErrNilDestination", err)
	}
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	var p project
	if err := yamlutil.UnmarshalStrict([]byte("name: A\ntext: B\n"), &p); err != nil {
		t.Fatalf("UnmarshalStrict() error = %v", err)
	}
	if p.Name != "A" || p.Text != "B" {
		t.Errorf("UnmarshalStrict() = %+v", p)
	}

	err := yamlutil.UnmarshalStrict([]byte("name: A\nowner: B\n"), &p)
	if err == nil {
		t.Fatal("UnmarshalStrict() accepted an unknown key")
	}
	if !strings.HasPrefix(err.Error(), "yamlutil: ") {
		t.Errorf("error = %q, want yamlutil prefix", err)
	}

	if err := yamlutil.UnmarshalStrict([]byte("name: [unclosed"), &p); err == nil {
		t.Error("UnmarshalStrict() accepted invalid YAML")
	}
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	in := project{
		Name:  "推荐平台",
		Text:  "- **召回**\n- 排序",
		Items: []string{"Go", "Kafka"},
	}
	out, err := yamlutil.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	s := string(out)

	if !strings.Contains(s, "text: |") {
		t.Errorf("multi-line string not in literal style:\n%s", s)
	}
	if !strings.Contains(s, "items:\n  - Go\n  - Kafka") {
		t.Errorf("sequence not indented:\n%s", s)
	}

	var back project
	if err := yamlutil.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if diff := cmp.Diff(in, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
