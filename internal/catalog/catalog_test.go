package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"holistic-daily/internal/model"
)

func TestDefault_Valid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("Default().Validate() error = %v", err)
	}
	for _, cat := range model.Categories {
		if len(c.Tasks[cat]) != 2 {
			t.Errorf("expected 2 entries for %s, got %d", cat, len(c.Tasks[cat]))
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr error
	}{
		{
			name: "valid",
			yaml: `
tasks:
  belly: [{title: Soup}]
  body: [{title: Walk}]
  brain: [{title: Read}]
support_topics:
  - keywords: [sleep]
    text: Sleep well.
    sources: [{title: Sleep, url: https://example.com/sleep}]
`,
		},
		{
			name: "empty category",
			yaml: `
tasks:
  belly: [{title: Soup}]
  body: []
  brain: [{title: Read}]
`,
			wantErr: ErrEmptyCategory,
		},
		{
			name: "missing category",
			yaml: `
tasks:
  belly: [{title: Soup}]
  body: [{title: Walk}]
`,
			wantErr: ErrEmptyCategory,
		},
		{
			name: "unknown category",
			yaml: `
tasks:
  belly: [{title: Soup}]
  body: [{title: Walk}]
  brain: [{title: Read}]
  soul: [{title: Sing}]
`,
			wantErr: ErrUnknownCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.yaml))
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Parse() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() unexpected error: %v", err)
			}
			if len(c.SupportTopics) != 1 || c.SupportTopics[0].Sources[0].URL != "https://example.com/sleep" {
				t.Errorf("support topics not decoded: %+v", c.SupportTopics)
			}
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	if _, err := Parse([]byte("tasks: [")); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	if err != nil || c.Tasks[model.CategoryBelly][0].Title != "Try a Mediterranean breakfast bowl" {
		t.Fatalf("Load(\"\") = %v, %v", c, err)
	}

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := "tasks:\n  belly: [{title: A}]\n  body: [{title: B}]\n  brain: [{title: C}]\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	c, err = Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if e, _ := c.First(model.CategoryBody); e.Title != "B" {
		t.Errorf("First(body) = %q", e.Title)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
