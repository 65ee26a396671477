package engine

import (
	"slices"
	"testing"

	"github.com/matzehuels/dotkit/pkg/errors"
)

func TestParseEngine(t *testing.T) {
	tests := []struct {
		in      string
		want    Engine
		wantErr bool
	}{
		{"dot", Dot, false},
		{" NEATO ", Neato, false},
		{"nop2", Nop2, false},
		{"patchwork", Patchwork, false},
		{"graphviz", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseEngine(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseEngine(%q) error = %v", tt.in, err)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidEngine) {
				t.Errorf("code = %s", errors.GetCode(err))
			}
			if got != tt.want {
				t.Errorf("ParseEngine(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"svg", SVG, false},
		{"PNG", PNG, false},
		{"jpeg", JPG, false},
		{"gv", DOT, false},
		{"docx", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v", tt.in, err)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
				t.Errorf("code = %s", errors.GetCode(err))
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFormats(t *testing.T) {
	got, err := ParseFormats("svg, png,svg", PDF)
	if err != nil {
		t.Fatalf("ParseFormats: %v", err)
	}
	if !slices.Equal(got, []Format{SVG, PNG}) {
		t.Errorf("ParseFormats = %v", got)
	}

	got, err = ParseFormats("", PDF)
	if err != nil || !slices.Equal(got, []Format{PDF}) {
		t.Errorf("ParseFormats(empty) = %v, %v", got, err)
	}

	if _, err := ParseFormats("svg,bogus", SVG); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestFormatMetadata(t *testing.T) {
	if SVG.ContentType() != "image/svg+xml" || SVG.Binary() {
		t.Errorf("svg: %q binary=%v", SVG.ContentType(), SVG.Binary())
	}
	if !PNG.Binary() || PNG.Ext() != ".png" {
		t.Errorf("png: binary=%v ext=%q", PNG.Binary(), PNG.Ext())
	}
	if len(Formats()) != len(formats) {
		t.Errorf("Formats() returned %d formats", len(Formats()))
	}
}

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		code errors.Code
	}{
		{"ok", Request{Engine: Dot, Format: SVG, Source: []byte("graph {}")}, ""},
		{"engine", Request{Engine: "x", Format: SVG, Source: []byte("graph {}")}, errors.ErrCodeInvalidEngine},
		{"format", Request{Engine: Dot, Format: "x", Source: []byte("graph {}")}, errors.ErrCodeInvalidFormat},
		{"source", Request{Engine: Dot, Format: SVG, Source: []byte(" \n")}, errors.ErrCodeInvalidDocument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetCode(tt.req.Validate()); got != tt.code {
				t.Errorf("Validate() code = %q, want %q", got, tt.code)
			}
		})
	}
}
