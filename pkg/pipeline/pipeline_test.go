package pipeline

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/matzehuels/mobius/pkg/errors"
	"github.com/matzehuels/mobius/pkg/geom"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"pdf", false},
		{"json", false},
		{"dot", false},
		{"lineage", false},
		{"invalid", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %v, want %v", tt.format, errors.GetCode(err), errors.ErrCodeInvalidFormat)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "png"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}
	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}
	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"svg,png", []string{"svg", "png"}},
		{" SVG , pdf ,", []string{"svg", "pdf"}},
		{"png,png,svg", []string{"png", "svg"}},
		{"", nil},
	}
	for _, tt := range tests {
		if got := ParseFormats(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseFormats(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestExtension(t *testing.T) {
	if got := Extension(FormatPDF); got != ".pdf" {
		t.Errorf("Extension(pdf) = %q, want .pdf", got)
	}
	if got := Extension(FormatLineage); got != ".lineage.svg" {
		t.Errorf("Extension(lineage) = %q, want .lineage.svg", got)
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}
	if opts.Depth != geom.DefaultDepth || opts.Threshold != geom.DefaultThreshold {
		t.Errorf("depth/threshold = %d/%v", opts.Depth, opts.Threshold)
	}
	if len(opts.Base) != 4 {
		t.Errorf("square preset should resolve to 4 circles, got %d", len(opts.Base))
	}
	if opts.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}
	if !reflect.DeepEqual(opts.Formats, []string{"svg", "png"}) {
		t.Errorf("Formats = %v", opts.Formats)
	}
}

func TestValidateAndSetDefaultsErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
		code   errors.Code
	}{
		{"unknown preset", func(o *Options) { o.Preset = "pentagon" }, errors.ErrCodeInvalidPreset},
		{"bad preset name", func(o *Options) { o.Preset = "Square!" }, errors.ErrCodeInvalidPreset},
		{"negative depth", func(o *Options) { o.Depth = -1 }, errors.ErrCodeInvalidInput},
		{"negative threshold", func(o *Options) { o.Threshold = -1 }, errors.ErrCodeInvalidInput},
		{"bad format", func(o *Options) { o.Formats = []string{"gif"} }, errors.ErrCodeInvalidFormat},
		{"negative size", func(o *Options) { o.Size = -5 }, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.modify(&opts)
			err := opts.ValidateAndSetDefaults()
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want code %v", err, tt.code)
			}
		})
	}
}

func TestCustomBaseOverridesPreset(t *testing.T) {
	opts := DefaultOptions()
	opts.Preset = "hexagon"
	opts.Base = []geom.Circle{geom.C(0, 0, 1)}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if len(opts.Base) != 1 {
		t.Errorf("Base = %v, want the custom circle", opts.Base)
	}
}

func TestKeyOptsTrackInputs(t *testing.T) {
	a := DefaultOptions()
	b := DefaultOptions()
	b.Depth = 3
	for _, o := range []*Options{&a, &b} {
		if err := o.ValidateAndSetDefaults(); err != nil {
			t.Fatal(err)
		}
	}
	if reflect.DeepEqual(a.GenerationKeyOpts(), b.GenerationKeyOpts()) {
		t.Error("GenerationKeyOpts should differ when depth differs")
	}
	if a.ArtifactKeyOpts(FormatPNG) == a.ArtifactKeyOpts(FormatPDF) {
		t.Error("ArtifactKeyOpts should include the format")
	}
}

func TestOptionsJSON(t *testing.T) {
	opts := DefaultOptions()
	data, err := json.Marshal(opts)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	var back Options
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if back.Preset != opts.Preset || back.Depth != opts.Depth || back.Threshold != opts.Threshold {
		t.Errorf("round trip = %+v", back)
	}
}
