package transpiler

import (
	"testing"

	"github.com/hellenic-development/figma-render/pkg/figma"
)

func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func TestEncodeColor(t *testing.T) {
	tests := []struct {
		name    string
		color   *figma.Color
		opacity *float64
		want    string
	}{
		{
			name:  "channel round-trip",
			color: &figma.Color{R: 0.5, G: 0.25, B: 1.0, A: floatPtr(0.8)},
			want:  "rgba(128, 64, 255, 0.8)",
		},
		{
			name:    "opacity override beats color alpha",
			color:   &figma.Color{R: 0.5, G: 0.25, B: 1.0, A: floatPtr(0.8)},
			opacity: floatPtr(0.5),
			want:    "rgba(128, 64, 255, 0.5)",
		},
		{
			name:  "absent alpha defaults to opaque",
			color: &figma.Color{R: 1, G: 1, B: 1},
			want:  "rgba(255, 255, 255, 1)",
		},
		{
			name:  "nil color yields transparent sentinel",
			color: nil,
			want:  "rgba(0, 0, 0, 0)",
		},
		{
			name:    "nil color ignores override",
			color:   nil,
			opacity: floatPtr(0.5),
			want:    "rgba(0, 0, 0, 0)",
		},
		{
			name:  "black",
			color: &figma.Color{A: floatPtr(1)},
			want:  "rgba(0, 0, 0, 1)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EncodeColor(tt.color, tt.opacity)
			if got != tt.want {
				t.Errorf("EncodeColor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{50, "50"},
		{0.5, "0.5"},
		{12.25, "12.25"},
		{-3, "-3"},
		{0, "0"},
	}

	for _, tt := range tests {
		if got := formatNumber(tt.in); got != tt.want {
			t.Errorf("formatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
