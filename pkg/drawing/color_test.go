package drawing

import (
	"image/color"
	"testing"

	"github.com/Nikolay-Lysenko/renovation/pkg/errors"
)

func TestLookupColor(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		want    color.RGBA
		wantErr bool
	}{
		{
			name:  "css name",
			token: "black",
			want:  color.RGBA{0, 0, 0, 255},
		},
		{
			name:  "css name with case and spaces",
			token: "  SteelBlue ",
			want:  color.RGBA{70, 130, 180, 255},
		},
		{
			name:  "british grey",
			token: "grey",
			want:  color.RGBA{128, 128, 128, 255},
		},
		{
			name:  "hex",
			token: "#1a1a2e",
			want:  color.RGBA{0x1a, 0x1a, 0x2e, 255},
		},
		{
			name:    "unknown name",
			token:   "blurple",
			wantErr: true,
		},
		{
			name:    "malformed hex",
			token:   "#12345",
			wantErr: true,
		},
		{
			name:    "empty",
			token:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LookupColor(tt.token)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LookupColor(%q) error = %v, wantErr %v", tt.token, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidColor) {
					t.Errorf("LookupColor(%q) error code = %v, want INVALID_COLOR", tt.token, errors.GetCode(err))
				}
				return
			}
			if got != tt.want {
				t.Errorf("LookupColor(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestParseColorFallsBackToBlack(t *testing.T) {
	if got := ParseColor("no-such-color"); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("ParseColor fallback = %v, want opaque black", got)
	}
}

func TestWithAlpha(t *testing.T) {
	opaque := color.RGBA{200, 100, 50, 255}

	if got := withAlpha(opaque, 0); got != opaque {
		t.Errorf("alpha 0 should mean opaque, got %v", got)
	}
	if got := withAlpha(opaque, 1); got != opaque {
		t.Errorf("alpha 1 should be unchanged, got %v", got)
	}

	half := withAlpha(opaque, 0.5)
	if half.A != 127 {
		t.Errorf("alpha channel = %d, want 127", half.A)
	}
	// Premultiplied components scale together with alpha.
	if half.R != 100 || half.G != 50 || half.B != 25 {
		t.Errorf("premultiplied components = %v, want {100 50 25}", half)
	}
}
