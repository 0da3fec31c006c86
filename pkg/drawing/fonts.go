package drawing

import (
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/tdewolff/canvas"

	"github.com/Nikolay-Lysenko/renovation/pkg/errors"
)

// fontCandidates are the font files probed for label text, in order of
// preference. DejaVu ships with most Linux distributions; the later
// entries cover macOS and Windows installs.
var fontCandidates = []string{
	"DejaVuSans.ttf",
	"LiberationSans-Regular.ttf",
	"Arial.ttf",
	"arial.ttf",
	"Helvetica.ttf",
	"FreeSans.ttf",
	"Verdana.ttf",
}

var (
	fontOnce   sync.Once
	fontFamily *canvas.FontFamily
	fontErr    error
)

// FontFamily returns the lazily loaded sans-serif family used for all plan
// text. The first candidate found on the system wins; the result is shared
// across pages.
func FontFamily() (*canvas.FontFamily, error) {
	fontOnce.Do(func() {
		family := canvas.NewFontFamily("sans")
		for _, name := range fontCandidates {
			path, err := findfont.Find(name)
			if err != nil {
				continue
			}
			if err := family.LoadFontFile(path, canvas.FontRegular); err != nil {
				continue
			}
			fontFamily = family
			return
		}
		fontErr = errors.New(errors.ErrCodeFontNotFound,
			"no usable system font found (tried %s)", strings.Join(fontCandidates, ", "))
	})
	return fontFamily, fontErr
}
