package fontconfig

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	xfont "golang.org/x/image/font"
)

func TestFontFormat(t *testing.T) {
	for _, name := range []string{"TrueType", "Type 1", "BDF", "PCF", "Type 42",
		"CID Type 1", "CFF", "PFR", "Windows FNT"} {
		ff, err := ParseFontFormat(name)
		assert.NoError(t, err)
		assert.Equal(t, name, ff.String())
	}
	ff, err := ParseFontFormat("truetype")
	assert.NoError(t, err)
	assert.Equal(t, FormatTrueType, ff)
	ff, err = ParseFontFormat("WOFF3")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
	assert.Equal(t, FormatUnknown, ff)
	_, err = ParseFontFormat("unknown")
	assert.Error(t, err)
}

func TestWeightMapping(t *testing.T) {
	assert.Equal(t, WEIGHT_REGULAR, FromXWeight(xfont.WeightNormal))
	assert.Equal(t, WEIGHT_BOLD, FromXWeight(xfont.WeightBold))
	assert.Equal(t, WEIGHT_BLACK, FromXWeight(xfont.Weight(42)))
	assert.Equal(t, WEIGHT_THIN, FromXWeight(xfont.Weight(-42)))
	for w := xfont.WeightThin; w <= xfont.WeightBlack; w++ {
		assert.Equal(t, w, ToXWeight(FromXWeight(w)))
	}
	assert.Equal(t, xfont.WeightNormal, ToXWeight(WEIGHT_BOOK))
	assert.Equal(t, xfont.WeightLight, ToXWeight(WEIGHT_DEMILIGHT))
	assert.Equal(t, xfont.WeightBlack, ToXWeight(WEIGHT_EXTRABLACK))
}

func TestStyleMapping(t *testing.T) {
	assert.Equal(t, SLANT_ROMAN, FromXStyle(xfont.StyleNormal))
	assert.Equal(t, SLANT_ITALIC, FromXStyle(xfont.StyleItalic))
	assert.Equal(t, SLANT_OBLIQUE, FromXStyle(xfont.StyleOblique))
	for _, s := range []xfont.Style{xfont.StyleNormal, xfont.StyleItalic, xfont.StyleOblique} {
		assert.Equal(t, s, ToXStyle(FromXStyle(s)))
	}
}

func TestFontString(t *testing.T) {
	f := Font{Name: "DejaVu Sans", Path: "/fonts/DejaVuSans.ttf"}
	assert.Equal(t, "DejaVu Sans (/fonts/DejaVuSans.ttf)", f.String())
	f.Index = 2
	assert.Equal(t, "DejaVu Sans (/fonts/DejaVuSans.ttf#2)", f.String())
}
