package fontconfig

import (
	xfont "golang.org/x/image/font"
)

// fontconfig weights for x/image/font weights, from WeightThin to WeightBlack.
var xweights = [...]int{
	WEIGHT_THIN,
	WEIGHT_EXTRALIGHT,
	WEIGHT_LIGHT,
	WEIGHT_REGULAR,
	WEIGHT_MEDIUM,
	WEIGHT_SEMIBOLD,
	WEIGHT_BOLD,
	WEIGHT_EXTRABOLD,
	WEIGHT_BLACK,
}

// FromXWeight converts a weight of package golang.org/x/image/font into a
// WEIGHT_… value.
func FromXWeight(w xfont.Weight) int {
	i := int(w - xfont.WeightThin)
	if i < 0 {
		i = 0
	} else if i >= len(xweights) {
		i = len(xweights) - 1
	}
	return xweights[i]
}

// ToXWeight converts a WEIGHT_… value into the closest weight of package
// golang.org/x/image/font.
func ToXWeight(weight int) xfont.Weight {
	best, dist := 0, -1
	for i, w := range xweights {
		d := weight - w
		if d < 0 {
			d = -d
		}
		if dist < 0 || d < dist {
			best, dist = i, d
		}
	}
	return xfont.WeightThin + xfont.Weight(best)
}

// FromXStyle converts a style of package golang.org/x/image/font into a
// SLANT_… value.
func FromXStyle(s xfont.Style) int {
	switch s {
	case xfont.StyleItalic:
		return SLANT_ITALIC
	case xfont.StyleOblique:
		return SLANT_OBLIQUE
	}
	return SLANT_ROMAN
}

// ToXStyle converts a SLANT_… value.
func ToXStyle(slant int) xfont.Style {
	switch {
	case slant >= SLANT_OBLIQUE:
		return xfont.StyleOblique
	case slant >= SLANT_ITALIC:
		return xfont.StyleItalic
	}
	return xfont.StyleNormal
}

// XWeight returns the weight of the pattern in terms of package
// golang.org/x/image/font.
func (ref PatternRef) XWeight() (xfont.Weight, error) {
	w, err := ref.Weight()
	if err != nil {
		return xfont.WeightNormal, err
	}
	return ToXWeight(w), nil
}

// XStyle returns the slant of the pattern in terms of package
// golang.org/x/image/font.
func (ref PatternRef) XStyle() (xfont.Style, error) {
	s, err := ref.Slant()
	if err != nil {
		return xfont.StyleNormal, err
	}
	return ToXStyle(s), nil
}

// AddXWeight adds a weight given in terms of package golang.org/x/image/font.
func (pat *Pattern) AddXWeight(w xfont.Weight) {
	pat.AddInteger(WEIGHT, FromXWeight(w))
}

// AddXStyle adds a slant given in terms of package golang.org/x/image/font.
func (pat *Pattern) AddXStyle(s xfont.Style) {
	pat.AddInteger(SLANT, FromXStyle(s))
}
