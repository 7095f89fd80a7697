package fontconfig

import (
	"fmt"
	"strings"
)

// Font describes a font file found by fontconfig.
type Font struct {
	Name   string // full name, e.g. "DejaVu Sans Bold"
	Family string
	Style  string
	Path   string // path of the font file
	Index  int    // index of the face within the file
}

// FontFromPattern extracts a Font from a matched pattern. The pattern must
// at least have a file.
func FontFromPattern(p PatternRef) (Font, error) {
	f := Font{}
	var err error
	if f.Path, err = p.File(); err != nil {
		return Font{}, err
	}
	f.Family, _ = p.Family()
	f.Style, _ = p.Style()
	if f.Name, err = p.FullName(); err != nil {
		f.Name = strings.TrimSpace(f.Family + " " + f.Style)
	}
	f.Index, _ = p.FaceIndex()
	return f, nil
}

func (f Font) String() string {
	if f.Index > 0 {
		return fmt.Sprintf("%s (%s#%d)", f.Name, f.Path, f.Index)
	}
	return fmt.Sprintf("%s (%s)", f.Name, f.Path)
}

// FontFormat is the format of a font file, as reported by FreeType.
type FontFormat int

const (
	FormatUnknown FontFormat = iota
	FormatTrueType
	FormatType1
	FormatBDF
	FormatPCF
	FormatType42
	FormatCIDType1
	FormatCFF
	FormatPFR
	FormatWindowsFNT
)

var fontFormatNames = [...]string{
	FormatUnknown:    "unknown",
	FormatTrueType:   "TrueType",
	FormatType1:      "Type 1",
	FormatBDF:        "BDF",
	FormatPCF:        "PCF",
	FormatType42:     "Type 42",
	FormatCIDType1:   "CID Type 1",
	FormatCFF:        "CFF",
	FormatPFR:        "PFR",
	FormatWindowsFNT: "Windows FNT",
}

func (ff FontFormat) String() string {
	if ff < 0 || int(ff) >= len(fontFormatNames) {
		return "unknown"
	}
	return fontFormatNames[ff]
}

// ParseFontFormat interprets the value of object FONTFORMAT. Unknown
// values yield an error with code EUNKNOWNFORMAT.
func ParseFontFormat(s string) (FontFormat, error) {
	for ff, name := range fontFormatNames {
		if ff != int(FormatUnknown) && strings.EqualFold(s, name) {
			return FontFormat(ff), nil
		}
	}
	return FormatUnknown, Error(EUNKNOWNFORMAT, "unknown font format %q", s)
}
