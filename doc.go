/*
Package fontconfig provides Go bindings for the fontconfig library
(https://www.freedesktop.org/wiki/Software/fontconfig/).

Fontconfig does all the real work: it maintains the font database, parses the
configuration files, applies substitution rules and scores fonts against a
request. This package wraps its C objects into Go types with explicit
ownership:

   *Pattern    owned; call Destroy when done
   PatternRef  borrowed from a font set or an owning *Pattern

The same split exists for character sets (*CharSet / CharSetRef) and font
sets (FontSet / FontSetRef). Owned types nil their handle on Destroy, so a
second Destroy is a no-op and any other use panics with a clear message.

Clients acquire the library with New and release it with Close:

   cfg, err := fontconfig.New()
   if err != nil { ... }
   defer cfg.Close()
   font, err := cfg.Find("DejaVu Sans", "Bold")

The first live *Config initializes fontconfig, the last one to close tears it
down again.

Failure conventions follow fontconfig's own: functions returning an FcResult
translate into errors (ErrNoMatch, ErrTypeMismatch, ErrNoID, ErrOutOfMemory),
whereas FcBool failures of mutating calls are treated as broken invariants and
panic.

Symbol resolution is selected at build time, see package sys.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fontconfig

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'fontconfig'.
func tracer() tracing.Trace {
	return tracing.Select("fontconfig")
}
