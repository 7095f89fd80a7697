/*
Package sys declares the foreign interface of the fontconfig C library.

It mirrors the parts of <fontconfig/fontconfig.h> the bindings need: opaque
handle types, the few structs whose layout is public (FcFontSet, FcMatrix),
enumerations, and a function table (Lib) with one entry per foreign function.

The table is populated in one of two ways, selected at build time:

   cgo && !fcdlopen    entries call into libfontconfig, linked via pkg-config
   !cgo || fcdlopen    entries are resolved at run time with dlopen/dlsym

Either way clients call Load() once and use the returned *Lib. Nothing in this
package owns memory; ownership rules live in the parent package.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package sys

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'fontconfig.sys'.
func tracer() tracing.Trace {
	return tracing.Select("fontconfig.sys")
}
