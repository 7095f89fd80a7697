/*
Package locate finds font files for a family name, a style and a weight.

Fonts are searched with fontconfig first. If fontconfig is not available, or
does not know a font of the requested family, the system's font directories
are searched by file name (with github.com/flopp/go-findfont). Fonts found are
remembered in a registry, so subsequent requests for the same font do not
hit the file system again.

As font lookup may be a time-consuming task, ResolveFont works in an
async/await fashion: it returns a promise, which the client will call later to
receive the font. The call to the promise-function will then block until
the lookup has completed.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package locate

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'fontconfig.locate'.
func tracer() tracing.Trace {
	return tracing.Select("fontconfig.locate")
}
