package fontconfig

import "fmt"

// Version returns the version of the fontconfig library as
// major*10000 + minor*100 + revision, or 0 if the library is not available.
func Version() int {
	lib, err := library()
	if err != nil {
		return 0
	}
	return int(lib.GetVersion())
}

// VersionString returns the library version as "major.minor.revision".
func VersionString() string {
	v := Version()
	if v == 0 {
		return "unknown"
	}
	return fmt.Sprintf("%d.%d.%d", v/10000, (v/100)%100, v%100)
}
