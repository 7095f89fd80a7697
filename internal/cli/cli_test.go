package cli

import (
	"testing"

	"github.com/npillmayer/fontconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnescape(t *testing.T) {
	assert.Equal(t, "%{family}\n", Unescape(`%{family}\n`))
	assert.Equal(t, "a\tb\nc", Unescape(`a\tb\nc`))
	assert.Equal(t, "plain", Unescape("plain"))
}

func requireLibrary(t *testing.T) {
	if err := fontconfig.Available(); err != nil {
		t.Skipf("fontconfig not usable: %v", err)
	}
}

func TestPatternFromArgs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, TraceKey)
	defer teardown()
	requireLibrary(t)
	//
	pat, elements := PatternFromArgs(nil)
	assert.Empty(t, elements)
	assert.Equal(t, "", pat.Unparse())
	pat.Destroy()
	//
	pat, elements = PatternFromArgs([]string{"DejaVu Sans:bold", "family", "file"})
	defer pat.Destroy()
	assert.Equal(t, []string{"family", "file"}, elements)
	fam, err := pat.Family()
	require.NoError(t, err)
	assert.Equal(t, "DejaVu Sans", fam)
}

func TestPatternFromArgsPanicsOnParseError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, TraceKey)
	defer teardown()
	requireLibrary(t)
	//
	for _, bad := range []string{"Fira:matrix=x", "Fira:charset=zz", "Fira:lang=@@"} {
		if p, err := fontconfig.ParsePattern(bad); err == nil {
			p.Destroy()
			continue
		}
		assert.Panics(t, func() { PatternFromArgs([]string{bad}) }, "pattern %q", bad)
		return
	}
	t.Skip("fontconfig accepted every malformed name tried")
}

func TestOutputFormats(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, TraceKey)
	defer teardown()
	requireLibrary(t)
	//
	pat, err := fontconfig.ParsePattern("Fira Sans-11:bold")
	require.NoError(t, err)
	defer pat.Destroy()
	assert.Equal(t, "Fira Sans\n", Output(pat.Ref(), false, false, "", `%{family}\n`))
	assert.Equal(t, "11", Output(pat.Ref(), false, false, "%{size}", `%{family}\n`))
	assert.Equal(t, "", Output(pat.Ref(), false, false, "%{family", ""), "broken template yields nothing")
}

func TestFilterPattern(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, TraceKey)
	defer teardown()
	requireLibrary(t)
	//
	pat, err := fontconfig.ParsePattern("Fira Sans-11:bold")
	require.NoError(t, err)
	same := FilterPattern(pat, nil)
	assert.Same(t, pat, same)
	//
	filtered := FilterPattern(pat, []string{fontconfig.FAMILY})
	defer filtered.Destroy()
	assert.True(t, pat.IsNil(), "original pattern must be released")
	_, err = filtered.GetDouble(fontconfig.SIZE)
	assert.ErrorIs(t, err, fontconfig.ErrNoMatch)
	fam, err := filtered.Family()
	require.NoError(t, err)
	assert.Equal(t, "Fira Sans", fam)
}
