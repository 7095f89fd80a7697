package fontconfig

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/fontconfig/sys"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestResultTranslation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontconfig")
	defer teardown()
	//
	assert.NoError(t, resultError(sys.ResultMatch, FAMILY, 0))
	cases := []struct {
		r    sys.Result
		err  error
		code int
	}{
		{sys.ResultNoMatch, ErrNoMatch, ENOMATCH},
		{sys.ResultTypeMismatch, ErrTypeMismatch, ETYPEMISMATCH},
		{sys.ResultNoId, ErrNoID, ENOID},
		{sys.ResultOutOfMemory, ErrOutOfMemory, EOUTOFMEMORY},
	}
	for _, c := range cases {
		err := resultError(c.r, FAMILY, 2)
		assert.True(t, errors.Is(err, c.err), "expected %v to be %v", err, c.err)
		assert.Equal(t, c.code, Code(err))
		assert.Contains(t, UserMessage(err), "family")
	}
	assert.False(t, errors.Is(resultError(sys.ResultNoMatch, FAMILY, 0), ErrTypeMismatch))
	assert.Equal(t, EINTERNAL, Code(resultError(sys.Result(99), FAMILY, 0)))
}

func TestErrorCodes(t *testing.T) {
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("plain")))
	err := fmt.Errorf("context: %w", Error(EPARSE, "cannot parse %q", "x:y"))
	assert.Equal(t, EPARSE, Code(err))
	assert.True(t, errors.Is(err, ErrParse))
	assert.Equal(t, `cannot parse "x:y"`, UserMessage(err))
	assert.Equal(t, "not found-ish", UserMessage(WrapError(nil, ENOMATCH, "not found-ish")))
}

func TestMustPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontconfig")
	defer teardown()
	//
	assert.NotPanics(t, func() { must(sys.True, "anything") })
	assert.PanicsWithValue(t, "fontconfig: adding family failed", func() {
		must(sys.False, "adding %s", FAMILY)
	})
	assert.Panics(t, func() { mustHandle(true, "pattern") })
}

func TestErrorTextCarriesContext(t *testing.T) {
	err := resultError(sys.ResultNoMatch, STYLE, 0)
	assert.Equal(t, `[1] pattern has no attribute "style"`, err.Error())
	err = Error(EPARSE, "cannot parse font name %q", "x::")
	assert.Equal(t, `[120] cannot parse font name "x::"`, err.Error())
	assert.True(t, errors.Is(err, ErrParse))
	//
	cause := errors.New("dlopen failed")
	err = WrapError(cause, ELIBRARY, "cannot load fontconfig")
	assert.Equal(t, "[122] cannot load fontconfig: dlopen failed", err.Error())
	assert.True(t, errors.Is(err, cause))
	assert.True(t, errors.Is(err, ErrLibrary))
	assert.Equal(t, "cannot load fontconfig", UserMessage(err))
}
