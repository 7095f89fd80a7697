package sys

import (
	"testing"
	"unsafe"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestGoString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontconfig.sys")
	defer teardown()
	//
	assert.Equal(t, "", GoString(nil))
	b := []byte("DejaVu Sans\x00garbage")
	assert.Equal(t, "DejaVu Sans", GoString(&b[0]))
	empty := []byte{0}
	assert.Equal(t, "", GoString(&empty[0]))
}

func TestFontSetLayout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontconfig.sys")
	defer teardown()
	//
	var fs *FontSet
	assert.Equal(t, 0, fs.Len())
	backing := [3]uint64{}
	pats := []*Pattern{
		(*Pattern)(unsafe.Pointer(&backing[0])),
		(*Pattern)(unsafe.Pointer(&backing[1])),
		(*Pattern)(unsafe.Pointer(&backing[2])),
	}
	fs = &FontSet{NFont: 3, SFont: 3, Fonts: &pats[0]}
	assert.Equal(t, 3, fs.Len())
	for i := range pats {
		assert.Equal(t, pats[i], fs.At(i))
	}
	assert.Equal(t, uintptr(32), unsafe.Sizeof(Matrix{}))
}

func TestBoolOf(t *testing.T) {
	assert.Equal(t, True, BoolOf(true))
	assert.Equal(t, False, BoolOf(false))
	assert.Equal(t, LangDifferentCountry, LangDifferentTerritory)
}

func TestLibraryName(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontconfig.sys")
	defer teardown()
	//
	name := LibraryName()
	assert.NotEmpty(t, name)
	SetLibraryName("")
	assert.Equal(t, name, LibraryName(), "empty name must not override library name")
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontconfig.sys")
	defer teardown()
	//
	lib, err := Load()
	if err != nil {
		t.Skipf("fontconfig not usable (%s): %v", Linkage, err)
	}
	again, _ := Load()
	assert.Same(t, lib, again)
	assert.NotNil(t, lib.Init)
	assert.NotNil(t, lib.PatternCreate)
	assert.Greater(t, lib.GetVersion(), int32(20000))
}

func TestFloatArguments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontconfig.sys")
	defer teardown()
	//
	lib, err := Load()
	if err != nil {
		t.Skipf("fontconfig not usable (%s): %v", Linkage, err)
	}
	m := Matrix{XX: 1, YY: 1}
	lib.MatrixScale(&m, 2, 3)
	assert.Equal(t, Matrix{XX: 2, YY: 3}, m)
	lib.MatrixShear(&m, 0, 0)
	assert.Equal(t, Matrix{XX: 2, YY: 3}, m)
	lib.MatrixRotate(&m, 1, 0) // cos 0, sin 0
	assert.Equal(t, Matrix{XX: 2, YY: 3}, m)
	//
	p := lib.PatternCreate()
	if !assert.NotNil(t, p) {
		return
	}
	defer lib.PatternDestroy(p)
	assert.Equal(t, True, lib.PatternAddDouble(p, "size", 12.5))
	var d float64
	assert.Equal(t, ResultMatch, lib.PatternGetDouble(p, "size", 0, &d))
	assert.Equal(t, 12.5, d)
}
