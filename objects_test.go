package fontconfig

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectNames(t *testing.T) {
	names := ObjectNames()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, FAMILY)
	assert.Contains(t, names, PIXEL_SIZE)
	assert.Len(t, names, len(objectTypes))
}

func TestCompleteObject(t *testing.T) {
	assert.Equal(t, []string{"family", "familylang"}, CompleteObject("fam"))
	assert.Equal(t, []string{"fontfeatures", "fontformat", "fonthashint",
		"fontvariations", "fontversion"}, CompleteObject("Font"))
	assert.Empty(t, CompleteObject("xyz"))
	assert.Equal(t, ObjectNames(), CompleteObject(""))
}

func TestObjectTypes(t *testing.T) {
	assert.True(t, IsKnownObject("Family"))
	assert.False(t, IsKnownObject("fam"))
	vt, ok := ObjectType(CHARSET)
	assert.True(t, ok)
	assert.Equal(t, TypeCharSet, vt)
	assert.Equal(t, "charset", vt.String())
	_, ok = ObjectType("nonsense")
	assert.False(t, ok)
}
