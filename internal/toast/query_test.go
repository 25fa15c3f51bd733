package toast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryFixture() []Toast {
	base := time.Now()
	return []Toast{
		{ID: "01A", Message: "Formula saved", Kind: KindSuccess, CreatedAt: base},
		{ID: "01B", Message: "Network error", Kind: KindError, CreatedAt: base.Add(time.Second)},
		{ID: "01C", Message: "Profile updated", Kind: KindSuccess, CreatedAt: base.Add(2 * time.Second)},
	}
}

func TestFilterByKind(t *testing.T) {
	toasts := queryFixture()

	result := FilterByKind(toasts, KindSuccess)
	require.Len(t, result, 2)
	assert.Equal(t, "01A", result[0].ID)
	assert.Equal(t, "01C", result[1].ID)

	assert.Empty(t, FilterByKind(toasts, KindWarning))

	// Invalid kind means no filter
	assert.Len(t, FilterByKind(toasts, Kind("")), 3)
}

func TestSearch(t *testing.T) {
	toasts := queryFixture()

	result := Search(toasts, "ERROR")
	require.Len(t, result, 1)
	assert.Equal(t, "01B", result[0].ID)

	assert.Len(t, Search(toasts, ""), 3)
	assert.Empty(t, Search(toasts, "nomatch"))
}

func TestLookupByID(t *testing.T) {
	toasts := queryFixture()

	found := LookupByID(toasts, "01B")
	require.NotNil(t, found)
	assert.Equal(t, "Network error", found.Message)

	assert.Nil(t, LookupByID(toasts, "missing"))
	assert.Nil(t, LookupByID(nil, "01B"))
}

func TestSortNewestFirst(t *testing.T) {
	toasts := queryFixture()

	SortNewestFirst(toasts)
	assert.Equal(t, "01C", toasts[0].ID)
	assert.Equal(t, "01B", toasts[1].ID)
	assert.Equal(t, "01A", toasts[2].ID)
}
