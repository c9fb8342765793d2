package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_Defaults(t *testing.T) {
	q := QueryParameters{}
	q.Normalize(10, 100)

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.PageSize)
}

func TestNormalize_ClampsToMax(t *testing.T) {
	q := QueryParameters{Page: 3, PageSize: 5000}
	q.Normalize(10, 100)

	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 100, q.PageSize)
}

func TestNewPagedResult_Metadata(t *testing.T) {
	r := NewPagedResult([]string{"a", "b", "c"}, 23, 2, 10)

	assert.Equal(t, 23, r.TotalCount)
	assert.Equal(t, 3, r.TotalPages)
	assert.True(t, r.HasNextPage)
	assert.True(t, r.HasPreviousPage)
}

func TestNewPagedResult_SinglePage(t *testing.T) {
	r := NewPagedResult([]string{"a"}, 1, 1, 10)

	assert.Equal(t, 1, r.TotalPages)
	assert.False(t, r.HasNextPage)
	assert.False(t, r.HasPreviousPage)
}

// The total count describes the filtered set, so an empty page past the
// end still reports the real totals.
func TestNewPagedResult_PagePastEnd(t *testing.T) {
	r := NewPagedResult([]string{}, 23, 5, 10)

	assert.Equal(t, 23, r.TotalCount)
	assert.Equal(t, 3, r.TotalPages)
	assert.False(t, r.HasNextPage)
	assert.True(t, r.HasPreviousPage)
}

func TestNewPagedResult_Empty(t *testing.T) {
	r := NewPagedResult([]string{}, 0, 1, 10)

	assert.Equal(t, 0, r.TotalCount)
	assert.Equal(t, 0, r.TotalPages)
	assert.False(t, r.HasNextPage)
	assert.False(t, r.HasPreviousPage)
}
