package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginateDefaults(t *testing.T) {
	page := Paginate(0, 0, 50)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 20, page.Size)
	assert.Equal(t, 0, page.Offset)
	assert.Equal(t, 3, page.TotalPages)

	page = Paginate(-3, -1, 50)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 20, page.Size)
}

func TestPaginateMiddlePage(t *testing.T) {
	page := Paginate(2, 10, 25)
	assert.Equal(t, 10, page.Offset)
	assert.Equal(t, 3, page.TotalPages)

	start, end := page.Slice(25)
	assert.Equal(t, 10, start)
	assert.Equal(t, 20, end)
}

func TestPaginatePastTheEnd(t *testing.T) {
	page := Paginate(9, 10, 25)
	start, end := page.Slice(25)
	assert.Equal(t, 25, start)
	assert.Equal(t, 25, end)
}

func TestPaginateEmptyCollection(t *testing.T) {
	page := Paginate(1, 20, 0)
	assert.Equal(t, 0, page.TotalPages)

	start, end := page.Slice(0)
	assert.Zero(t, start)
	assert.Zero(t, end)
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "0.0", FormatPercent(3, 0))
	assert.Equal(t, "50.0", FormatPercent(1, 2))
	assert.Equal(t, "33.3", FormatPercent(1, 3))
	assert.Equal(t, "100.0", FormatPercent(4, 4))
}

func TestGenerateResetToken(t *testing.T) {
	first, err := GenerateResetToken()
	require.NoError(t, err)
	assert.Len(t, first, 64)

	second, err := GenerateResetToken()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
