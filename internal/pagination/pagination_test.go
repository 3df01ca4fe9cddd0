package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhishek622/hirewizard/internal/pagination"
)

func TestPage_Offsets(t *testing.T) {
	p := pagination.Page{Limit: 10, Offset: 10, Total: 25}
	require.NotNil(t, p.NextOffset())
	assert.Equal(t, 20, *p.NextOffset())
	require.NotNil(t, p.PreviousOffset())
	assert.Equal(t, 0, *p.PreviousOffset())

	p.Offset = 20
	assert.Nil(t, p.NextOffset())
	require.NotNil(t, p.PreviousOffset())
	assert.Equal(t, 10, *p.PreviousOffset())

	p.Offset = 0
	assert.Nil(t, p.PreviousOffset())
}

func TestPage_PreviousOffsetIsNotClamped(t *testing.T) {
	p := pagination.Page{Limit: 10, Offset: 5, Total: 25}
	require.NotNil(t, p.PreviousOffset())
	assert.Equal(t, -5, *p.PreviousOffset())
}

func TestPage_Numbers(t *testing.T) {
	cases := []struct {
		page    pagination.Page
		current int
		total   int
	}{
		{pagination.Page{Limit: 10, Offset: 0, Total: 25}, 1, 3},
		{pagination.Page{Limit: 10, Offset: 10, Total: 25}, 2, 3},
		{pagination.Page{Limit: 10, Offset: 20, Total: 25}, 3, 3},
		{pagination.Page{Limit: 10, Offset: 0, Total: 0}, 1, 0},
		{pagination.Page{Limit: 5, Offset: 7, Total: 30}, 2, 6},
		{pagination.Page{Limit: 0, Offset: 0, Total: 30}, 1, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.current, c.page.CurrentPage(), "%+v", c.page)
		assert.Equal(t, c.total, c.page.TotalPages(), "%+v", c.page)
	}
}

func TestParseLimitOffset(t *testing.T) {
	l, o := pagination.ParseLimitOffset("", "", 10)
	assert.Equal(t, 10, l)
	assert.Equal(t, 0, o)

	l, o = pagination.ParseLimitOffset(" 25 ", "50", 10)
	assert.Equal(t, 25, l)
	assert.Equal(t, 50, o)

	l, o = pagination.ParseLimitOffset("500", "-3", 10)
	assert.Equal(t, 10, l)
	assert.Equal(t, 0, o)

	l, _ = pagination.ParseLimitOffset("abc", "", 20)
	assert.Equal(t, 20, l)
}

func TestNewList(t *testing.T) {
	l := pagination.NewList[string](nil, pagination.Page{Limit: 10, Offset: 0, Total: 0})
	assert.NotNil(t, l.Data)
	assert.Nil(t, l.Page.NextOffset)
	assert.Equal(t, pagination.Page{Limit: 10}, l.Page.Page())
}
