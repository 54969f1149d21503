package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	p := NewPage([]int{1, 2}, 0, 2, 5)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.First)
	assert.False(t, p.Last)

	last := NewPage([]int{5}, 2, 2, 5)
	assert.False(t, last.First)
	assert.True(t, last.Last)

	empty := NewPage[int](nil, 0, 10, 0)
	assert.Equal(t, 0, empty.TotalPages)
	assert.NotNil(t, empty.Content)
	assert.True(t, empty.Last)
}

func TestMapPage(t *testing.T) {
	p := NewPage([]int{1, 2}, 1, 2, 4)

	out := MapPage(p, func(v *int) string {
		return string(rune('a' + *v))
	})

	assert.Equal(t, []string{"b", "c"}, out.Content)
	assert.Equal(t, p.TotalElements, out.TotalElements)
	assert.True(t, out.Last)
}
