package collection

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncMap(t *testing.T) {
	m := NewSyncMap[string, int]()
	m.Put("a", 1)
	m.Put("b", 2)
	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	assert.Equal(t, 3, m.Compute("a", func(v int, ok bool) int { return v + 2 }))
	assert.Equal(t, 5, m.Compute("c", func(v int, ok bool) int {
		assert.False(t, ok)
		return 5
	}))

	values := m.Values()
	sort.Ints(values)
	assert.Equal(t, []int{2, 3, 5}, values)

	m.Range(func(key string, value int) bool {
		m.Delete(key)
		return true
	})
	assert.Equal(t, 0, m.Len())
}
