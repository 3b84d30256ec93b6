package slice

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, Map([]string{" a", "b "}, strings.TrimSpace))
	assert.Equal(t, []int{}, Map[string, int](nil, func(string) int { return 0 }))
}

func TestFilter_NeverNil(t *testing.T) {
	result := Filter([]string{"", " "}, func(s string) bool { return strings.TrimSpace(s) != "" })
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestUniqueBy_KeepsFirst(t *testing.T) {
	result := UniqueBy([]string{"Paper", "plastic", "paper", "Foil"}, strings.ToLower)
	assert.Equal(t, []string{"Paper", "plastic", "Foil"}, result)
}
