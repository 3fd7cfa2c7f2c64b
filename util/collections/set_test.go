package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetAddRemoveContains(t *testing.T) {
	set := make(Set[int])

	set.Add(1)
	set.Add(2)
	set.Add(2)
	assert.True(t, set.Contains(1))
	assert.True(t, set.Contains(2))
	assert.Len(t, set, 2)

	set.Remove(1)
	assert.False(t, set.Contains(1))

	// Removing an absent element is a no-op.
	set.Remove(99)
	assert.Len(t, set, 1)
}

func TestSetDifference(t *testing.T) {
	all := Set[string]{"a": {}, "b": {}, "c": {}}
	seen := Set[string]{"b": {}}

	difference := all.Difference(seen)
	assert.ElementsMatch(t, []string{"a", "c"}, difference.Values())
}
