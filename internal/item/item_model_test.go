package item

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseItemType(t *testing.T) {
	for _, s := range []string{"pokeball", "potion", "antidote", "berry", "revive", "stone", "tm"} {
		it, err := ParseItemType(s)
		require.NoError(t, err)
		assert.Equal(t, ItemType(s), it)
	}

	for _, s := range []string{"", "Potion", "masterball"} {
		_, err := ParseItemType(s)
		assert.Error(t, err)
	}
}
