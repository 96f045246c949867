package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_SetExit(t *testing.T) {
	g := NewGraph()
	_, err := g.AddLocation("1", "Room # 1")
	require.NoError(t, err)
	_, err = g.AddLocation("2", "Room # 2")
	require.NoError(t, err)

	t.Run("links are one-way", func(t *testing.T) {
		require.NoError(t, g.SetExit("1", "east", "2"))
		one, _ := g.Location("1")
		two, _ := g.Location("2")
		assert.Equal(t, two, g.GetExit(one, "east"))
		assert.Nil(t, g.GetExit(two, "west"))
	})

	t.Run("unknown locations are rejected", func(t *testing.T) {
		assert.ErrorIs(t, g.SetExit("1", "north", "99"), ErrUnknownLocation)
		assert.ErrorIs(t, g.SetExit("99", "north", "1"), ErrUnknownLocation)
	})

	t.Run("duplicate ids are rejected", func(t *testing.T) {
		_, err := g.AddLocation("1", "again")
		assert.ErrorIs(t, err, ErrDuplicateLocation)
	})

	t.Run("self loops are legal", func(t *testing.T) {
		require.NoError(t, g.SetExit("2", "up", "2"))
		two, _ := g.Location("2")
		assert.Equal(t, two, two.Exit("up"))
	})

	t.Run("directions keep configuration order", func(t *testing.T) {
		require.NoError(t, g.SetExit("1", "south", "2"))
		require.NoError(t, g.SetExit("1", "east", "1"))
		one, _ := g.Location("1")
		assert.Equal(t, []string{"east", "south"}, one.Directions())
		assert.Equal(t, "Exits: east south", one.ExitString())
		assert.Equal(t, one, one.Exit("east"))
	})
}

func TestGraph_SealedIsImmutable(t *testing.T) {
	w := newTestWorld(t)
	g := w.Graph()
	hall := loc(t, w, "a")
	before := hall.Directions()

	assert.ErrorIs(t, g.SetExit("a", "up", "c"), ErrGraphSealed)
	_, err := g.AddLocation("z", "new")
	assert.ErrorIs(t, err, ErrGraphSealed)

	// Playing never touches the topology.
	w.Move("east")
	w.Back()
	w.Move("south")
	assert.Equal(t, before, hall.Directions())
	assert.Equal(t, 5, g.Len())
}

func TestLocation_DeadEnd(t *testing.T) {
	g := NewGraph()
	l, err := g.AddLocation("pit", "pit")
	require.NoError(t, err)
	assert.Empty(t, l.Directions())
	assert.Nil(t, l.Exit("north"))
	assert.Equal(t, []string{"You are in the pit.", "Exits:"}, l.LongDescription())
}
