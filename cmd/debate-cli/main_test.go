package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-guidde/inner-officials-sub001/internal/battle"
	"github.com/ariel-guidde/inner-officials-sub001/internal/catalog"
)

func TestPlayTargetsBareCommandYieldsNil(t *testing.T) {
	assert.Nil(t, playTargets([]string{"play", "echoed-argument"}))
	assert.Equal(t, []string{"a", "b"}, playTargets([]string{"play", "echoed-argument", "a", "b"}))
}

// A bare "play" on a targeted card must open interactive selection, not
// resolve with an empty selection.
func TestBarePlayOpensTargetSelection(t *testing.T) {
	cat, err := catalog.Builtin()
	require.NoError(t, err)

	b, err := battle.Start(battle.Config{
		StartingFace:     60,
		StartingPatience: 20,
		DeckCardIDs:      []string{"echoed-argument", "measured-appeal", "budding-precedent", "grounded-stance", "calm-rebuttal"},
		OpponentIndices:  []int{0},
		Seed:             7,
	}, cat, nil)
	require.NoError(t, err)

	fields := []string{"play", "echoed-argument"}
	res := b.PlayCard(fields[1], playTargets(fields))
	require.True(t, res.OK, res.Reason)
	require.NotNil(t, res.Snapshot.Pending, "required-target card must enter target selection")

	require.True(t, b.CancelTargeting().OK)
}
