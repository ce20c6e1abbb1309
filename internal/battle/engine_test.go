package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-guidde/inner-officials-sub001/internal/wuxing"
)

func standardDeck() []string {
	return []string{
		"wood-plea", "fire-barb", "earth-wall", "metal-cut", "water-flow",
		"wood-plea", "fire-barb", "earth-wall", "metal-cut", "water-flow",
	}
}

func TestStartValidatesConfig(t *testing.T) {
	cat := testCatalog(t)
	base := Config{
		StartingFace:     60,
		StartingPatience: 20,
		DeckCardIDs:      standardDeck(),
		OpponentIndices:  []int{0},
		Seed:             1,
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero face", func(c *Config) { c.StartingFace = 0 }},
		{"zero patience", func(c *Config) { c.StartingPatience = 0 }},
		{"empty deck", func(c *Config) { c.DeckCardIDs = nil }},
		{"no opponent", func(c *Config) { c.OpponentIndices = nil }},
		{"unknown card", func(c *Config) { c.DeckCardIDs = []string{"phantom"} }},
		{"unknown opponent", func(c *Config) { c.OpponentIndices = []int{42} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			cfg.DeckCardIDs = append([]string(nil), base.DeckCardIDs...)
			tt.mutate(&cfg)
			_, err := Start(cfg, cat, nil)
			require.Error(t, err)
		})
	}

	// The base config itself must start.
	b, err := Start(base, cat, nil)
	require.NoError(t, err)
	assert.Equal(t, PhaseAwaitingPlayerAction, b.phase)
	assert.Len(t, b.piles.hand, 5)
}

func TestStartPicksOpponentFromIndices(t *testing.T) {
	cat := testCatalog(t)
	cfg := Config{
		StartingFace:     60,
		StartingPatience: 20,
		DeckCardIDs:      standardDeck(),
		OpponentIndices:  []int{0, 1, 2},
		Seed:             11,
	}
	b, err := Start(cfg, cat, nil)
	require.NoError(t, err)
	names := map[string]bool{"Rival": true, "Staller": true, "Cutter": true}
	assert.True(t, names[b.opponent.Name])

	// Same seed, same pick.
	b2, err := Start(cfg, cat, nil)
	require.NoError(t, err)
	assert.Equal(t, b.opponent.Name, b2.opponent.Name)
}

func TestTerminalOperationsAreNoOps(t *testing.T) {
	b := startTestBattle(t, standardDeck())
	b.finish(OutcomeFavorWin)
	before := b.Snapshot()

	for name, op := range map[string]func() Result{
		"play":    func() Result { return b.PlayCard("wood-plea", nil) },
		"end":     func() Result { return b.EndTurn() },
		"confirm": func() Result { return b.ConfirmTargets() },
		"cancel":  func() Result { return b.CancelTargeting() },
		"select":  func() Result { return b.SelectTarget("x") },
	} {
		res := op()
		assert.False(t, res.OK, name)
		assert.Equal(t, "the battle is over", res.Reason, name)
		assert.Equal(t, before, b.Snapshot(), "%s must leave a terminal state untouched", name)
	}
}

func TestTargetingSuspendsOtherActions(t *testing.T) {
	b := startTestBattle(t, standardDeck())
	forceHand(t, b, "echo-wood", "wood-plea", "fire-barb")

	res := b.PlayCard("echo-wood", nil)
	require.True(t, res.OK, res.Reason)
	require.Equal(t, PhaseAwaitingTargets, b.phase)
	require.NotNil(t, res.Snapshot.Pending)
	assert.Equal(t, "Echo Wood", res.Snapshot.Pending.CardName)

	res = b.PlayCard("fire-barb", nil)
	assert.False(t, res.OK)
	assert.Equal(t, "a target selection is pending", res.Reason)

	res = b.EndTurn()
	assert.False(t, res.OK)
	assert.Equal(t, "a target selection is pending", res.Reason)
}

func TestTargetingConfirmResolvesPlay(t *testing.T) {
	b := startTestBattle(t, standardDeck())
	forceHand(t, b, "echo-wood", "wood-plea", "fire-barb")

	require.True(t, b.PlayCard("echo-wood", nil).OK)

	// Required spec with nothing selected: confirm refused.
	res := b.ConfirmTargets()
	require.False(t, res.OK)

	res = b.SelectTarget("wood-plea")
	require.True(t, res.OK, res.Reason)

	favorBefore := b.player.Favor
	res = b.ConfirmTargets()
	require.True(t, res.OK, res.Reason)
	assert.Equal(t, PhaseAwaitingPlayerAction, b.phase)
	assert.Equal(t, favorBefore+2, b.player.Favor)
	assert.Equal(t, wuxing.Wood.String(), b.Snapshot().LastElement)
}

func TestTargetingCancelReturnsCardUnconsumed(t *testing.T) {
	b := startTestBattle(t, standardDeck())
	forceHand(t, b, "echo-wood", "wood-plea")
	patienceBefore := b.patience

	require.True(t, b.PlayCard("echo-wood", nil).OK)
	assert.Len(t, b.piles.hand, 1, "staged card leaves the hand")

	res := b.CancelTargeting()
	require.True(t, res.OK)
	assert.Equal(t, PhaseAwaitingPlayerAction, b.phase)
	assert.Len(t, b.piles.hand, 2)
	assert.NotNil(t, b.piles.findInHand("echo-wood"))
	assert.Equal(t, patienceBefore, b.patience, "no cost paid on cancel")
}

func TestSelectTargetToggles(t *testing.T) {
	b := startTestBattle(t, standardDeck())
	forceHand(t, b, "optional-purge", "fire-barb", "wood-plea")

	require.True(t, b.PlayCard("optional-purge", nil).OK)
	require.True(t, b.SelectTarget("fire-barb").OK)
	assert.Len(t, b.pending.selected, 1)

	require.True(t, b.SelectTarget("fire-barb").OK)
	assert.Empty(t, b.pending.selected, "second select deselects")

	res := b.SelectTarget("optional-purge")
	assert.False(t, res.OK, "the staged card is not a target")
}

func TestPlayCardWithInlineTargets(t *testing.T) {
	b := startTestBattle(t, standardDeck())
	forceHand(t, b, "optional-purge", "fire-barb", "wood-plea")
	favorBefore := b.player.Favor

	res := b.PlayCard("optional-purge", []string{"fire-barb", "wood-plea"})
	require.True(t, res.OK, res.Reason)

	// 1 favor per discarded target.
	assert.Equal(t, favorBefore+2, b.player.Favor)
	assert.Empty(t, b.piles.hand, "both targets discarded, purge itself to discard")
	assert.Len(t, b.piles.discard, 3)
}

func TestDiscardPhaseDropsWholeHand(t *testing.T) {
	b := startTestBattle(t, standardDeck(), func(cfg *Config) { cfg.StartingPatience = 50 })
	handBefore := len(b.piles.hand)
	require.Equal(t, 5, handBefore)

	res := b.EndTurn()
	require.True(t, res.OK)

	assert.Equal(t, 2, b.turn)
	assert.Len(t, b.piles.hand, 5, "fresh hand drawn")
	assert.Equal(t, 5, len(b.piles.discard), "previous hand discarded whole")
}

func TestExtraDrawFromCoreArgument(t *testing.T) {
	b := startTestBattle(t, standardDeck(), func(cfg *Config) {
		cfg.CoreArgument = &CoreArgument{ExtraDraw: 1}
	})
	assert.Len(t, b.piles.hand, 6)
}

func TestCoreArgumentStartingPoiseAndFavorBonus(t *testing.T) {
	b := startTestBattle(t, standardDeck(), func(cfg *Config) {
		cfg.CoreArgument = &CoreArgument{StartingPoise: 5, FavorBonus: 2, FavorMultiplier: 2}
	})
	assert.Equal(t, 5, b.player.Poise)

	forceHand(t, b, "wood-plea")
	require.True(t, b.PlayCard("wood-plea", nil).OK)
	// Base 4, doubled to 8, plus flat 2.
	assert.Equal(t, 10, b.player.Favor)
}

func TestCoreArgumentTriggerOnTurnStart(t *testing.T) {
	b := startTestBattle(t, standardDeck(), func(cfg *Config) {
		cfg.StartingPatience = 50
		cfg.CoreArgument = &CoreArgument{
			Trigger: &TriggeredEffect{Event: TriggerOnTurnStart, Op: "poise", Amount: 2},
		}
	})

	poiseBefore := b.player.Poise
	res := b.EndTurn()
	require.True(t, res.OK)
	// The telegraphed attack consumed nothing (no poise yet), then the
	// turn-start trigger granted 2.
	assert.Equal(t, poiseBefore+2-0, b.player.Poise)
}

func TestBadCardNeverReappears(t *testing.T) {
	deck := []string{"bad-rumor", "wood-plea", "fire-barb", "earth-wall", "metal-cut", "water-flow"}
	b := startTestBattle(t, deck, func(cfg *Config) {
		cfg.StartingPatience = 200
		cfg.StartingFace = 1000
	})

	// Find and play the bad card, drawing until it shows up.
	for b.piles.findInHand("bad-rumor") == nil {
		require.True(t, b.EndTurn().OK)
		require.NotEqual(t, PhaseTerminal, b.phase)
	}
	require.True(t, b.PlayCard("bad-rumor", nil).OK)
	assert.Equal(t, []string{"bad-rumor"}, b.BannedCardIDs())

	// Cycle through many reshuffles: the bad card must never be seen in
	// deck, hand or discard again.
	for i := 0; i < 20 && b.phase != PhaseTerminal; i++ {
		require.True(t, b.EndTurn().OK)
		for _, zone := range [][]*Instance{b.piles.deck, b.piles.hand, b.piles.discard} {
			for _, inst := range zone {
				assert.NotEqual(t, "bad-rumor", inst.Card.ID)
			}
		}
	}
}

func TestRemoveAfterPlayGoesToRemovedPile(t *testing.T) {
	b := startTestBattle(t, standardDeck())
	forceHand(t, b, "one-shot")

	require.True(t, b.PlayCard("one-shot", nil).OK)
	require.Len(t, b.piles.removed, 1)
	assert.Equal(t, "one-shot", b.piles.removed[0].Card.ID)
	assert.Empty(t, b.piles.discard)
}

func TestStatsNeverNegativeOverRandomPlayout(t *testing.T) {
	b := startTestBattle(t, standardDeck(), func(cfg *Config) { cfg.Seed = 99 })

	check := func() {
		require.GreaterOrEqual(t, b.patience, 0)
		require.GreaterOrEqual(t, b.player.Face, 0)
		require.GreaterOrEqual(t, b.player.Poise, 0)
		require.GreaterOrEqual(t, b.opponent.Face, 0)
		require.GreaterOrEqual(t, b.player.Favor, 0)
		require.LessOrEqual(t, b.player.Favor, 100)
		require.GreaterOrEqual(t, b.opponent.Favor, 0)
	}

	for b.phase != PhaseTerminal {
		played := true
		for played {
			played = false
			for _, view := range b.Snapshot().Hand {
				if view.Playable {
					res := b.PlayCard(view.InstanceID, []string{})
					if res.OK {
						played = b.phase != PhaseTerminal
						check()
						break
					}
				}
			}
		}
		if b.phase == PhaseTerminal {
			break
		}
		b.EndTurn()
		check()
	}
	require.NotNil(t, b.Result())
}

func TestInstanceConservationAcrossTurns(t *testing.T) {
	b := startTestBattle(t, standardDeck(), func(cfg *Config) { cfg.StartingPatience = 30 })
	total := b.piles.total()

	for i := 0; i < 10 && b.phase != PhaseTerminal; i++ {
		require.True(t, b.EndTurn().OK)
		assert.Equal(t, total, b.piles.total(), "turn %d", i)
	}
}
