package battle

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ariel-guidde/inner-officials-sub001/internal/catalog"
	"github.com/ariel-guidde/inner-officials-sub001/internal/wuxing"
)

// Test card set with one plain card per element plus the special cases the
// scenarios need. Costs are small so playability rarely interferes.
func testCards() []*catalog.Card {
	return []*catalog.Card{
		{
			ID: "wood-plea", Name: "Wood Plea", Element: wuxing.Wood,
			PatienceCost: 3,
			Script:       []catalog.Fragment{catalog.Text("Gain "), catalog.Num(4, catalog.OpFavor), catalog.Text(" favor.")},
		},
		{
			ID: "fire-barb", Name: "Fire Barb", Element: wuxing.Fire,
			PatienceCost: 2,
			Script:       []catalog.Fragment{catalog.Text("Deal "), catalog.Num(5, catalog.OpDamage), catalog.Text(" damage.")},
		},
		{
			ID: "earth-wall", Name: "Earth Wall", Element: wuxing.Earth,
			PatienceCost: 2,
			Script:       []catalog.Fragment{catalog.Text("Gain "), catalog.Num(3, catalog.OpPoise), catalog.Text(" poise.")},
		},
		{
			ID: "metal-cut", Name: "Metal Cut", Element: wuxing.Metal,
			PatienceCost: 2,
			Script:       []catalog.Fragment{catalog.Text("Strip "), catalog.Num(4, catalog.OpFavorCut), catalog.Text(" favor.")},
		},
		{
			ID: "water-flow", Name: "Water Flow", Element: wuxing.Water,
			PatienceCost: 2,
			Script: []catalog.Fragment{
				catalog.Text("Gain "), catalog.Num(3, catalog.OpFavor),
				catalog.Text(" favor and draw "), catalog.Fixed(1, catalog.OpDraw), catalog.Text(" card."),
			},
		},
		{
			ID: "echo-wood", Name: "Echo Wood", Element: wuxing.Wood,
			PatienceCost: 1,
			Target: &catalog.TargetSpec{
				Prompt:    "Pick a wood argument to echo.",
				Required:  true,
				Filter:    catalog.TargetSameElement,
				PerTarget: true,
			},
			Script: []catalog.Fragment{catalog.Text("Gain "), catalog.Num(2, catalog.OpFavor), catalog.Text(" favor per echo.")},
		},
		{
			ID: "optional-purge", Name: "Optional Purge", Element: wuxing.Metal,
			PatienceCost: 1,
			Target: &catalog.TargetSpec{
				Prompt:          "You may set aside other-element arguments.",
				Required:        false,
				Filter:          catalog.TargetDifferentElement,
				PerTarget:       true,
				DiscardSelected: true,
			},
			Script: []catalog.Fragment{catalog.Text("Gain "), catalog.Num(1, catalog.OpFavor), catalog.Text(" favor each.")},
		},
		{
			ID: "bad-rumor", Name: "Bad Rumor", Element: wuxing.Water,
			PatienceCost: 1, Bad: true,
			Script: []catalog.Fragment{catalog.Text("Strip "), catalog.Num(6, catalog.OpFavorCut), catalog.Text(" favor.")},
		},
		{
			ID: "one-shot", Name: "One Shot", Element: wuxing.Fire,
			PatienceCost: 1, RemoveAfterPlay: true,
			Script: []catalog.Fragment{catalog.Text("Deal "), catalog.Num(8, catalog.OpDamage), catalog.Text(" damage.")},
		},
		{
			ID: "breaker", Name: "Breaker", Element: wuxing.Fire,
			PatienceCost: 1, InstantWinOnBreak: true,
			Script: []catalog.Fragment{catalog.Text("Deal "), catalog.Num(100, catalog.OpDamage), catalog.Text(" damage.")},
		},
	}
}

func testOpponents() []*catalog.Opponent {
	return []*catalog.Opponent{
		{
			Name: "Rival", Element: wuxing.Metal,
			StartingFace: 40, StartingFavor: 10,
			AttackDamage: 6, FavorCutSelf: 3, FavorCutOther: 5, StallAmount: 2,
			Weights: catalog.IntentWeights{Attack: 1}, // always attacks
		},
		{
			Name: "Staller", Element: wuxing.Water,
			StartingFace: 40, StartingFavor: 10,
			AttackDamage: 6, FavorCutSelf: 3, FavorCutOther: 5, StallAmount: 3,
			Weights: catalog.IntentWeights{Stall: 1}, // always stalls
		},
		{
			Name: "Cutter", Element: wuxing.Wood,
			StartingFace: 40, StartingFavor: 10,
			AttackDamage: 6, FavorCutSelf: 3, FavorCutOther: 5, StallAmount: 2,
			Weights: catalog.IntentWeights{FavorCut: 1}, // always cuts favor
		},
	}
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(testCards(), testOpponents())
	require.NoError(t, err)
	return cat
}

// startTestBattle starts a battle with a fixed seed and the given deck.
// Overrides run against the config before Start.
func startTestBattle(t *testing.T, deck []string, overrides ...func(*Config)) *Battle {
	t.Helper()
	cfg := Config{
		PlayerName:       "Scholar",
		StartingFace:     60,
		StartingPatience: 20,
		StartingFavor:    0,
		DeckCardIDs:      deck,
		OpponentIndices:  []int{0},
		Seed:             7,
	}
	for _, override := range overrides {
		override(&cfg)
	}
	b, err := Start(cfg, testCatalog(t), nil)
	require.NoError(t, err)
	return b
}

// forceHand replaces the battle's hand with fresh instances of the given
// card IDs so scenarios do not depend on shuffle order. Prior hand cards
// go back on top of the deck.
func forceHand(t *testing.T, b *Battle, cardIDs ...string) {
	t.Helper()
	cat := testCatalog(t)
	b.piles.deck = append(b.piles.hand, b.piles.deck...)
	b.piles.hand = nil
	for i, id := range cardIDs {
		card, err := cat.Card(id)
		require.NoError(t, err)
		b.piles.hand = append(b.piles.hand, &Instance{ID: fmt.Sprintf("forced-%d-%s", i, id), Card: card})
	}
}
