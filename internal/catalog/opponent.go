package catalog

import "github.com/ariel-guidde/inner-officials-sub001/internal/wuxing"

// IntentWeights bias the opponent's weighted intent pick. Zero-valued
// weights fall back to an even spread.
type IntentWeights struct {
	Attack   int `yaml:"attack"`
	FavorCut int `yaml:"favor_cut"`
	Stall    int `yaml:"stall"`
}

// Opponent is an immutable opponent definition: stats, leanings and the
// magnitudes of its three intent kinds.
type Opponent struct {
	Name          string         `yaml:"name"`
	Element       wuxing.Element `yaml:"-"`
	StartingFace  int            `yaml:"starting_face"`
	StartingFavor int            `yaml:"starting_favor"`
	AttackDamage  int            `yaml:"attack_damage"`
	FavorCutSelf  int            `yaml:"favor_cut_self"`  // favor the opponent grants itself
	FavorCutOther int            `yaml:"favor_cut_other"` // favor stripped from the player
	StallAmount   int            `yaml:"stall_amount"`    // patience burned beyond the turn tick
	Weights       IntentWeights  `yaml:"weights"`
}
