package battle

import (
	"fmt"

	"github.com/ariel-guidde/inner-officials-sub001/internal/wuxing"
)

// Phase tracks where the battle state machine is between operations.
type Phase int

const (
	PhaseAwaitingPlayerAction Phase = iota
	PhaseAwaitingTargets
	PhaseOpponentAction
	PhaseDiscard
	PhaseDraw
	PhaseTerminal
)

var phaseNames = map[Phase]string{
	PhaseAwaitingPlayerAction: "AWAITING_PLAYER_ACTION",
	PhaseAwaitingTargets:      "AWAITING_TARGETS",
	PhaseOpponentAction:       "OPPONENT_ACTION",
	PhaseDiscard:              "DISCARD",
	PhaseDraw:                 "DRAW",
	PhaseTerminal:             "TERMINAL",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PHASE_%d", int(p))
}

// Outcome names how a terminal battle ended.
type Outcome string

const (
	OutcomeNone          Outcome = ""
	OutcomeFavorWin      Outcome = "FAVOR_WIN"      // player favor reached 100
	OutcomeFavorLoss     Outcome = "FAVOR_LOSS"     // opponent favor reached 100
	OutcomeFaceLoss      Outcome = "FACE_LOSS"      // player face hit 0
	OutcomeInstantWin    Outcome = "INSTANT_WIN"    // named card broke the opponent outright
	OutcomeJudgementWin  Outcome = "JUDGEMENT_WIN"  // patience ran out with favor at or above the bar
	OutcomeJudgementLoss Outcome = "JUDGEMENT_LOSS" // patience ran out below the bar
)

// Won reports whether the outcome is a player victory.
func (o Outcome) Won() bool {
	switch o {
	case OutcomeFavorWin, OutcomeInstantWin, OutcomeJudgementWin:
		return true
	}
	return false
}

// Combatant holds one side's tracked stats. Setters clamp: face stays in
// [0, max], favor in [0, maxFavor], poise never drops below zero.
type Combatant struct {
	Name         string
	Face         int
	MaxFace      int
	Favor        int
	Poise        int
	ShockedTurns int

	maxFavorSeen int
}

func (c *Combatant) setFace(v int) {
	if v < 0 {
		v = 0
	}
	if v > c.MaxFace {
		v = c.MaxFace
	}
	c.Face = v
}

func (c *Combatant) setFavor(v, maxFavor int) {
	if v < 0 {
		v = 0
	}
	if v > maxFavor {
		v = maxFavor
	}
	c.Favor = v
	if v > c.maxFavorSeen {
		c.maxFavorSeen = v
	}
}

// absorb applies face damage through poise: poise soaks what it can and is
// consumed by the amount absorbed. Returns the damage that reached face.
func (c *Combatant) absorb(damage int) int {
	if damage <= 0 {
		return 0
	}
	absorbed := damage
	if absorbed > c.Poise {
		absorbed = c.Poise
	}
	c.Poise -= absorbed
	through := damage - absorbed
	c.setFace(c.Face - through)
	return through
}

// Rules carries the numeric policy of a battle. Zero values are replaced
// by DefaultRules at battle start so callers can override selectively.
type Rules struct {
	HandSize                 int
	BalancedPatienceDiscount int
	ChaosFaceSurcharge       int
	ChaosFavorBonus          int
	ShockTurns               int
	TurnPatienceTick         int
	MaxFavor                 int
	FavorJudgementBar        int
	TierBand                 int
}

// DefaultRules returns the stock balance numbers.
func DefaultRules() Rules {
	return Rules{
		HandSize:                 5,
		BalancedPatienceDiscount: 1,
		ChaosFaceSurcharge:       10,
		ChaosFavorBonus:          5,
		ShockTurns:               3,
		TurnPatienceTick:         1,
		MaxFavor:                 100,
		FavorJudgementBar:        50,
		TierBand:                 25,
	}
}

func (r Rules) withDefaults() Rules {
	def := DefaultRules()
	if r.HandSize == 0 {
		r.HandSize = def.HandSize
	}
	if r.BalancedPatienceDiscount == 0 {
		r.BalancedPatienceDiscount = def.BalancedPatienceDiscount
	}
	if r.ChaosFaceSurcharge == 0 {
		r.ChaosFaceSurcharge = def.ChaosFaceSurcharge
	}
	if r.ChaosFavorBonus == 0 {
		r.ChaosFavorBonus = def.ChaosFavorBonus
	}
	if r.ShockTurns == 0 {
		r.ShockTurns = def.ShockTurns
	}
	if r.TurnPatienceTick == 0 {
		r.TurnPatienceTick = def.TurnPatienceTick
	}
	if r.MaxFavor == 0 {
		r.MaxFavor = def.MaxFavor
	}
	if r.FavorJudgementBar == 0 {
		r.FavorJudgementBar = def.FavorJudgementBar
	}
	if r.TierBand == 0 {
		r.TierBand = def.TierBand
	}
	return r
}

// maxTier is the number of favor bands.
func (r Rules) maxTier() int {
	if r.TierBand <= 0 {
		return 0
	}
	return r.MaxFavor / r.TierBand
}

// tierFor maps a favor high-water mark to a tier.
func (r Rules) tierFor(maxFavorSeen int) int {
	if r.TierBand <= 0 {
		return 0
	}
	tier := maxFavorSeen / r.TierBand
	if max := r.maxTier(); tier > max {
		tier = max
	}
	return tier
}

// lastElement tracks the element of the most recently played card; unset
// before the first play of the battle.
type lastElement struct {
	element wuxing.Element
	set     bool
}
