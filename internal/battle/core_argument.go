package battle

import (
	"github.com/ariel-guidde/inner-officials-sub001/internal/catalog"
	"github.com/ariel-guidde/inner-officials-sub001/internal/wuxing"
)

// TriggerEvent keys a core argument's triggered effect to a battle event.
type TriggerEvent string

const (
	TriggerOnCardPlayed TriggerEvent = "on_card_played"
	TriggerOnChaosPlay  TriggerEvent = "on_chaos_play"
	TriggerOnShock      TriggerEvent = "on_shock"
	TriggerOnTurnStart  TriggerEvent = "on_turn_start"
)

// TriggeredEffect fires a single effect op when its event occurs.
type TriggeredEffect struct {
	Event  TriggerEvent
	Op     catalog.EffectOp
	Amount int
}

// CoreArgument is the battle-long passive bundle attached to the player:
// favor bonuses, damage bonus, cost reductions, extra draw, starting
// poise, plus an optional triggered effect.
type CoreArgument struct {
	Name             string
	FavorBonus       int
	FavorMultiplier  float64 // 0 means 1.0
	DamageBonus      int
	PatienceDiscount int
	ElementDiscount  map[wuxing.Element]int
	ExtraDraw        int
	StartingPoise    int
	Trigger          *TriggeredEffect
}

// favorGain applies the bundle's multiplier and flat bonus to a base favor
// gain.
func (ca *CoreArgument) favorGain(base int) int {
	if ca == nil {
		return base
	}
	gain := base
	if ca.FavorMultiplier > 0 {
		gain = int(float64(gain) * ca.FavorMultiplier)
	}
	return gain + ca.FavorBonus
}

// damage applies the bundle's flat damage bonus.
func (ca *CoreArgument) damage(base int) int {
	if ca == nil || base <= 0 {
		return base
	}
	return base + ca.DamageBonus
}

// patienceDiscount returns the total patience reduction for a card of the
// given element.
func (ca *CoreArgument) patienceDiscountFor(element wuxing.Element) int {
	if ca == nil {
		return 0
	}
	return ca.PatienceDiscount + ca.ElementDiscount[element]
}

func (ca *CoreArgument) extraDraw() int {
	if ca == nil {
		return 0
	}
	return ca.ExtraDraw
}

func (ca *CoreArgument) startingPoise() int {
	if ca == nil {
		return 0
	}
	return ca.StartingPoise
}
