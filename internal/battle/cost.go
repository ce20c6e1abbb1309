package battle

import "github.com/ariel-guidde/inner-officials-sub001/internal/catalog"

// Cost is the effective price of playing a card in the current state.
// Increased marks a chaos play: numeric effects double on resolution and
// the player collects the chaos favor bonus.
type Cost struct {
	Patience  int
	Face      int
	Reduced   bool
	Increased bool
	Label     string
}

// EffectiveCost computes the card's price under the elemental cycle and
// the active core argument.
//
// Starting from the base costs: a card whose element follows the last
// played element in the generating cycle is a balanced flow (patience
// discount); a card whose element overcomes the last one is a chaos flow
// (face surcharge, doubled effects). On a 5-ring the two relations never
// pick the same element, so a play is never both. Passive reductions
// stack with the balanced discount and every floor holds costs at zero.
// Before the first play of a battle the cycle contributes nothing.
func (b *Battle) EffectiveCost(card *catalog.Card) Cost {
	cost := Cost{
		Patience: card.PatienceCost,
		Face:     card.FaceCost,
	}

	if b.last.set {
		switch card.Element {
		case b.last.element.Next():
			cost.Patience -= b.rules.BalancedPatienceDiscount
			cost.Reduced = true
			cost.Label = "Balanced Flow"
		case b.last.element.Overcomer():
			cost.Face += b.rules.ChaosFaceSurcharge
			cost.Increased = true
			cost.Label = "Chaos Flow"
		}
	}

	if d := b.core.patienceDiscountFor(card.Element); d > 0 {
		cost.Patience -= d
		cost.Reduced = true
	}

	if cost.Patience < 0 {
		cost.Patience = 0
	}
	if cost.Face < 0 {
		cost.Face = 0
	}
	return cost
}
