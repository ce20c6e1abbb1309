package battle

import (
	"fmt"

	"github.com/ariel-guidde/inner-officials-sub001/internal/catalog"
)

// applyScript folds a card's fragment sequence into stat changes. Chaos
// plays double every numeric fragment not flagged no-double. For targeted
// cards, numeric effects repeat once per selected target (minimum once).
func (b *Battle) applyScript(inst *Instance, targets []*Instance, chaos bool) {
	repeat := 1
	if inst.Card.Target != nil && inst.Card.Target.PerTarget && len(targets) > 0 {
		repeat = len(targets)
	}

	for _, frag := range inst.Card.Script {
		if !frag.IsNumber() {
			continue
		}
		amount := frag.Value
		if chaos && !frag.NoDouble {
			amount *= 2
		}
		for i := 0; i < repeat; i++ {
			b.applyEffect(frag.Op, amount, inst.Card)
		}
	}
}

// applyEffect performs one effect op against the battle state.
func (b *Battle) applyEffect(op catalog.EffectOp, amount int, source *catalog.Card) {
	switch op {
	case catalog.OpFavor:
		b.gainFavor(b.core.favorGain(amount))
	case catalog.OpDamage:
		b.damageOpponent(b.core.damage(amount), source)
	case catalog.OpFavorCut:
		b.opponent.setFavor(b.opponent.Favor-amount, b.rules.MaxFavor)
	case catalog.OpPoise:
		b.player.Poise += amount
	case catalog.OpRestoreFace:
		b.player.setFace(b.player.Face + amount)
	case catalog.OpRestorePatience:
		b.patience += amount
	case catalog.OpDraw:
		drawn := b.piles.draw(amount, b.rng)
		if drawn > 0 {
			b.addMessage(fmt.Sprintf("You draw %d card(s)", drawn))
		}
	}
}

// gainFavor raises player favor inside the [0, max] bound.
func (b *Battle) gainFavor(amount int) {
	if amount <= 0 {
		return
	}
	b.player.setFavor(b.player.Favor+amount, b.rules.MaxFavor)
}

// damageOpponent deals face damage through the opponent's poise. A card
// that breaks the opponent's face either claims the named instant victory
// or leaves them shocked; the win/loss evaluator picks that up from the
// flags set here.
func (b *Battle) damageOpponent(amount int, source *catalog.Card) {
	if amount <= 0 {
		return
	}
	hadFace := b.opponent.Face > 0
	b.opponent.absorb(amount)
	if hadFace && b.opponent.Face == 0 {
		if source != nil && source.InstantWinOnBreak {
			b.pendingInstantWin = true
			return
		}
		b.opponent.ShockedTurns = b.rules.ShockTurns
		b.addMessage(fmt.Sprintf("%s is shocked into silence for %d turns", b.opponent.Name, b.rules.ShockTurns))
		b.fireTrigger(TriggerOnShock)
	}
}

// fireTrigger runs the core argument's triggered effect if it matches.
func (b *Battle) fireTrigger(event TriggerEvent) {
	if b.core == nil || b.core.Trigger == nil || b.core.Trigger.Event != event {
		return
	}
	b.applyEffect(b.core.Trigger.Op, b.core.Trigger.Amount, nil)
}

// spendPatience lowers the shared clock, floored at zero.
func (b *Battle) spendPatience(amount int) {
	b.patience -= amount
	if b.patience < 0 {
		b.patience = 0
	}
}
