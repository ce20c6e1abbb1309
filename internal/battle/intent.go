package battle

import (
	"fmt"

	"go.uber.org/zap"
)

// IntentKind is one of the three things an opponent can do on its turn.
type IntentKind string

const (
	IntentAttack   IntentKind = "ATTACK"
	IntentFavorCut IntentKind = "FAVOR_CUT"
	IntentStall    IntentKind = "STALL"
)

// Intent is a telegraphed opponent action: selected ahead of time so the
// player can see it coming, applied only when the opponent acts.
type Intent struct {
	Kind        IntentKind
	Amount      int
	Description string
}

// selectIntent picks the opponent's next intent with the opponent's
// weighted policy. Selection is read-only: nothing is applied until
// resolveIntent.
func (b *Battle) selectIntent() Intent {
	w := b.opponentDef.Weights
	attack, cut, stall := w.Attack, w.FavorCut, w.Stall
	if attack+cut+stall <= 0 {
		attack, cut, stall = 1, 1, 1
	}
	roll := b.rng.Intn(attack + cut + stall)
	switch {
	case roll < attack:
		return Intent{
			Kind:        IntentAttack,
			Amount:      b.opponentDef.AttackDamage,
			Description: fmt.Sprintf("%s prepares a %d-damage rebuke", b.opponent.Name, b.opponentDef.AttackDamage),
		}
	case roll < attack+cut:
		return Intent{
			Kind:        IntentFavorCut,
			Amount:      b.opponentDef.FavorCutOther,
			Description: fmt.Sprintf("%s moves to undermine your standing", b.opponent.Name),
		}
	default:
		return Intent{
			Kind:        IntentStall,
			Amount:      b.opponentDef.StallAmount,
			Description: fmt.Sprintf("%s stalls, wearing down the court's patience", b.opponent.Name),
		}
	}
}

// resolveIntent applies the telegraphed intent, then telegraphs the next
// one. A shocked opponent does nothing except tick its counter down.
func (b *Battle) resolveIntent() {
	if b.opponent.ShockedTurns > 0 {
		b.opponent.ShockedTurns--
		b.addMessage(fmt.Sprintf("%s is too shocked to respond (%d turns remain)", b.opponent.Name, b.opponent.ShockedTurns))
		return
	}

	intent := b.intent
	switch intent.Kind {
	case IntentAttack:
		through := b.player.absorb(intent.Amount)
		b.addMessage(fmt.Sprintf("%s rebukes you for %d (%d past your poise)", b.opponent.Name, intent.Amount, through))
	case IntentFavorCut:
		b.player.setFavor(b.player.Favor-intent.Amount, b.rules.MaxFavor)
		if gain := b.opponentDef.FavorCutSelf; gain > 0 {
			b.opponent.setFavor(b.opponent.Favor+gain, b.rules.MaxFavor)
		}
		b.addMessage(fmt.Sprintf("%s undermines you: you lose %d favor", b.opponent.Name, intent.Amount))
	case IntentStall:
		b.spendPatience(intent.Amount)
		b.addMessage(fmt.Sprintf("%s stalls: the court loses %d extra patience", b.opponent.Name, intent.Amount))
	}

	b.logger.Debug("opponent intent resolved",
		zap.String("battle_id", b.id),
		zap.String("kind", string(intent.Kind)),
		zap.Int("amount", intent.Amount),
	)

	b.intent = b.selectIntent()
}

// PeekIntent returns the opponent's telegraphed next action.
func (b *Battle) PeekIntent() Intent {
	return b.intent
}
