package battle

import "go.uber.org/zap"

// checkTerminal evaluates the terminal conditions after a mutation, first
// match wins:
//
//  1. player favor at the cap — favor win
//  2. opponent favor at the cap — favor loss
//  3. player face at zero — face loss
//  4. opponent face at zero is not terminal (shock handles it) unless a
//     named instant-win card broke it this operation
//  5. patience exhausted — judgement by favor, the bar is inclusive
//
// Once a condition fires the battle freezes: every later operation is a
// silent no-op.
func (b *Battle) checkTerminal() {
	if b.phase == PhaseTerminal {
		return
	}

	switch {
	case b.player.Favor >= b.rules.MaxFavor:
		b.finish(OutcomeFavorWin)
	case b.opponent.Favor >= b.rules.MaxFavor:
		b.finish(OutcomeFavorLoss)
	case b.player.Face <= 0:
		b.finish(OutcomeFaceLoss)
	case b.pendingInstantWin:
		b.finish(OutcomeInstantWin)
	case b.patience <= 0:
		if b.player.Favor >= b.rules.FavorJudgementBar {
			b.finish(OutcomeJudgementWin)
		} else {
			b.finish(OutcomeJudgementLoss)
		}
	}
}

func (b *Battle) finish(outcome Outcome) {
	b.phase = PhaseTerminal
	b.outcome = outcome
	if b.pending != nil {
		// The staged card is out of the hand but in no pile yet; return
		// it so every instance still sits in exactly one zone.
		b.piles.returnToHand(b.pending.inst)
		b.pending = nil
	}
	b.addMessage("The hearing is over: " + string(outcome))
	b.logger.Info("battle finished",
		zap.String("battle_id", b.id),
		zap.String("outcome", string(outcome)),
		zap.Bool("won", outcome.Won()),
		zap.Int("turns", b.turn),
	)
}

// BattleResult is the read-only summary collaborators consume once the
// battle is terminal.
type BattleResult struct {
	Won          bool    `json:"won"`
	Outcome      Outcome `json:"outcome"`
	FinalFace    int     `json:"final_face"`
	OpponentName string  `json:"opponent_name"`
	PlayerTier   int     `json:"player_tier"`
	OpponentTier int     `json:"opponent_tier"`
	MaxTier      int     `json:"max_tier"`

	CardsPlayed int `json:"cards_played"`
	ChaosPlays  int `json:"chaos_plays"`
	Turns       int `json:"turns"`
}

// Result returns the battle summary, or nil while the battle is live.
func (b *Battle) Result() *BattleResult {
	if b.phase != PhaseTerminal {
		return nil
	}
	return &BattleResult{
		Won:          b.outcome.Won(),
		Outcome:      b.outcome,
		FinalFace:    b.player.Face,
		OpponentName: b.opponent.Name,
		PlayerTier:   b.rules.tierFor(b.player.maxFavorSeen),
		OpponentTier: b.rules.tierFor(b.opponent.maxFavorSeen),
		MaxTier:      b.rules.maxTier(),
		CardsPlayed:  b.analytics.cardsPlayed,
		ChaosPlays:   b.analytics.chaosPlays,
		Turns:        b.turn,
	}
}
