package battle

// Snapshot is the read-only state view returned from every operation and
// consumed by presentation collaborators. It carries no references into
// the live state.
type Snapshot struct {
	BattleID     string         `json:"battle_id"`
	Phase        string         `json:"phase"`
	Turn         int            `json:"turn"`
	Patience     int            `json:"patience"`
	LastElement  string         `json:"last_element,omitempty"`
	Player       CombatantView  `json:"player"`
	Opponent     CombatantView  `json:"opponent"`
	Hand         []HandCardView `json:"hand"`
	DeckCount    int            `json:"deck_count"`
	DiscardCount int            `json:"discard_count"`
	RemovedCount int            `json:"removed_count"`
	Pending      *TargetingView `json:"pending,omitempty"`
	Intent       IntentView     `json:"intent"`
	Terminal     bool           `json:"terminal"`
	Outcome      Outcome        `json:"outcome,omitempty"`
	Messages     []Message      `json:"messages"`
}

// CombatantView is one side's visible stats.
type CombatantView struct {
	Name         string `json:"name"`
	Face         int    `json:"face"`
	MaxFace      int    `json:"max_face"`
	Favor        int    `json:"favor"`
	Poise        int    `json:"poise"`
	ShockedTurns int    `json:"shocked_turns,omitempty"`
}

// HandCardView is a hand card with its effective cost and playability
// verdict precomputed for the UI gate.
type HandCardView struct {
	InstanceID   string `json:"instance_id"`
	CardID       string `json:"card_id"`
	Name         string `json:"name"`
	Element      string `json:"element"`
	Text         string `json:"text"`
	PatienceCost int    `json:"patience_cost"`
	FaceCost     int    `json:"face_cost"`
	Reduced      bool   `json:"reduced,omitempty"`
	Increased    bool   `json:"increased,omitempty"`
	CostLabel    string `json:"cost_label,omitempty"`
	Playable     bool   `json:"playable"`
	Reason       string `json:"reason,omitempty"`
}

// TargetingView describes a pending target selection.
type TargetingView struct {
	CardName       string   `json:"card_name"`
	Prompt         string   `json:"prompt"`
	Required       bool     `json:"required"`
	ValidTargetIDs []string `json:"valid_target_ids"`
	SelectedIDs    []string `json:"selected_ids"`
}

// IntentView is the opponent's telegraphed next action.
type IntentView struct {
	Kind        string `json:"kind"`
	Amount      int    `json:"amount"`
	Description string `json:"description"`
}

// Snapshot builds the current read-only view.
func (b *Battle) Snapshot() Snapshot {
	snap := Snapshot{
		BattleID:     b.id,
		Phase:        b.phase.String(),
		Turn:         b.turn,
		Patience:     b.patience,
		Player:       combatantView(b.player),
		Opponent:     combatantView(b.opponent),
		Hand:         make([]HandCardView, 0, len(b.piles.hand)),
		DeckCount:    len(b.piles.deck),
		DiscardCount: len(b.piles.discard),
		RemovedCount: len(b.piles.removed),
		Intent: IntentView{
			Kind:        string(b.intent.Kind),
			Amount:      b.intent.Amount,
			Description: b.intent.Description,
		},
		Terminal: b.phase == PhaseTerminal,
		Outcome:  b.outcome,
		Messages: append([]Message(nil), b.messages...),
	}
	if b.last.set {
		snap.LastElement = b.last.element.String()
	}
	for _, inst := range b.piles.hand {
		cost := b.EffectiveCost(inst.Card)
		verdict := b.checkPlayable(inst)
		snap.Hand = append(snap.Hand, HandCardView{
			InstanceID:   inst.ID,
			CardID:       inst.Card.ID,
			Name:         inst.Card.Name,
			Element:      inst.Card.Element.String(),
			Text:         inst.Card.RenderScript(cost.Increased),
			PatienceCost: cost.Patience,
			FaceCost:     cost.Face,
			Reduced:      cost.Reduced,
			Increased:    cost.Increased,
			CostLabel:    cost.Label,
			Playable:     verdict.Playable,
			Reason:       verdict.Reason,
		})
	}
	if b.pending != nil {
		view := &TargetingView{
			CardName: b.pending.inst.Card.Name,
			Prompt:   b.pending.inst.Card.Target.Prompt,
			Required: b.pending.inst.Card.Target.Required,
		}
		for _, inst := range validTargets(b.pending.inst.Card.Target, b.pending.inst, b.piles.hand) {
			view.ValidTargetIDs = append(view.ValidTargetIDs, inst.ID)
		}
		for _, inst := range b.pending.selected {
			view.SelectedIDs = append(view.SelectedIDs, inst.ID)
		}
		snap.Pending = view
	}
	return snap
}

func combatantView(c *Combatant) CombatantView {
	return CombatantView{
		Name:         c.Name,
		Face:         c.Face,
		MaxFace:      c.MaxFace,
		Favor:        c.Favor,
		Poise:        c.Poise,
		ShockedTurns: c.ShockedTurns,
	}
}
