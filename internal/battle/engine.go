package battle

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ariel-guidde/inner-officials-sub001/internal/catalog"
)

// Config is everything a collaborator supplies to start a battle. The
// engine never reads anything else: campaign economy, deck building and
// persistence all live outside this boundary.
type Config struct {
	PlayerName            string
	StartingFace          int
	StartingPatience      int
	StartingFavor         int
	OpponentStartingFavor int // overrides the opponent definition when > 0
	DeckCardIDs           []string
	OpponentIndices       []int
	CoreArgument          *CoreArgument
	Rules                 Rules
	Seed                  int64 // 0 means a time-based seed
}

// pendingTargeting suspends a play while the player selects targets. The
// staged card has left the hand; cancelling returns it unconsumed.
type pendingTargeting struct {
	inst     *Instance
	selected []*Instance
}

type battleAnalytics struct {
	cardsPlayed int
	chaosPlays  int
}

// Battle owns the mutable state of one battle. All mutation flows through
// its operation set; once a terminal condition fires the state freezes and
// every operation becomes a silent no-op rejection. A Battle is not safe
// for concurrent use: battles are single-threaded and turn-based.
type Battle struct {
	id          string
	logger      *zap.Logger
	rng         *rand.Rand
	rules       Rules
	core        *CoreArgument
	opponentDef *catalog.Opponent

	phase    Phase
	turn     int
	patience int
	last     lastElement
	player   *Combatant
	opponent *Combatant
	piles    *piles
	pending  *pendingTargeting
	intent   Intent
	outcome  Outcome

	pendingInstantWin bool
	banned            []string
	analytics         battleAnalytics
	messages          []Message
}

// Message is one battle log entry.
type Message struct {
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Result is the outcome of one operation: either an updated read-only
// snapshot, or a rejection reason with the state untouched.
type Result struct {
	OK       bool
	Reason   string
	Snapshot Snapshot
}

// Start validates the configuration against the catalog and creates a
// fresh battle. Unknown card or opponent references are fatal here: they
// mean a broken catalog, not a player mistake.
func Start(cfg Config, cat *catalog.Catalog, logger *zap.Logger) (*Battle, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.StartingFace <= 0 {
		return nil, fmt.Errorf("starting face must be positive")
	}
	if cfg.StartingPatience <= 0 {
		return nil, fmt.Errorf("starting patience must be positive")
	}
	if len(cfg.DeckCardIDs) == 0 {
		return nil, fmt.Errorf("deck is empty")
	}
	if len(cfg.OpponentIndices) == 0 {
		return nil, fmt.Errorf("no opponent selected")
	}

	deck := make([]*catalog.Card, 0, len(cfg.DeckCardIDs))
	for _, id := range cfg.DeckCardIDs {
		card, err := cat.Card(id)
		if err != nil {
			return nil, fmt.Errorf("deck: %w", err)
		}
		deck = append(deck, card)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// The starting opponent pick is part of the seeded randomness so full
	// battles replay deterministically in tests.
	oppIndex := cfg.OpponentIndices[0]
	if len(cfg.OpponentIndices) > 1 {
		oppIndex = cfg.OpponentIndices[rng.Intn(len(cfg.OpponentIndices))]
	}
	oppDef, err := cat.Opponent(oppIndex)
	if err != nil {
		return nil, err
	}

	rules := cfg.Rules.withDefaults()

	playerName := cfg.PlayerName
	if playerName == "" {
		playerName = "Official"
	}

	b := &Battle{
		id:          uuid.NewString(),
		logger:      logger,
		rng:         rng,
		rules:       rules,
		core:        cfg.CoreArgument,
		opponentDef: oppDef,
		phase:       PhaseAwaitingPlayerAction,
		turn:        1,
		patience:    cfg.StartingPatience,
		player: &Combatant{
			Name:    playerName,
			Face:    cfg.StartingFace,
			MaxFace: cfg.StartingFace,
			Poise:   cfg.CoreArgument.startingPoise(),
		},
		opponent: &Combatant{
			Name:    oppDef.Name,
			Face:    oppDef.StartingFace,
			MaxFace: oppDef.StartingFace,
		},
		piles:    newPiles(deck, rng),
		messages: make([]Message, 0, 16),
	}
	b.player.setFavor(cfg.StartingFavor, rules.MaxFavor)
	oppFavor := oppDef.StartingFavor
	if cfg.OpponentStartingFavor > 0 {
		oppFavor = cfg.OpponentStartingFavor
	}
	b.opponent.setFavor(oppFavor, rules.MaxFavor)

	b.piles.draw(b.handSize(), b.rng)
	b.intent = b.selectIntent()
	b.addMessage(fmt.Sprintf("The hearing against %s begins", oppDef.Name))

	logger.Info("battle started",
		zap.String("battle_id", b.id),
		zap.String("opponent", oppDef.Name),
		zap.Int("deck_size", len(deck)),
		zap.Int("starting_patience", cfg.StartingPatience),
		zap.Int64("seed", seed),
	)
	return b, nil
}

// ID returns the battle's unique identifier.
func (b *Battle) ID() string { return b.id }

func (b *Battle) handSize() int {
	return b.rules.HandSize + b.core.extraDraw()
}

func (b *Battle) addMessage(text string) {
	b.messages = append(b.messages, Message{Text: text, Timestamp: time.Now()})
}

func (b *Battle) reject(reason string) Result {
	return Result{Reason: reason, Snapshot: b.Snapshot()}
}

func (b *Battle) accepted() Result {
	return Result{OK: true, Snapshot: b.Snapshot()}
}

// PlayCard plays a hand card by instance or card ID. For a card with a
// target requirement and no targets supplied, the battle enters the
// awaiting-targets sub-state and suspends all other plays until the
// selection is confirmed or cancelled.
func (b *Battle) PlayCard(cardID string, targetIDs []string) Result {
	if b.phase == PhaseTerminal {
		return b.reject("the battle is over")
	}
	if b.phase == PhaseAwaitingTargets {
		return b.reject("a target selection is pending")
	}
	inst := b.piles.findInHand(cardID)
	if inst == nil {
		return b.reject("card is not in your hand")
	}
	if v := b.checkPlayable(inst); !v.Playable {
		return b.reject(v.Reason)
	}

	if inst.Card.Target != nil && targetIDs == nil {
		b.piles.takeFromHand(inst)
		b.pending = &pendingTargeting{inst: inst}
		b.phase = PhaseAwaitingTargets
		b.addMessage(inst.Card.Target.Prompt)
		return b.accepted()
	}

	targets, err := b.lookupTargets(inst, targetIDs)
	if err != nil {
		return b.reject(err.Error())
	}
	if err := canConfirm(inst.Card.Target, inst, targets); err != nil {
		return b.reject(err.Error())
	}

	b.piles.takeFromHand(inst)
	b.resolvePlay(inst, targets)
	return b.accepted()
}

// SelectTarget toggles a candidate card in the pending selection.
func (b *Battle) SelectTarget(id string) Result {
	if b.phase == PhaseTerminal {
		return b.reject("the battle is over")
	}
	if b.pending == nil {
		return b.reject("no target selection is pending")
	}

	var candidate *Instance
	for _, inst := range validTargets(b.pending.inst.Card.Target, b.pending.inst, b.piles.hand) {
		if inst.ID == id || inst.Card.ID == id {
			candidate = inst
			break
		}
	}
	if candidate == nil {
		return b.reject("not a valid target")
	}

	for i, sel := range b.pending.selected {
		if sel == candidate {
			b.pending.selected = append(b.pending.selected[:i], b.pending.selected[i+1:]...)
			return b.accepted()
		}
	}
	b.pending.selected = append(b.pending.selected, candidate)
	return b.accepted()
}

// ConfirmTargets resolves the suspended play with the current selection.
func (b *Battle) ConfirmTargets() Result {
	if b.phase == PhaseTerminal {
		return b.reject("the battle is over")
	}
	if b.pending == nil {
		return b.reject("no target selection is pending")
	}
	if err := canConfirm(b.pending.inst.Card.Target, b.pending.inst, b.pending.selected); err != nil {
		return b.reject(err.Error())
	}

	pending := b.pending
	b.pending = nil
	b.phase = PhaseAwaitingPlayerAction
	b.resolvePlay(pending.inst, pending.selected)
	return b.accepted()
}

// CancelTargeting abandons the suspended play, returning the card to the
// hand unconsumed.
func (b *Battle) CancelTargeting() Result {
	if b.phase == PhaseTerminal {
		return b.reject("the battle is over")
	}
	if b.pending == nil {
		return b.reject("no target selection is pending")
	}
	b.piles.returnToHand(b.pending.inst)
	b.pending = nil
	b.phase = PhaseAwaitingPlayerAction
	return b.accepted()
}

// resolvePlay pays the effective costs, applies the card's script, files
// the card into its destination pile and advances the elemental cycle.
func (b *Battle) resolvePlay(inst *Instance, targets []*Instance) {
	cost := b.EffectiveCost(inst.Card)
	b.spendPatience(cost.Patience)
	b.player.setFace(b.player.Face - cost.Face)

	b.applyScript(inst, targets, cost.Increased)
	if cost.Increased {
		b.gainFavor(b.rules.ChaosFavorBonus)
		b.analytics.chaosPlays++
		b.addMessage(fmt.Sprintf("Chaos Flow! %s lands twice as hard (+%d favor)", inst.Card.Name, b.rules.ChaosFavorBonus))
		b.fireTrigger(TriggerOnChaosPlay)
	}

	if spec := inst.Card.Target; spec != nil && spec.DiscardSelected {
		for _, t := range targets {
			if b.piles.takeFromHand(t) {
				b.piles.toDiscard(t)
			}
		}
	}

	switch {
	case inst.Card.RemoveAfterPlay:
		b.piles.toRemoved(inst)
	case inst.Card.Bad:
		b.piles.toRemoved(inst)
		b.piles.purgeCardID(inst.Card.ID)
		b.banned = append(b.banned, inst.Card.ID)
	default:
		b.piles.toDiscard(inst)
	}

	b.last = lastElement{element: inst.Card.Element, set: true}
	b.analytics.cardsPlayed++
	b.addMessage(fmt.Sprintf("You play %s", inst.Card.Name))
	b.logger.Debug("card played",
		zap.String("battle_id", b.id),
		zap.String("card_id", inst.Card.ID),
		zap.Int("patience_paid", cost.Patience),
		zap.Int("face_paid", cost.Face),
		zap.Bool("chaos", cost.Increased),
	)
	b.fireTrigger(TriggerOnCardPlayed)
	b.checkTerminal()
}

// EndTurn closes the player phase: the opponent acts, the shared clock
// ticks, the hand is discarded and a fresh hand is drawn. Patience gating
// never blocks ending the turn.
func (b *Battle) EndTurn() Result {
	if b.phase == PhaseTerminal {
		return b.reject("the battle is over")
	}
	if b.phase == PhaseAwaitingTargets {
		return b.reject("a target selection is pending")
	}

	b.phase = PhaseOpponentAction
	b.resolveIntent()
	b.checkTerminal()
	if b.phase == PhaseTerminal {
		return b.accepted()
	}

	b.spendPatience(b.rules.TurnPatienceTick)
	b.checkTerminal()
	if b.phase == PhaseTerminal {
		return b.accepted()
	}

	b.phase = PhaseDiscard
	b.piles.discardHand()

	b.phase = PhaseDraw
	b.piles.draw(b.handSize(), b.rng)

	b.turn++
	b.phase = PhaseAwaitingPlayerAction
	b.fireTrigger(TriggerOnTurnStart)
	b.checkTerminal()
	return b.accepted()
}

// lookupTargets maps instance or card IDs to hand instances.
func (b *Battle) lookupTargets(played *Instance, ids []string) ([]*Instance, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	targets := make([]*Instance, 0, len(ids))
	for _, id := range ids {
		var found *Instance
		for _, inst := range b.piles.hand {
			if inst == played {
				continue
			}
			if inst.ID == id || (inst.Card.ID == id && !contains(targets, inst)) {
				found = inst
				break
			}
		}
		if found == nil {
			return nil, fmt.Errorf("target %q is not in your hand", id)
		}
		targets = append(targets, found)
	}
	return targets, nil
}

func contains(list []*Instance, inst *Instance) bool {
	for _, x := range list {
		if x == inst {
			return true
		}
	}
	return false
}

// BannedCardIDs lists bad cards played this battle; collaborators use this
// to strike them from the owning deck for the rest of the session.
func (b *Battle) BannedCardIDs() []string {
	out := make([]string, len(b.banned))
	copy(out, b.banned)
	return out
}
