package battle

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/ariel-guidde/inner-officials-sub001/internal/catalog"
)

// Instance is a single copy of a card inside one battle. Decks may carry
// several copies of the same definition, so piles track instances, not
// card IDs.
type Instance struct {
	ID   string
	Card *catalog.Card
}

// piles holds the four zones a card instance can occupy. An instance is
// in exactly one zone at any time; the removed zone is terminal and never
// reshuffled.
type piles struct {
	deck    []*Instance
	hand    []*Instance
	discard []*Instance
	removed []*Instance
}

func newPiles(cards []*catalog.Card, rng *rand.Rand) *piles {
	p := &piles{
		deck:    make([]*Instance, 0, len(cards)),
		hand:    make([]*Instance, 0, 8),
		discard: make([]*Instance, 0, len(cards)),
		removed: make([]*Instance, 0, 4),
	}
	for _, card := range cards {
		p.deck = append(p.deck, &Instance{ID: uuid.NewString(), Card: card})
	}
	p.shuffleDeck(rng)
	return p
}

func (p *piles) shuffleDeck(rng *rand.Rand) {
	rng.Shuffle(len(p.deck), func(i, j int) {
		p.deck[i], p.deck[j] = p.deck[j], p.deck[i]
	})
}

// draw moves up to n cards from the front of the deck into the hand,
// reshuffling the discard into the deck when the deck runs dry. Returns
// the number of cards actually drawn; an empty deck with an empty discard
// simply yields fewer cards.
func (p *piles) draw(n int, rng *rand.Rand) int {
	drawn := 0
	for drawn < n {
		if len(p.deck) == 0 {
			if len(p.discard) == 0 {
				break
			}
			p.deck = p.discard
			p.discard = make([]*Instance, 0, len(p.deck))
			p.shuffleDeck(rng)
		}
		inst := p.deck[0]
		p.deck = p.deck[1:]
		p.hand = append(p.hand, inst)
		drawn++
	}
	return drawn
}

// discardHand moves the entire remaining hand to the discard pile.
func (p *piles) discardHand() {
	p.discard = append(p.discard, p.hand...)
	p.hand = p.hand[:0]
}

// findInHand locates a hand instance by instance ID, falling back to the
// first instance matching the card ID.
func (p *piles) findInHand(id string) *Instance {
	for _, inst := range p.hand {
		if inst.ID == id {
			return inst
		}
	}
	for _, inst := range p.hand {
		if inst.Card.ID == id {
			return inst
		}
	}
	return nil
}

// takeFromHand removes the given instance from the hand.
func (p *piles) takeFromHand(inst *Instance) bool {
	for i, h := range p.hand {
		if h == inst {
			p.hand = append(p.hand[:i], p.hand[i+1:]...)
			return true
		}
	}
	return false
}

func (p *piles) toDiscard(inst *Instance) { p.discard = append(p.discard, inst) }

func (p *piles) toRemoved(inst *Instance) { p.removed = append(p.removed, inst) }

func (p *piles) returnToHand(inst *Instance) { p.hand = append(p.hand, inst) }

// purgeCardID moves every deck and discard instance of the given card ID
// to the removed pile. Used for bad cards, which may never reappear once
// played.
func (p *piles) purgeCardID(cardID string) {
	p.deck = p.purgeFrom(p.deck, cardID)
	p.discard = p.purgeFrom(p.discard, cardID)
}

func (p *piles) purgeFrom(zone []*Instance, cardID string) []*Instance {
	kept := zone[:0]
	for _, inst := range zone {
		if inst.Card.ID == cardID {
			p.removed = append(p.removed, inst)
			continue
		}
		kept = append(kept, inst)
	}
	return kept
}

// total counts instances across all four zones. Shuffles and zone moves
// never create or destroy instances.
func (p *piles) total() int {
	return len(p.deck) + len(p.hand) + len(p.discard) + len(p.removed)
}
