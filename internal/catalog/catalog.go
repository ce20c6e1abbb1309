package catalog

import "fmt"

// Catalog holds every card and opponent definition a battle may reference.
// Lookups are pure; an unknown ID is a broken catalog, not a player
// mistake, so callers treat lookup failure as fatal at battle start.
type Catalog struct {
	cards     map[string]*Card
	cardOrder []string
	opponents []*Opponent
}

// New builds a catalog from card and opponent definitions. Duplicate card
// IDs are rejected.
func New(cards []*Card, opponents []*Opponent) (*Catalog, error) {
	c := &Catalog{
		cards:     make(map[string]*Card, len(cards)),
		cardOrder: make([]string, 0, len(cards)),
	}
	for _, card := range cards {
		if card.ID == "" {
			return nil, fmt.Errorf("card %q has no id", card.Name)
		}
		if _, exists := c.cards[card.ID]; exists {
			return nil, fmt.Errorf("duplicate card id %q", card.ID)
		}
		if !card.Element.Valid() {
			return nil, fmt.Errorf("card %q has invalid element", card.ID)
		}
		c.cards[card.ID] = card
		c.cardOrder = append(c.cardOrder, card.ID)
	}
	for i, opp := range opponents {
		if opp.Name == "" {
			return nil, fmt.Errorf("opponent %d has no name", i)
		}
		if opp.StartingFace <= 0 {
			return nil, fmt.Errorf("opponent %q has non-positive starting face", opp.Name)
		}
	}
	c.opponents = opponents
	return c, nil
}

// Card looks up a card definition by ID.
func (c *Catalog) Card(id string) (*Card, error) {
	card, ok := c.cards[id]
	if !ok {
		return nil, fmt.Errorf("unknown card id %q", id)
	}
	return card, nil
}

// Opponent looks up an opponent definition by index.
func (c *Catalog) Opponent(index int) (*Opponent, error) {
	if index < 0 || index >= len(c.opponents) {
		return nil, fmt.Errorf("unknown opponent index %d", index)
	}
	return c.opponents[index], nil
}

// CardIDs returns every card ID in definition order.
func (c *Catalog) CardIDs() []string {
	ids := make([]string, len(c.cardOrder))
	copy(ids, c.cardOrder)
	return ids
}

// OpponentCount returns the number of opponent definitions.
func (c *Catalog) OpponentCount() int {
	return len(c.opponents)
}

// ValidateDeck confirms every card ID in a deck list resolves.
func (c *Catalog) ValidateDeck(cardIDs []string) error {
	for _, id := range cardIDs {
		if _, err := c.Card(id); err != nil {
			return fmt.Errorf("deck references %w", err)
		}
	}
	return nil
}
