package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ariel-guidde/inner-officials-sub001/internal/wuxing"
)

// cardFile is the top-level structure of a card set file.
type cardFile struct {
	Cards []cardEntry `yaml:"cards"`
}

type cardEntry struct {
	Card    `yaml:",inline"`
	Element string `yaml:"element"`
}

type opponentFile struct {
	Opponents []opponentEntry `yaml:"opponents"`
}

type opponentEntry struct {
	Opponent `yaml:",inline"`
	Element  string `yaml:"element"`
}

// LoadCards parses a YAML card set file.
func LoadCards(path string) ([]*Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCards(data)
}

// ParseCards parses YAML card set data.
func ParseCards(data []byte) ([]*Card, error) {
	var cf cardFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse card set YAML: %w", err)
	}
	cards := make([]*Card, 0, len(cf.Cards))
	for i := range cf.Cards {
		entry := cf.Cards[i]
		elem, err := wuxing.Parse(entry.Element)
		if err != nil {
			return nil, fmt.Errorf("card %q: %w", entry.ID, err)
		}
		card := entry.Card
		card.Element = elem
		cards = append(cards, &card)
	}
	return cards, nil
}

// LoadOpponents parses a YAML opponent roster file.
func LoadOpponents(path string) ([]*Opponent, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseOpponents(data)
}

// ParseOpponents parses YAML opponent roster data.
func ParseOpponents(data []byte) ([]*Opponent, error) {
	var of opponentFile
	if err := yaml.Unmarshal(data, &of); err != nil {
		return nil, fmt.Errorf("parse opponent roster YAML: %w", err)
	}
	opponents := make([]*Opponent, 0, len(of.Opponents))
	for i := range of.Opponents {
		entry := of.Opponents[i]
		elem, err := wuxing.Parse(entry.Element)
		if err != nil {
			return nil, fmt.Errorf("opponent %q: %w", entry.Name, err)
		}
		opp := entry.Opponent
		opp.Element = elem
		opponents = append(opponents, &opp)
	}
	return opponents, nil
}
