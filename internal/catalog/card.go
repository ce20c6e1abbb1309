package catalog

import (
	"strconv"
	"strings"

	"github.com/ariel-guidde/inner-officials-sub001/internal/wuxing"
)

// EffectOp identifies what a numeric script fragment does when the card
// resolves. Text fragments carry OpNone.
type EffectOp string

const (
	OpNone            EffectOp = ""
	OpFavor           EffectOp = "favor"            // raise own favor
	OpDamage          EffectOp = "damage"           // face damage to the opponent
	OpFavorCut        EffectOp = "favor_cut"        // lower opponent favor
	OpPoise           EffectOp = "poise"            // gain poise
	OpRestoreFace     EffectOp = "restore_face"     // recover own face
	OpRestorePatience EffectOp = "restore_patience" // give back shared patience
	OpDraw            EffectOp = "draw"             // draw cards immediately
)

// Fragment is one element of a card's script: either literal text or a
// numeric value bound to an effect. Numeric fragments are doubled on a
// chaos play unless NoDouble is set. Rendering and resolution are both
// folds over the fragment sequence.
type Fragment struct {
	Text     string   `yaml:"text,omitempty"`
	Value    int      `yaml:"value,omitempty"`
	Op       EffectOp `yaml:"op,omitempty"`
	NoDouble bool     `yaml:"no_double,omitempty"`
}

// IsNumber reports whether the fragment carries a numeric effect.
func (f Fragment) IsNumber() bool {
	return f.Op != OpNone
}

// TargetFilter restricts which other hand cards a targeted card may select.
type TargetFilter string

const (
	TargetAnyOther         TargetFilter = "any"
	TargetSameElement      TargetFilter = "same_element"
	TargetDifferentElement TargetFilter = "different_element"
)

// TargetSpec declares that playing the card requires (or offers) selecting
// other cards from the hand.
type TargetSpec struct {
	Prompt   string       `yaml:"prompt"`
	Required bool         `yaml:"required"`
	Filter   TargetFilter `yaml:"filter"`
	MaxCount int          `yaml:"max_count,omitempty"` // 0 means unbounded
	// PerTarget repeats the card's numeric effects once per selected card.
	PerTarget bool `yaml:"per_target,omitempty"`
	// DiscardSelected moves the selected cards to the discard pile on
	// resolution.
	DiscardSelected bool `yaml:"discard_selected,omitempty"`
}

// Card is an immutable argument-card definition. Decks reference cards by
// ID; the catalog is the single source of truth for card content.
type Card struct {
	ID           string         `yaml:"id"`
	Name         string         `yaml:"name"`
	Element      wuxing.Element `yaml:"-"`
	PatienceCost int            `yaml:"patience_cost"`
	FaceCost     int            `yaml:"face_cost"`
	Script       []Fragment     `yaml:"script"`
	Target       *TargetSpec    `yaml:"target,omitempty"`

	// Bad cards leave the owning deck permanently once played.
	Bad bool `yaml:"bad,omitempty"`
	// RemoveAfterPlay cards go to the removed pile instead of discard.
	RemoveAfterPlay bool `yaml:"remove_after_play,omitempty"`
	// InstantWinOnBreak ends the battle in the player's favor the moment
	// this card drops the opponent's face to zero, bypassing the usual
	// shocked reprieve.
	InstantWinOnBreak bool `yaml:"instant_win_on_break,omitempty"`
}

// RenderScript folds the fragment sequence into display text, with numeric
// values shown doubled when doubled is true (no-double fragments excepted).
func (c *Card) RenderScript(doubled bool) string {
	var b strings.Builder
	for _, f := range c.Script {
		if !f.IsNumber() {
			b.WriteString(f.Text)
			continue
		}
		v := f.Value
		if doubled && !f.NoDouble {
			v *= 2
		}
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}

// Text is a convenience fragment constructor.
func Text(s string) Fragment { return Fragment{Text: s} }

// Num is a numeric fragment bound to an effect op.
func Num(v int, op EffectOp) Fragment { return Fragment{Value: v, Op: op} }

// Fixed is a numeric fragment that is never doubled by a chaos play.
func Fixed(v int, op EffectOp) Fragment {
	return Fragment{Value: v, Op: op, NoDouble: true}
}
