package battle

import (
	"fmt"

	"github.com/ariel-guidde/inner-officials-sub001/internal/catalog"
	"github.com/ariel-guidde/inner-officials-sub001/internal/wuxing"
)

// matchesFilter checks a candidate card against a target filter, relative
// to the element of the card being played.
func matchesFilter(filter catalog.TargetFilter, played wuxing.Element, candidate *catalog.Card) bool {
	switch filter {
	case catalog.TargetSameElement:
		return candidate.Element == played
	case catalog.TargetDifferentElement:
		return candidate.Element != played
	default:
		return true
	}
}

// validTargets lists the hand instances a target spec may select, always
// excluding the instance being played.
func validTargets(spec *catalog.TargetSpec, played *Instance, hand []*Instance) []*Instance {
	if spec == nil {
		return nil
	}
	out := make([]*Instance, 0, len(hand))
	for _, inst := range hand {
		if inst == played {
			continue
		}
		if matchesFilter(spec.Filter, played.Card.Element, inst.Card) {
			out = append(out, inst)
		}
	}
	return out
}

// canConfirm reports whether a selection satisfies the spec. An optional
// spec accepts any selection, including none; a required spec needs at
// least one card, and every selected card must pass the predicate.
func canConfirm(spec *catalog.TargetSpec, played *Instance, selection []*Instance) error {
	if spec == nil {
		if len(selection) > 0 {
			return fmt.Errorf("card takes no targets")
		}
		return nil
	}
	if spec.Required && len(selection) == 0 {
		return fmt.Errorf("at least one target required")
	}
	if spec.MaxCount > 0 && len(selection) > spec.MaxCount {
		return fmt.Errorf("at most %d target(s) allowed", spec.MaxCount)
	}
	seen := make(map[*Instance]bool, len(selection))
	for _, inst := range selection {
		if inst == played {
			return fmt.Errorf("a card cannot target itself")
		}
		if seen[inst] {
			return fmt.Errorf("duplicate target %s", inst.Card.Name)
		}
		seen[inst] = true
		if !matchesFilter(spec.Filter, played.Card.Element, inst.Card) {
			return fmt.Errorf("%s is not a valid target", inst.Card.Name)
		}
	}
	return nil
}
