package battle

// Verdict is the playability check result. Reason is set only when the
// card cannot be played and is suitable for direct UI display.
type Verdict struct {
	Playable bool
	Reason   string
}

const (
	reasonNotEnoughPatience = "not enough patience"
	reasonNotEnoughFace     = "not enough face"
	reasonNoValidTargets    = "no valid targets"
)

// checkPlayable composes the cost and targeting checks for a hand
// instance into a single verdict.
func (b *Battle) checkPlayable(inst *Instance) Verdict {
	cost := b.EffectiveCost(inst.Card)
	if cost.Patience > b.patience {
		return Verdict{Reason: reasonNotEnoughPatience}
	}
	if cost.Face > b.player.Face {
		return Verdict{Reason: reasonNotEnoughFace}
	}
	if spec := inst.Card.Target; spec != nil && spec.Required {
		if len(validTargets(spec, inst, b.piles.hand)) == 0 {
			return Verdict{Reason: reasonNoValidTargets}
		}
	}
	return Verdict{Playable: true}
}
