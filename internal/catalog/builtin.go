package catalog

import "github.com/ariel-guidde/inner-officials-sub001/internal/wuxing"

// Builtin returns the catalog shipped with the engine: the stock argument
// cards and the court opponents. External sets can be layered on via the
// YAML loaders.
func Builtin() (*Catalog, error) {
	return New(builtinCards(), builtinOpponents())
}

func builtinCards() []*Card {
	return []*Card{
		{
			ID: "measured-appeal", Name: "Measured Appeal", Element: wuxing.Wood,
			PatienceCost: 3,
			Script: []Fragment{
				Text("Gain "), Num(8, OpFavor), Text(" favor with the court."),
			},
		},
		{
			ID: "budding-precedent", Name: "Budding Precedent", Element: wuxing.Wood,
			PatienceCost: 2,
			Script: []Fragment{
				Text("Gain "), Num(5, OpFavor), Text(" favor and draw "),
				Fixed(1, OpDraw), Text(" card."),
			},
		},
		{
			ID: "scathing-rebuke", Name: "Scathing Rebuke", Element: wuxing.Fire,
			PatienceCost: 3, FaceCost: 5,
			Script: []Fragment{
				Text("Deal "), Num(12, OpDamage), Text(" face damage."),
			},
		},
		{
			ID: "burning-accusation", Name: "Burning Accusation", Element: wuxing.Fire,
			PatienceCost: 4, FaceCost: 8,
			InstantWinOnBreak: true,
			Script: []Fragment{
				Text("Deal "), Num(18, OpDamage),
				Text(" face damage. If this breaks their composure, the court rules at once."),
			},
		},
		{
			ID: "grounded-stance", Name: "Grounded Stance", Element: wuxing.Earth,
			PatienceCost: 2,
			Script: []Fragment{
				Text("Gain "), Num(6, OpPoise), Text(" poise."),
			},
		},
		{
			ID: "unshakable-claim", Name: "Unshakable Claim", Element: wuxing.Earth,
			PatienceCost: 3,
			Script: []Fragment{
				Text("Gain "), Num(4, OpPoise), Text(" poise and "),
				Num(4, OpFavor), Text(" favor."),
			},
		},
		{
			ID: "cutting-citation", Name: "Cutting Citation", Element: wuxing.Metal,
			PatienceCost: 3,
			Script: []Fragment{
				Text("Strip "), Num(7, OpFavorCut), Text(" favor from your rival."),
			},
		},
		{
			ID: "pointed-question", Name: "Pointed Question", Element: wuxing.Metal,
			PatienceCost: 2, FaceCost: 3,
			Script: []Fragment{
				Text("Deal "), Num(6, OpDamage), Text(" face damage and strip "),
				Num(3, OpFavorCut), Text(" favor."),
			},
		},
		{
			ID: "calm-rebuttal", Name: "Calm Rebuttal", Element: wuxing.Water,
			PatienceCost: 2,
			Script: []Fragment{
				Text("Recover "), Num(8, OpRestoreFace), Text(" face."),
			},
		},
		{
			ID: "flowing-discourse", Name: "Flowing Discourse", Element: wuxing.Water,
			PatienceCost: 3,
			Script: []Fragment{
				Text("Restore "), Fixed(2, OpRestorePatience),
				Text(" patience to the hearing and gain "), Num(3, OpFavor), Text(" favor."),
			},
		},
		{
			ID: "echoed-argument", Name: "Echoed Argument", Element: wuxing.Wood,
			PatienceCost: 3,
			Target: &TargetSpec{
				Prompt:    "Choose an argument of the same element to echo.",
				Required:  true,
				Filter:    TargetSameElement,
				MaxCount:  1,
				PerTarget: true,
			},
			Script: []Fragment{
				Text("Echo another wood argument: gain "), Num(6, OpFavor),
				Text(" favor per echoed card."),
			},
		},
		{
			ID: "discard-the-weak", Name: "Discard the Weak", Element: wuxing.Metal,
			PatienceCost: 1,
			Target: &TargetSpec{
				Prompt:          "You may set aside arguments of another element.",
				Required:        false,
				Filter:          TargetDifferentElement,
				PerTarget:       true,
				DiscardSelected: true,
			},
			Script: []Fragment{
				Text("Set aside clashing arguments; gain "), Num(2, OpFavor),
				Text(" favor for each."),
			},
		},
		{
			ID: "final-gambit", Name: "Final Gambit", Element: wuxing.Fire,
			PatienceCost: 5, FaceCost: 10,
			RemoveAfterPlay: true,
			Script: []Fragment{
				Text("Deal "), Num(20, OpDamage),
				Text(" face damage. Spoken once, never again this hearing."),
			},
		},
		{
			ID: "desperate-slander", Name: "Desperate Slander", Element: wuxing.Water,
			PatienceCost: 1,
			Bad: true,
			Script: []Fragment{
				Text("Strip "), Num(10, OpFavorCut),
				Text(" favor, but the court remembers: the slander is struck from your deck."),
			},
		},
		{
			ID: "steady-breath", Name: "Steady Breath", Element: wuxing.Earth,
			PatienceCost: 1,
			Script: []Fragment{
				Text("Gain "), Num(2, OpPoise), Text(" poise and draw "),
				Fixed(1, OpDraw), Text(" card."),
			},
		},
	}
}

func builtinOpponents() []*Opponent {
	return []*Opponent{
		{
			Name: "Censor Wei", Element: wuxing.Metal,
			StartingFace: 50, StartingFavor: 20,
			AttackDamage: 8, FavorCutSelf: 5, FavorCutOther: 6, StallAmount: 2,
			Weights: IntentWeights{Attack: 4, FavorCut: 3, Stall: 2},
		},
		{
			Name: "Minister Hua", Element: wuxing.Fire,
			StartingFace: 60, StartingFavor: 25,
			AttackDamage: 12, FavorCutSelf: 3, FavorCutOther: 4, StallAmount: 1,
			Weights: IntentWeights{Attack: 6, FavorCut: 2, Stall: 1},
		},
		{
			Name: "Chancellor Shen", Element: wuxing.Water,
			StartingFace: 70, StartingFavor: 30,
			AttackDamage: 6, FavorCutSelf: 8, FavorCutOther: 8, StallAmount: 3,
			Weights: IntentWeights{Attack: 2, FavorCut: 4, Stall: 3},
		},
	}
}
