package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/ariel-guidde/inner-officials-sub001/internal/battle"
	"github.com/ariel-guidde/inner-officials-sub001/internal/catalog"
	"github.com/ariel-guidde/inner-officials-sub001/internal/config"
	"github.com/ariel-guidde/inner-officials-sub001/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file")
	seed := flag.Int64("seed", 0, "battle seed (0 for random)")
	opponent := flag.Int("opponent", -1, "opponent index (-1 uses configured pool)")
	name := flag.String("name", "Official", "player name")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cat, err := catalog.Builtin()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	deck := cfg.Battle.DeckCardIDs
	if len(deck) == 0 {
		deck = cat.CardIDs()
	}
	opponents := cfg.Battle.OpponentIndices
	if *opponent >= 0 {
		opponents = []int{*opponent}
	}

	b, err := battle.Start(battle.Config{
		PlayerName:       *name,
		StartingFace:     cfg.Battle.StartingFace,
		StartingPatience: cfg.Battle.StartingPatience,
		StartingFavor:    cfg.Battle.StartingFavor,
		DeckCardIDs:      deck,
		OpponentIndices:  opponents,
		Rules:            server.RulesFromBalance(cfg.Battle.Balance),
		Seed:             *seed,
	}, cat, zap.NewNop())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runLoop(b)
}

func runLoop(b *battle.Battle) {
	snap := b.Snapshot()
	render(snap, 0)
	seen := len(snap.Messages)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if snap.Terminal {
			renderResult(b.Result())
			return
		}
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		var res battle.Result
		switch fields[0] {
		case "play", "p":
			if len(fields) < 2 {
				fmt.Println("usage: play <card> [target...]")
				continue
			}
			res = b.PlayCard(fields[1], playTargets(fields))
		case "pick", "t":
			if len(fields) != 2 {
				fmt.Println("usage: pick <card>")
				continue
			}
			res = b.SelectTarget(fields[1])
		case "confirm", "c":
			res = b.ConfirmTargets()
		case "cancel":
			res = b.CancelTargeting()
		case "end", "e":
			res = b.EndTurn()
		case "state", "s":
			render(b.Snapshot(), seen)
			continue
		case "help", "h", "?":
			printHelp()
			continue
		case "quit", "q":
			return
		default:
			fmt.Printf("unknown command %q (try help)\n", fields[0])
			continue
		}

		if !res.OK {
			fmt.Printf("  ✗ %s\n", res.Reason)
			continue
		}
		snap = res.Snapshot
		render(snap, seen)
		seen = len(snap.Messages)
	}
}

// playTargets extracts the target arguments of a play command. A bare
// "play <card>" must yield nil, not an empty slice: the engine opens
// interactive target selection only for a nil target list.
func playTargets(fields []string) []string {
	if len(fields) <= 2 {
		return nil
	}
	return fields[2:]
}

func render(snap battle.Snapshot, seen int) {
	for _, msg := range snap.Messages[min(seen, len(snap.Messages)):] {
		fmt.Printf("  · %s\n", msg.Text)
	}
	fmt.Println()
	fmt.Printf("── Turn %d ─ Patience %d", snap.Turn, snap.Patience)
	if snap.LastElement != "" {
		fmt.Printf(" ─ Last element: %s", snap.LastElement)
	}
	fmt.Println()
	fmt.Printf("  You:  %s\n", statLine(snap.Player))
	fmt.Printf("  Them: %s\n", statLine(snap.Opponent))
	fmt.Printf("  Intent: %s\n", snap.Intent.Description)
	if snap.Pending != nil {
		fmt.Printf("  Targeting %s: %s\n", snap.Pending.CardName, snap.Pending.Prompt)
		fmt.Printf("    valid: %s\n", strings.Join(snap.Pending.ValidTargetIDs, ", "))
		fmt.Printf("    picked: %s\n", strings.Join(snap.Pending.SelectedIDs, ", "))
		return
	}
	fmt.Printf("  Hand (%d) ─ deck %d, discard %d:\n", len(snap.Hand), snap.DeckCount, snap.DiscardCount)
	for _, card := range snap.Hand {
		mark := " "
		if !card.Playable {
			mark = "✗"
		}
		line := fmt.Sprintf("  %s %-20s [%s] %dP", mark, card.Name, card.Element, card.PatienceCost)
		if card.FaceCost > 0 {
			line += fmt.Sprintf("/%dF", card.FaceCost)
		}
		if card.CostLabel != "" {
			line += " (" + card.CostLabel + ")"
		}
		fmt.Printf("%s  %s\n", line, card.Text)
		fmt.Printf("      id: %s\n", card.CardID)
	}
}

func statLine(c battle.CombatantView) string {
	line := fmt.Sprintf("%-16s face %d/%d, favor %d", c.Name, c.Face, c.MaxFace, c.Favor)
	if c.Poise > 0 {
		line += fmt.Sprintf(", poise %d", c.Poise)
	}
	if c.ShockedTurns > 0 {
		line += fmt.Sprintf(", shocked %d", c.ShockedTurns)
	}
	return line
}

func renderResult(result *battle.BattleResult) {
	if result == nil {
		return
	}
	verdict := "DEFEAT"
	if result.Won {
		verdict = "VICTORY"
	}
	fmt.Println()
	fmt.Printf("══ %s ═ %s ══\n", verdict, result.Outcome)
	fmt.Printf("  Opponent: %s\n", result.OpponentName)
	fmt.Printf("  Standing: you tier %d/%d, them tier %d/%d\n",
		result.PlayerTier, result.MaxTier, result.OpponentTier, result.MaxTier)
	fmt.Printf("  Cards played: %d (%d chaos), turns: %d, face kept: %d\n",
		result.CardsPlayed, result.ChaosPlays, result.Turns, result.FinalFace)
}

func printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  play <card> [target...]   play a card by id, optionally with targets")
	fmt.Println("  pick <card>               toggle a target while a play is pending")
	fmt.Println("  confirm                   resolve the pending play")
	fmt.Println("  cancel                    abort the pending play")
	fmt.Println("  end                       end your turn")
	fmt.Println("  state                     reprint the battle state")
	fmt.Println("  quit                      leave the debate")
}
