package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/solitaire/domain/pile"
	"github.com/luca-patrignani/solitaire/domain/solitaire"
)

const (
	optStart  = "Start"
	optDraw   = "Draw from the stock"
	optMove   = "Move a card"
	optQuit   = "Quit"
	optCancel = "Cancel"
)

// choice is an entry of an interactive select bound to a pile and a card.
type choice struct {
	label string
	ref   solitaire.PileRef
	index int
}

func menuOptions(v solitaire.View) []string {
	if !v.Started {
		return []string{optStart, optQuit}
	}
	return []string{optMove, optDraw, optQuit}
}

func pileName(ref solitaire.PileRef) string {
	switch ref.Kind {
	case pile.KindTableau:
		return fmt.Sprintf("Tableau %d", ref.Index+1)
	case pile.KindFoundation:
		return fmt.Sprintf("Foundation %d", ref.Index+1)
	default:
		return "Waste"
	}
}

func topLabel(c *solitaire.CardView) string {
	if c == nil {
		return "empty"
	}
	return c.Display()
}

// sourceChoices lists the piles whose top card is face up.
func sourceChoices(v solitaire.View) []choice {
	var out []choice
	if v.Waste != nil {
		out = append(out, choice{label: "Waste (" + v.Waste.Display() + ")", ref: solitaire.WasteRef(), index: solitaire.Top})
	}
	for i, cards := range v.Tableaus {
		if len(cards) == 0 || !cards[len(cards)-1].FaceUp {
			continue
		}
		ref := solitaire.TableauRef(i)
		out = append(out, choice{label: fmt.Sprintf("%s (%s)", pileName(ref), cards[len(cards)-1].Display()), ref: ref, index: solitaire.Top})
	}
	for i, f := range v.Foundations {
		if f == nil {
			continue
		}
		ref := solitaire.FoundationRef(i)
		out = append(out, choice{label: fmt.Sprintf("%s (%s)", pileName(ref), f.Display()), ref: ref, index: solitaire.Top})
	}
	return out
}

// runChoices lists the face-up cards of a tableau a run can start from,
// deepest first.
func runChoices(v solitaire.View, tableau int) []choice {
	cards := v.Tableaus[tableau]
	var out []choice
	for i, c := range cards {
		if !c.FaceUp {
			continue
		}
		labels := make([]string, 0, len(cards)-i)
		for _, above := range cards[i:] {
			labels = append(labels, above.Display())
		}
		out = append(out, choice{label: strings.Join(labels, " "), ref: solitaire.TableauRef(tableau), index: i})
	}
	return out
}

// destinationChoices lists every pile a card may be moved onto, except from.
func destinationChoices(v solitaire.View, from solitaire.PileRef) []choice {
	var out []choice
	for i, f := range v.Foundations {
		ref := solitaire.FoundationRef(i)
		if ref == from {
			continue
		}
		out = append(out, choice{label: fmt.Sprintf("%s (%s)", pileName(ref), topLabel(f)), ref: ref})
	}
	for i, cards := range v.Tableaus {
		ref := solitaire.TableauRef(i)
		if ref == from {
			continue
		}
		var top *solitaire.CardView
		if len(cards) > 0 {
			top = &cards[len(cards)-1]
		}
		out = append(out, choice{label: fmt.Sprintf("%s (%s)", pileName(ref), topLabel(top)), ref: ref})
	}
	return out
}

func labels(choices []choice) []string {
	out := make([]string, len(choices))
	for i, c := range choices {
		out[i] = c.label
	}
	return out
}

func find(choices []choice, label string) (choice, bool) {
	for _, c := range choices {
		if c.label == label {
			return c, true
		}
	}
	return choice{}, false
}

func selectChoice(text string, choices []choice) (choice, bool, error) {
	options := append(labels(choices), optCancel)
	selected, err := pterm.DefaultInteractiveSelect.WithDefaultText(text).WithOptions(options).Show()
	if err != nil {
		return choice{}, false, err
	}
	c, ok := find(choices, selected)
	return c, ok, nil
}

// selectMove asks for the source, the card and the destination of a move.
// It returns false when the player cancels.
func selectMove(v solitaire.View) (solitaire.Action, bool, error) {
	sources := sourceChoices(v)
	if len(sources) == 0 {
		pterm.Warning.Println("No card can be moved.")
		return solitaire.Action{}, false, nil
	}
	src, ok, err := selectChoice("Move from", sources)
	if err != nil || !ok {
		return solitaire.Action{}, false, err
	}
	if src.ref.Kind == pile.KindTableau {
		if runs := runChoices(v, src.ref.Index); len(runs) > 1 {
			src, ok, err = selectChoice("Which cards", runs)
			if err != nil || !ok {
				return solitaire.Action{}, false, err
			}
		}
	}
	dst, ok, err := selectChoice("Move to", destinationChoices(v, src.ref))
	if err != nil || !ok {
		return solitaire.Action{}, false, err
	}
	return solitaire.MoveAction(src.ref, src.index, dst.ref), true, nil
}

// play runs the terminal game loop until the player quits or wins.
func play(logger *slog.Logger, game *solitaire.Game) error {
	printBanner()
	for {
		v := game.View()
		printTable(v)
		if v.Won {
			printVictory()
			logger.Info("game won")
			return nil
		}

		selected, err := pterm.DefaultInteractiveSelect.WithDefaultText("Select your next action").WithOptions(menuOptions(v)).Show()
		if err != nil {
			return err
		}

		var action solitaire.Action
		switch selected {
		case optStart:
			action = solitaire.Action{Type: solitaire.ActionStart}
		case optDraw:
			action = solitaire.Action{Type: solitaire.ActionDraw}
		case optMove:
			var ok bool
			action, ok, err = selectMove(v)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
		case optQuit:
			return nil
		default:
			return fmt.Errorf("unknown option %q", selected)
		}

		if err := game.Apply(action); err != nil {
			if errors.Is(err, solitaire.ErrIllegalMove) {
				logger.Debug("rejected action", "type", action.Type, "reason", err.Error())
				pterm.Error.Printfln("Invalid move: %s", err.Error())
				continue
			}
			return err
		}
		if err := game.CheckInvariant(); err != nil {
			return fmt.Errorf("table corrupted: %w", err)
		}
	}
}
