package solitaire

import (
	"fmt"

	"github.com/luca-patrignani/solitaire/domain/pile"
)

func illegal(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrIllegalMove, fmt.Sprintf(format, args...))
}

func (g *Game) pile(ref PileRef) (pile.Pile, error) {
	switch ref.Kind {
	case pile.KindTableau:
		if ref.Index < 0 || ref.Index >= Tableaus {
			return nil, illegal("no tableau %d", ref.Index)
		}
		return g.tableaus[ref.Index], nil
	case pile.KindFoundation:
		if ref.Index < 0 || ref.Index >= Foundations {
			return nil, illegal("no foundation %d", ref.Index)
		}
		return g.foundations[ref.Index], nil
	case pile.KindWaste:
		return g.waste, nil
	default:
		return nil, illegal("unknown pile kind %q", ref.Kind)
	}
}

func (g *Game) checkDraw() error {
	if g.phase != InPlay {
		return illegal("game is %s", g.phase)
	}
	if g.deck.Len() == 0 && g.waste.Len() == 0 {
		return illegal("stock and waste are empty")
	}
	return nil
}

// checkMove resolves the piles of a move and returns how many cards leave
// the source. It does not change the game.
func (g *Game) checkMove(from PileRef, index int, to PileRef) (src, dst pile.Pile, n int, err error) {
	if g.phase != InPlay {
		return nil, nil, 0, illegal("game is %s", g.phase)
	}
	if src, err = g.pile(from); err != nil {
		return nil, nil, 0, err
	}
	if dst, err = g.pile(to); err != nil {
		return nil, nil, 0, err
	}
	if src == dst {
		return nil, nil, 0, illegal("source and destination are the same pile")
	}
	if dst.Kind() == pile.KindWaste {
		return nil, nil, 0, illegal("the waste only takes cards from the stock")
	}
	if src.Len() == 0 {
		return nil, nil, 0, illegal("%s %d is empty", from.Kind, from.Index)
	}
	if index == Top {
		index = src.Len() - 1
	}
	if index < 0 || index >= src.Len() {
		return nil, nil, 0, illegal("no card %d in %s %d", index, from.Kind, from.Index)
	}

	c := src.Cards()[index]
	if !c.FaceUp() {
		return nil, nil, 0, illegal("%s %d card %d is face down", from.Kind, from.Index, index)
	}
	n = src.Len() - index
	if n > 1 {
		t, ok := src.(*pile.Tableau)
		if !ok || dst.Kind() != pile.KindTableau {
			return nil, nil, 0, illegal("only tableau runs can move together")
		}
		if !t.Run(index) {
			return nil, nil, 0, illegal("cards above %s do not form a run", c)
		}
	}
	if !dst.CanAdd(c) {
		top := "empty pile"
		if t := dst.Peek(); t != nil {
			top = t.String()
		}
		return nil, nil, 0, illegal("%s cannot go on %s %d (%s)", c, to.Kind, to.Index, top)
	}
	return src, dst, n, nil
}
