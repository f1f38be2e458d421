package solitaire

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/luca-patrignani/solitaire/domain/card"
	"github.com/luca-patrignani/solitaire/domain/deck"
	"github.com/luca-patrignani/solitaire/domain/pile"
)

// ErrIllegalMove is wrapped by every error returned for a rejected action.
var ErrIllegalMove = errors.New("illegal move")

// Game owns the stock and every pile of the table.
type Game struct {
	deck        *deck.Deck
	tableaus    [Tableaus]*pile.Tableau
	foundations [Foundations]*pile.Foundation
	waste       *pile.Waste
	source      rand.Source
	phase       Phase

	onPhaseChange func(old, new Phase)
}

type options struct {
	source        rand.Source
	onPhaseChange func(old, new Phase)
}

type option func(options) options

// WithSeed makes the shuffles of the game reproducible.
func WithSeed(seed []byte) option {
	return func(o options) options {
		o.source = deck.NewSource(seed)
		return o
	}
}

// WithSource sets the random source used for every shuffle of the game.
func WithSource(src rand.Source) option {
	return func(o options) options {
		o.source = src
		return o
	}
}

// WithPhaseHook registers a callback invoked on every phase transition.
func WithPhaseHook(f func(old, new Phase)) option {
	return func(o options) options {
		o.onPhaseChange = f
		return o
	}
}

// NewGame creates a game with a filled and shuffled stock and empty piles.
// Without WithSeed or WithSource the shuffle uses system randomness.
func NewGame(opts ...option) *Game {
	o := options{}
	for _, opt := range opts {
		o = opt(o)
	}
	if o.source == nil {
		o.source = deck.NewRandomSource()
	}

	g := &Game{
		deck:          deck.New(),
		waste:         pile.NewWaste(),
		source:        o.source,
		phase:         NotStarted,
		onPhaseChange: o.onPhaseChange,
	}
	for i := range g.tableaus {
		g.tableaus[i] = pile.NewTableau()
	}
	for i := range g.foundations {
		g.foundations[i] = pile.NewFoundation()
	}
	g.deck.Fill()
	g.deck.Shuffle(g.source)
	return g
}

func (g *Game) Phase() Phase {
	return g.phase
}

// Started reports whether the deal has been triggered.
func (g *Game) Started() bool {
	return g.phase != NotStarted
}

// Dealt reports whether the initial deal has completed.
func (g *Game) Dealt() bool {
	return g.phase == InPlay
}

// Start deals the tableaus. Only the first call has an effect; it returns
// false when the game was already started.
func (g *Game) Start() bool {
	if g.phase != NotStarted {
		return false
	}
	g.setPhase(Dealing)
	g.deck.Deal(g.tableaus[:])
	g.setPhase(InPlay)
	return true
}

// DrawFromDeck turns the top card of the stock onto the waste and returns it.
// When the stock is empty the waste is turned back into the stock and
// reshuffled before drawing.
func (g *Game) DrawFromDeck() (*card.Card, error) {
	if err := g.checkDraw(); err != nil {
		return nil, err
	}
	if g.deck.Len() == 0 {
		g.deck.Refill(g.waste.Take(g.waste.Len()))
		g.deck.Shuffle(g.source)
	}
	c, err := g.deck.Draw()
	if err != nil {
		return nil, err
	}
	c.Flip()
	g.waste.Place(c)
	return c, nil
}

// Move transfers the card at index of from (Top for the top card), together
// with the cards above it, onto to. Either the whole transfer happens or
// nothing changes.
func (g *Game) Move(from PileRef, index int, to PileRef) error {
	src, dst, n, err := g.checkMove(from, index, to)
	if err != nil {
		return err
	}
	for _, c := range src.Take(n) {
		dst.Place(c)
	}
	if top := src.Peek(); src.Kind() == pile.KindTableau && top != nil && !top.FaceUp() {
		top.Flip()
	}
	return nil
}

// Validate checks an action against the current state without applying it.
func (g *Game) Validate(a Action) error {
	switch a.Type {
	case ActionStart:
		return nil
	case ActionDraw:
		return g.checkDraw()
	case ActionMove:
		_, _, _, err := g.checkMove(a.From, a.index(), a.To)
		return err
	default:
		return fmt.Errorf("%w: unknown action %q", ErrIllegalMove, a.Type)
	}
}

// Apply validates and performs an action.
func (g *Game) Apply(a Action) error {
	switch a.Type {
	case ActionStart:
		g.Start()
		return nil
	case ActionDraw:
		_, err := g.DrawFromDeck()
		return err
	case ActionMove:
		return g.Move(a.From, a.index(), a.To)
	default:
		return fmt.Errorf("%w: unknown action %q", ErrIllegalMove, a.Type)
	}
}

// Won reports whether every foundation is topped by a King.
func (g *Game) Won() bool {
	for _, f := range g.foundations {
		if !f.Complete() {
			return false
		}
	}
	return true
}

// CheckInvariant verifies that the stock and the piles together hold the 52
// cards exactly once, and that no tableau hides more cards than its index.
func (g *Game) CheckInvariant() error {
	seen := make(map[string]bool, deck.Size)
	count := func(cards []*card.Card) error {
		for _, c := range cards {
			if seen[c.Code()] {
				return fmt.Errorf("card %s appears twice", c.Code())
			}
			seen[c.Code()] = true
		}
		return nil
	}
	holders := [][]*card.Card{g.deck.Cards(), g.waste.Cards()}
	for _, f := range g.foundations {
		holders = append(holders, f.Cards())
	}
	for i, t := range g.tableaus {
		if t.FaceDown() > i {
			return fmt.Errorf("tableau %d hides %d cards", i, t.FaceDown())
		}
		holders = append(holders, t.Cards())
	}
	for _, cards := range holders {
		if err := count(cards); err != nil {
			return err
		}
	}
	if len(seen) != deck.Size {
		return fmt.Errorf("expected %d cards, found %d", deck.Size, len(seen))
	}
	return nil
}

func (g *Game) setPhase(p Phase) {
	old := g.phase
	g.phase = p
	if g.onPhaseChange != nil {
		g.onPhaseChange(old, p)
	}
}

func (a Action) index() int {
	if a.CardIndex == nil {
		return Top
	}
	return *a.CardIndex
}
