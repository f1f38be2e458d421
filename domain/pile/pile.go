package pile

import (
	"errors"
	"fmt"
	"strings"

	"github.com/luca-patrignani/solitaire/domain/card"
)

// ErrInvalidMove is returned by Add when the pile rules reject a card.
var ErrInvalidMove = errors.New("invalid move")

type Kind string

const (
	KindTableau    Kind = "tableau"
	KindFoundation Kind = "foundation"
	KindWaste      Kind = "waste"
)

// Pile is the capability shared by the three pile variants. The set of
// implementations is closed: *Tableau, *Foundation and *Waste.
type Pile interface {
	Kind() Kind
	// CanAdd reports whether c may be put on top of the pile. It never
	// mutates the pile.
	CanAdd(c *card.Card) bool
	// Add puts c on top of the pile if CanAdd allows it.
	Add(c *card.Card) error
	// Place puts c on top of the pile without checking the rules. It is
	// reserved to the deal and to the stock.
	Place(c *card.Card)
	// Peek returns the top card, or nil when the pile is empty.
	Peek() *card.Card
	Len() int
	Cards() []*card.Card
	// Take removes the top n cards and returns them bottom first.
	Take(n int) []*card.Card

	sealed()
}

// stack holds the cards of a pile, the last element being the top.
type stack struct {
	cards []*card.Card
}

func (s *stack) Place(c *card.Card) {
	s.cards = append(s.cards, c)
}

func (s *stack) Peek() *card.Card {
	if len(s.cards) == 0 {
		return nil
	}
	return s.cards[len(s.cards)-1]
}

func (s *stack) Len() int {
	return len(s.cards)
}

func (s *stack) Cards() []*card.Card {
	out := make([]*card.Card, len(s.cards))
	copy(out, s.cards)
	return out
}

func (s *stack) Take(n int) []*card.Card {
	if n < 0 || n > len(s.cards) {
		panic(fmt.Sprintf("pile: cannot take %d cards from a pile of %d", n, len(s.cards)))
	}
	cut := len(s.cards) - n
	taken := make([]*card.Card, n)
	copy(taken, s.cards[cut:])
	clear(s.cards[cut:])
	s.cards = s.cards[:cut]
	return taken
}

func (s *stack) String() string {
	if len(s.cards) == 0 {
		return "(empty)"
	}
	parts := make([]string, len(s.cards))
	for i, c := range s.cards {
		parts[i] = c.Display()
	}
	return strings.Join(parts, " ")
}

func (s *stack) sealed() {}

func add(p Pile, c *card.Card) error {
	if !p.CanAdd(c) {
		top := "empty pile"
		if t := p.Peek(); t != nil {
			top = t.String()
		}
		return fmt.Errorf("%w: %s cannot go on %s %s", ErrInvalidMove, c, p.Kind(), top)
	}
	p.Place(c)
	return nil
}

// Tableau is one of the seven playing piles, built down in alternating colors.
type Tableau struct {
	stack
}

func NewTableau(cards ...*card.Card) *Tableau {
	return &Tableau{stack{cards: cards}}
}

func (t *Tableau) Kind() Kind {
	return KindTableau
}

// CanAdd accepts a King on an empty tableau, otherwise a card of the other
// color one rank below the top.
func (t *Tableau) CanAdd(c *card.Card) bool {
	top := t.Peek()
	if top == nil {
		return c.Rank() == card.King
	}
	return c.Color() != top.Color() && c.Rank()+1 == top.Rank()
}

func (t *Tableau) Add(c *card.Card) error {
	return add(t, c)
}

// Run reports whether the cards from index i to the top can be moved together:
// all face up, alternating colors, descending by one rank.
func (t *Tableau) Run(i int) bool {
	if i < 0 || i >= len(t.cards) {
		return false
	}
	for j := i; j < len(t.cards); j++ {
		c := t.cards[j]
		if !c.FaceUp() {
			return false
		}
		if j > i {
			prev := t.cards[j-1]
			if c.Color() == prev.Color() || c.Rank()+1 != prev.Rank() {
				return false
			}
		}
	}
	return true
}

// FaceDown counts the hidden cards of the tableau.
func (t *Tableau) FaceDown() int {
	n := 0
	for _, c := range t.cards {
		if !c.FaceUp() {
			n++
		}
	}
	return n
}

// Foundation is one of the four goal piles, built up by suit from Ace to King.
type Foundation struct {
	stack
}

func NewFoundation(cards ...*card.Card) *Foundation {
	return &Foundation{stack{cards: cards}}
}

func (f *Foundation) Kind() Kind {
	return KindFoundation
}

// CanAdd accepts an Ace on an empty foundation, otherwise the next rank of
// the same suit.
func (f *Foundation) CanAdd(c *card.Card) bool {
	top := f.Peek()
	if top == nil {
		return c.Rank() == card.Ace
	}
	return c.Suit() == top.Suit() && c.Rank() == top.Rank()+1
}

func (f *Foundation) Add(c *card.Card) error {
	return add(f, c)
}

// Complete reports whether the foundation is topped by a King.
func (f *Foundation) Complete() bool {
	top := f.Peek()
	return top != nil && top.Rank() == card.King
}

// Waste receives the cards drawn from the stock.
type Waste struct {
	stack
}

func NewWaste(cards ...*card.Card) *Waste {
	return &Waste{stack{cards: cards}}
}

func (w *Waste) Kind() Kind {
	return KindWaste
}

// CanAdd always holds: the waste has no ordering rule.
func (w *Waste) CanAdd(*card.Card) bool {
	return true
}

func (w *Waste) Add(c *card.Card) error {
	return add(w, c)
}
