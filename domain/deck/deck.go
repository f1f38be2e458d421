package deck

import (
	"errors"
	"fmt"

	"github.com/luca-patrignani/solitaire/domain/card"
	"github.com/luca-patrignani/solitaire/domain/pile"
)

// Size is the number of cards of a full deck.
const Size = 52

// ErrEmpty is returned when drawing from an empty deck.
var ErrEmpty = errors.New("deck is empty")

// Deck is the stock of a game. The last card of the slice is the top.
type Deck struct {
	cards []*card.Card
}

func New() *Deck {
	return &Deck{}
}

// Fill puts one face-down card per rank and suit in the deck. Filling a deck
// that already holds cards is a programming error.
func (d *Deck) Fill() {
	if len(d.cards) != 0 {
		panic(fmt.Sprintf("deck: fill called on a deck holding %d cards", len(d.cards)))
	}
	d.cards = make([]*card.Card, 0, Size)
	for _, suit := range card.Suits {
		for rank := card.Ace; rank <= card.King; rank++ {
			d.cards = append(d.cards, card.MustNew(rank, suit))
		}
	}
}

// Deal lays out the tableaus: pile i receives i+1 cards popped from the top
// of the deck, and the last one is turned face up. It panics when the deck
// holds fewer cards than the layout needs (28 for the usual seven piles).
func (d *Deck) Deal(tableaus []*pile.Tableau) {
	n := len(tableaus)
	need := n * (n + 1) / 2
	if len(d.cards) < need {
		panic(fmt.Sprintf("deck: dealing %d tableaus needs %d cards, deck holds %d", n, need, len(d.cards)))
	}
	for i, t := range tableaus {
		for j := 0; j <= i; j++ {
			c := d.pop()
			if j == i {
				c.Flip()
			}
			t.Place(c)
		}
	}
}

// Draw pops the top card.
func (d *Deck) Draw() (*card.Card, error) {
	if len(d.cards) == 0 {
		return nil, ErrEmpty
	}
	return d.pop(), nil
}

// Refill pushes cards back on the deck in the given order, face down.
func (d *Deck) Refill(cards []*card.Card) {
	for _, c := range cards {
		if c.FaceUp() {
			c.Flip()
		}
		d.cards = append(d.cards, c)
	}
}

func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the deck, bottom first.
func (d *Deck) Cards() []*card.Card {
	out := make([]*card.Card, len(d.cards))
	copy(out, d.cards)
	return out
}

func (d *Deck) pop() *card.Card {
	last := len(d.cards) - 1
	c := d.cards[last]
	d.cards[last] = nil
	d.cards = d.cards[:last]
	return c
}
