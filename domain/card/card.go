package card

import (
	"fmt"
	"strconv"
	"strings"
)

// Suit of a card. The order is the one used to fill a deck.
type Suit uint8

const (
	Heart   Suit = iota // ♥ (red)
	Diamond             // ♦ (red)
	Club                // ♣ (black)
	Spade               // ♠ (black)
)

// Suits lists every suit in fill order.
var Suits = [4]Suit{Heart, Diamond, Club, Spade}

// Rank of a card, Ace low.
type Rank uint8

// Card rank constants for face cards and ace
const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// Color is derived from the suit.
type Color uint8

const (
	Red Color = iota
	Black
)

// FaceDown is the display character for hidden cards
const FaceDown = "▓"

// Card is a playing card. Rank and suit never change after construction;
// only the face state does.
type Card struct {
	rank   Rank
	suit   Suit
	faceUp bool
}

// New creates a face-down Card.
//
// Parameters:
//   - rank: 1-13 (Ace=1, 2-10=face value, Jack=11, Queen=12, King=13)
//   - suit: Heart, Diamond, Club or Spade
//
// Returns the Card or an error if suit or rank is invalid.
func New(rank Rank, suit Suit) (*Card, error) {
	if rank < Ace || rank > King || suit > Spade {
		return nil, fmt.Errorf("invalid card %d, %d", rank, suit)
	}
	return &Card{rank: rank, suit: suit}, nil
}

// MustNew is like New but panics on invalid input. Meant for constants.
func MustNew(rank Rank, suit Suit) *Card {
	c, err := New(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Card) Rank() Rank {
	return c.rank
}

func (c *Card) Suit() Suit {
	return c.suit
}

// Color returns Red for hearts and diamonds, Black for clubs and spades.
func (c *Card) Color() Color {
	return c.suit.Color()
}

func (c *Card) FaceUp() bool {
	return c.faceUp
}

// Flip turns the card over.
func (c *Card) Flip() {
	c.faceUp = !c.faceUp
}

// Code returns the asset key of the card, e.g. "AS" or "10H".
func (c *Card) Code() string {
	return c.rank.String() + c.suit.Letter()
}

// String returns the rank followed by the suit symbol, e.g. "A♥".
func (c *Card) String() string {
	return c.rank.String() + c.suit.Symbol()
}

// Display is like String but hides the identity of face-down cards.
func (c *Card) Display() string {
	if !c.faceUp {
		return FaceDown
	}
	return c.String()
}

func (s Suit) Color() Color {
	if s == Heart || s == Diamond {
		return Red
	}
	return Black
}

// Letter returns the single letter used in card codes (H, D, C, S).
func (s Suit) Letter() string {
	switch s {
	case Heart:
		return "H"
	case Diamond:
		return "D"
	case Club:
		return "C"
	case Spade:
		return "S"
	}
	return "?"
}

func (s Suit) Symbol() string {
	switch s {
	case Heart:
		return "♥"
	case Diamond:
		return "♦"
	case Club:
		return "♣"
	case Spade:
		return "♠"
	}
	return "?"
}

func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	}
	return strconv.Itoa(int(r))
}

func (c Color) String() string {
	if c == Red {
		return "red"
	}
	return "black"
}

// Parse converts a card code such as "QS" or "10d" back into a face-down Card.
func Parse(code string) (*Card, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) < 2 {
		return nil, fmt.Errorf("invalid card code %q", code)
	}
	rankStr, suitStr := code[:len(code)-1], code[len(code)-1:]

	var suit Suit
	switch suitStr {
	case "H":
		suit = Heart
	case "D":
		suit = Diamond
	case "C":
		suit = Club
	case "S":
		suit = Spade
	default:
		return nil, fmt.Errorf("invalid suit in card code %q", code)
	}

	var rank Rank
	switch rankStr {
	case "A":
		rank = Ace
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	default:
		n, err := strconv.Atoi(rankStr)
		if err != nil || n < 2 || n > 10 {
			return nil, fmt.Errorf("invalid rank in card code %q", code)
		}
		rank = Rank(n)
	}
	return New(rank, suit)
}

// MustParse is like Parse but panics on error.
func MustParse(code string) *Card {
	c, err := Parse(code)
	if err != nil {
		panic(err)
	}
	return c
}
