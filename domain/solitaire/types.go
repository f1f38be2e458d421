package solitaire

import "github.com/luca-patrignani/solitaire/domain/pile"

// Phase of a game.
type Phase string

const (
	NotStarted Phase = "not_started"
	Dealing    Phase = "dealing"
	InPlay     Phase = "in_play"
)

const (
	Tableaus    = 7
	Foundations = 4
)

type ActionType string

const (
	ActionStart ActionType = "start"
	ActionDraw  ActionType = "draw"
	ActionMove  ActionType = "move"
)

// PileRef names a pile of the table. Index is ignored for the waste.
type PileRef struct {
	Kind  pile.Kind `json:"kind"`
	Index int       `json:"index"`
}

// Action is a player request. From, CardIndex and To are only used by moves;
// a nil CardIndex means the top card of the source pile.
type Action struct {
	Type      ActionType `json:"type"`
	From      PileRef    `json:"from,omitempty"`
	CardIndex *int       `json:"card_index,omitempty"`
	To        PileRef    `json:"to,omitempty"`
}

func TableauRef(i int) PileRef {
	return PileRef{Kind: pile.KindTableau, Index: i}
}

func FoundationRef(i int) PileRef {
	return PileRef{Kind: pile.KindFoundation, Index: i}
}

func WasteRef() PileRef {
	return PileRef{Kind: pile.KindWaste}
}

// MoveAction builds a move of the card at index (Top for the top card).
func MoveAction(from PileRef, index int, to PileRef) Action {
	a := Action{Type: ActionMove, From: from, To: to}
	if index != Top {
		a.CardIndex = &index
	}
	return a
}

// Top selects the top card of a pile in Move.
const Top = -1
