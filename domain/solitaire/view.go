package solitaire

import "github.com/luca-patrignani/solitaire/domain/card"

// CardView describes a card for rendering. Face-down cards carry no identity.
type CardView struct {
	Code   string `json:"code,omitempty"`
	Rank   string `json:"rank,omitempty"`
	Suit   string `json:"suit,omitempty"`
	Symbol string `json:"symbol,omitempty"`
	Red    bool   `json:"red,omitempty"`
	FaceUp bool   `json:"face_up"`
}

// View is the render query surface of a game.
type View struct {
	Phase       Phase                  `json:"phase"`
	Started     bool                   `json:"started"`
	Dealt       bool                   `json:"dealt"`
	Won         bool                   `json:"won"`
	Tableaus    [Tableaus][]CardView   `json:"tableaus"`
	Foundations [Foundations]*CardView `json:"foundations"`
	Waste       *CardView              `json:"waste"`
	WasteSize   int                    `json:"waste_size"`
	StockSize   int                    `json:"stock_size"`
}

func (g *Game) View() View {
	v := View{
		Phase:     g.phase,
		Started:   g.Started(),
		Dealt:     g.Dealt(),
		Won:       g.Won(),
		Waste:     viewTop(g.waste.Peek()),
		WasteSize: g.waste.Len(),
		StockSize: g.deck.Len(),
	}
	for i, t := range g.tableaus {
		cards := t.Cards()
		v.Tableaus[i] = make([]CardView, len(cards))
		for j, c := range cards {
			v.Tableaus[i][j] = viewCard(c)
		}
	}
	for i, f := range g.foundations {
		v.Foundations[i] = viewTop(f.Peek())
	}
	return v
}

func viewCard(c *card.Card) CardView {
	if !c.FaceUp() {
		return CardView{}
	}
	return CardView{
		Code:   c.Code(),
		Rank:   c.Rank().String(),
		Suit:   c.Suit().Letter(),
		Symbol: c.Suit().Symbol(),
		Red:    c.Color() == card.Red,
		FaceUp: true,
	}
}

func viewTop(c *card.Card) *CardView {
	if c == nil {
		return nil
	}
	v := viewCard(c)
	return &v
}

// Display returns the card as shown on the table, e.g. "10♦", or the
// face-down marker.
func (c CardView) Display() string {
	if !c.FaceUp {
		return card.FaceDown
	}
	return c.Rank + c.Symbol
}
