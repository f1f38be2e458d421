package pile

import (
	"errors"
	"testing"

	"github.com/luca-patrignani/solitaire/domain/card"
)

func faceUp(code string) *card.Card {
	c := card.MustParse(code)
	c.Flip()
	return c
}

func TestFoundationCanAdd(t *testing.T) {
	empty := NewFoundation()
	if empty.CanAdd(faceUp("3H")) {
		t.Fatal("3H must not go on an empty foundation")
	}
	if !empty.CanAdd(faceUp("AH")) {
		t.Fatal("AH must go on an empty foundation")
	}

	f := NewFoundation(faceUp("AH"))
	cases := []struct {
		code string
		want bool
	}{
		{"2H", true},
		{"2D", false},
		{"3H", false},
		{"AH", false},
		{"KH", false},
	}
	for _, tc := range cases {
		if got := f.CanAdd(faceUp(tc.code)); got != tc.want {
			t.Fatalf("%s on AH: expected %v, got %v", tc.code, tc.want, got)
		}
	}
}

func TestTableauCanAdd(t *testing.T) {
	empty := NewTableau()
	if !empty.CanAdd(faceUp("KS")) {
		t.Fatal("KS must go on an empty tableau")
	}
	if empty.CanAdd(faceUp("QS")) {
		t.Fatal("QS must not go on an empty tableau")
	}

	tab := NewTableau(faceUp("10H"))
	cases := []struct {
		code string
		want bool
	}{
		{"9S", true},
		{"9C", true},
		{"9D", false},
		{"9H", false},
		{"8H", false},
		{"8S", false},
		{"JS", false},
	}
	for _, tc := range cases {
		if got := tab.CanAdd(faceUp(tc.code)); got != tc.want {
			t.Fatalf("%s on 10H: expected %v, got %v", tc.code, tc.want, got)
		}
	}
}

func TestCanAddDoesNotMutate(t *testing.T) {
	tab := NewTableau(faceUp("10H"))
	tab.CanAdd(faceUp("9S"))
	if tab.Len() != 1 || tab.Peek().Code() != "10H" {
		t.Fatal("CanAdd changed the pile")
	}
}

func TestAddIsGated(t *testing.T) {
	tab := NewTableau(faceUp("10H"))
	err := tab.Add(faceUp("8H"))
	if !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("expected ErrInvalidMove, got %v", err)
	}
	if tab.Len() != 1 {
		t.Fatalf("rejected add changed the pile: %d cards", tab.Len())
	}
	if err := tab.Add(faceUp("9S")); err != nil {
		t.Fatal(err)
	}
	if tab.Peek().Code() != "9S" {
		t.Fatalf("expected 9S on top, got %s", tab.Peek())
	}

	f := NewFoundation()
	if err := f.Add(faceUp("2C")); !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("expected ErrInvalidMove, got %v", err)
	}
}

func TestWasteAcceptsAnything(t *testing.T) {
	w := NewWaste()
	for _, code := range []string{"3H", "KS", "AD"} {
		if err := w.Add(faceUp(code)); err != nil {
			t.Fatal(err)
		}
	}
	if w.Len() != 3 || w.Peek().Code() != "AD" {
		t.Fatalf("unexpected waste %s", w.String())
	}
}

func TestPeekEmpty(t *testing.T) {
	for _, p := range []Pile{NewTableau(), NewFoundation(), NewWaste()} {
		if p.Peek() != nil {
			t.Fatalf("%s: expected nil top", p.Kind())
		}
	}
}

func TestTake(t *testing.T) {
	tab := NewTableau(faceUp("KS"), faceUp("QH"), faceUp("JC"))
	taken := tab.Take(2)
	if len(taken) != 2 || taken[0].Code() != "QH" || taken[1].Code() != "JC" {
		t.Fatalf("unexpected taken cards %v", taken)
	}
	if tab.Len() != 1 || tab.Peek().Code() != "KS" {
		t.Fatalf("unexpected remaining pile %s", tab.String())
	}
}

func TestTakeTooMany(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewWaste().Take(1)
}

func TestCardsIsACopy(t *testing.T) {
	tab := NewTableau(faceUp("KS"))
	cards := tab.Cards()
	cards[0] = faceUp("AH")
	if tab.Peek().Code() != "KS" {
		t.Fatal("Cards exposed the internal slice")
	}
}

func TestRun(t *testing.T) {
	hidden := card.MustParse("2D")
	tab := NewTableau(hidden, faceUp("KS"), faceUp("QH"), faceUp("JC"))
	if tab.Run(0) {
		t.Fatal("run cannot start on a face-down card")
	}
	for i := 1; i <= 3; i++ {
		if !tab.Run(i) {
			t.Fatalf("expected a run from %d", i)
		}
	}
	if tab.Run(4) || tab.Run(-1) {
		t.Fatal("out of range index is not a run")
	}

	broken := NewTableau(faceUp("KS"), faceUp("QC"), faceUp("JH"))
	if broken.Run(0) {
		t.Fatal("same color neighbours are not a run")
	}
	if tab.FaceDown() != 1 {
		t.Fatalf("expected 1 face-down card, got %d", tab.FaceDown())
	}
}

func TestFoundationComplete(t *testing.T) {
	f := NewFoundation()
	if f.Complete() {
		t.Fatal("empty foundation is not complete")
	}
	for r := card.Ace; r <= card.King; r++ {
		c, _ := card.New(r, card.Spade)
		c.Flip()
		if err := f.Add(c); err != nil {
			t.Fatal(err)
		}
	}
	if !f.Complete() {
		t.Fatal("foundation topped by a king is complete")
	}
}
