package main

import (
	"reflect"
	"testing"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/solitaire/config"
	"github.com/luca-patrignani/solitaire/domain/solitaire"
)

func startedView(t *testing.T) (*solitaire.Game, solitaire.View) {
	t.Helper()
	g := newGame(config.Config{Seed: "cmd"})
	g.Start()
	return g, g.View()
}

func TestMenuOptions(t *testing.T) {
	g := newGame(config.Config{Seed: "menu"})
	if got := menuOptions(g.View()); !reflect.DeepEqual(got, []string{optStart, optQuit}) {
		t.Fatalf("unexpected options before start %v", got)
	}
	g.Start()
	if got := menuOptions(g.View()); !reflect.DeepEqual(got, []string{optMove, optDraw, optQuit}) {
		t.Fatalf("unexpected options after start %v", got)
	}
}

func TestSourceChoices(t *testing.T) {
	g, v := startedView(t)
	sources := sourceChoices(v)
	if len(sources) != solitaire.Tableaus {
		t.Fatalf("expected one source per tableau, got %d", len(sources))
	}
	if _, err := g.DrawFromDeck(); err != nil {
		t.Fatal(err)
	}
	sources = sourceChoices(g.View())
	if sources[0].ref != solitaire.WasteRef() {
		t.Fatalf("the waste should be offered first, got %s", sources[0].label)
	}
	for _, s := range sources {
		if s.index != solitaire.Top {
			t.Fatalf("%s: sources move the top card", s.label)
		}
	}
}

func TestRunChoices(t *testing.T) {
	_, v := startedView(t)
	runs := runChoices(v, 6)
	if len(runs) != 1 {
		t.Fatalf("a fresh tableau has one face-up card, got %d choices", len(runs))
	}
	if runs[0].index != 6 {
		t.Fatalf("expected index 6, got %d", runs[0].index)
	}
}

func TestDestinationChoices(t *testing.T) {
	_, v := startedView(t)
	from := solitaire.TableauRef(2)
	dests := destinationChoices(v, from)
	if len(dests) != solitaire.Tableaus+solitaire.Foundations-1 {
		t.Fatalf("unexpected number of destinations %d", len(dests))
	}
	for _, d := range dests {
		if d.ref == from {
			t.Fatal("the source must not be offered as destination")
		}
	}
	c, ok := find(dests, dests[0].label)
	if !ok || c.ref != solitaire.FoundationRef(0) {
		t.Fatalf("find returned %+v", c)
	}
	if _, ok := find(dests, optCancel); ok {
		t.Fatal("cancel is not a destination")
	}
}

func TestRenderCard(t *testing.T) {
	red := solitaire.CardView{Rank: "10", Symbol: "♦", Red: true, FaceUp: true}
	if got := pterm.RemoveColorFromString(renderCard(red)); got != "10♦" {
		t.Fatalf("expected 10♦, got %s", got)
	}
	if got := pterm.RemoveColorFromString(renderCard(solitaire.CardView{})); got != "▓" {
		t.Fatalf("expected the face-down marker, got %s", got)
	}
	if got := pterm.RemoveColorFromString(renderColumn(nil)); got != "K" {
		t.Fatalf("expected the empty tableau hint, got %s", got)
	}
}

func TestStatusLine(t *testing.T) {
	g := newGame(config.Config{Seed: "status"})
	if statusLine(g.View()) != "Press Start to deal" {
		t.Fatal("unexpected status before start")
	}
	g.Start()
	if statusLine(g.View()) != "24 cards in the stock, 0 in the waste" {
		t.Fatalf("unexpected status %q", statusLine(g.View()))
	}
}
