package main

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/solitaire/domain/card"
	"github.com/luca-patrignani/solitaire/domain/solitaire"
)

var suitLetters = [solitaire.Foundations]string{"♥", "♦", "♣", "♠"}

func printBanner() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("S", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("olitaire", pterm.FgDarkGray.ToStyle()),
	).Render()
}

func renderCard(c solitaire.CardView) string {
	if !c.FaceUp {
		return pterm.Gray(card.FaceDown)
	}
	if c.Red {
		return pterm.LightRed(c.Display())
	}
	return pterm.Black(c.Display())
}

func renderTop(c *solitaire.CardView, empty string) string {
	if c == nil {
		return pterm.Gray(empty)
	}
	return renderCard(*c)
}

func renderColumn(cards []solitaire.CardView) string {
	if len(cards) == 0 {
		return pterm.Gray("K")
	}
	lines := make([]string, len(cards))
	for i, c := range cards {
		lines[i] = renderCard(c)
	}
	return strings.Join(lines, "\n")
}

func pileBox(title, content string) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(2)
	return pterm.Panel{Data: pbox.WithTitle(title).WithTitleTopLeft().Sprint(content)}
}

// printTable renders the whole table: foundations, waste and stock on top,
// the tableaus below.
func printTable(v solitaire.View) {
	var top []pterm.Panel
	for i, f := range v.Foundations {
		top = append(top, pileBox(fmt.Sprintf("F%d", i+1), renderTop(f, suitLetters[i])))
	}
	top = append(top, pileBox("Waste", fmt.Sprintf("%s\n%d", renderTop(v.Waste, "-"), v.WasteSize)))
	top = append(top, pileBox("Stock", fmt.Sprintf("%s\n%d", stockFace(v.StockSize), v.StockSize)))

	var tableaus []pterm.Panel
	for i, cards := range v.Tableaus {
		tableaus = append(tableaus, pileBox(fmt.Sprintf("T%d", i+1), renderColumn(cards)))
	}

	status := pterm.DefaultHeader.WithBackgroundStyle(pterm.BgGreen.ToStyle()).Sprint(statusLine(v))
	pterm.DefaultPanel.WithPanels(pterm.Panels{
		top,
		tableaus,
		{{Data: status}},
	}).Render()
}

func stockFace(n int) string {
	if n == 0 {
		return pterm.Gray("↺")
	}
	return pterm.Gray(card.FaceDown)
}

func statusLine(v solitaire.View) string {
	switch {
	case v.Won:
		return "All foundations complete!"
	case !v.Started:
		return "Press Start to deal"
	default:
		return fmt.Sprintf("%d cards in the stock, %d in the waste", v.StockSize, v.WasteSize)
	}
}

func printVictory() {
	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("You won", pterm.FgLightGreen.ToStyle()),
	).Render()
}
