// Package solitaire implements the state of a Klondike Solitaire game:
// the stock, the waste, four foundations and seven tableaus, and the
// actions that move cards between them.
//
// # Game Flow
//
// A game is shuffled when it is created and waits for Start. Start deals the
// tableaus (NotStarted → Dealing → InPlay); after that the player draws from
// the stock and moves cards between piles until every foundation holds a
// King.
//
// # Actions
//
// Presentations never touch piles directly. They build an Action (start,
// draw or move), optionally Validate it, and Apply it. A rejected action
// returns an error wrapping ErrIllegalMove and leaves the game unchanged.
// View returns everything a presentation needs to draw the table.
package solitaire
