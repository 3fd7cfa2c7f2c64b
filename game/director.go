package game

// Director is a computer player. The event loop steps it synchronously:
// every Act call runs to completion before the next external event, so
// directors share the single-threaded model of the rest of the game.
type Director interface {
	// Start binds the director to a controller at the start of a game.
	Start(*Controller)

	// Act performs a single move.
	Act()

	// End is called when the game is over.
	End()
}
