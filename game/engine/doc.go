// Package engine provides the core game logic for Connect Four.
//
// The engine package implements:
//   - Board representation with row 0 at the top and columns filled bottom-up
//   - Move legality (column bounds, full columns, finished games)
//   - Strict turn alternation between Player1 and Player2
//   - Four-in-a-row detection in horizontal, vertical and both diagonal directions
//   - Tie detection once the board is full
//
// Core Types:
//
// The Engine interface defines the contract used by the service and the
// presentation layers, implemented by GameEngine. GameState is a copy of the
// board handed to renderers, and GameConfig is a named board preset.
//
// Usage:
//
//	gameEngine, err := engine.NewEngine(7, 6)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := gameEngine.DropPiece(3)
//	if errors.Is(err, engine.ErrColumnFull) {
//		// ask for another column
//	}
//
// Game Rules:
//
// Each drop lands on the lowest empty cell of the chosen column. After every
// drop the engine checks for a win by the player who just moved, then for a
// full board, and only then hands the turn over. A won or tied game rejects
// every further drop until Reset is called. Failed calls never change state.
package engine
