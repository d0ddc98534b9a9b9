// Package mcp provides a Model Context Protocol server for Connect Four.
//
// The server is a thin client of the REST API: every tool call becomes an
// HTTP request, so MCP agents, the browser board and curl all see the same
// games.
//
// MCP Tools:
//   - create_game: Start a game from a preset or an explicit width and height
//   - list_games: List active games
//   - game_state: Text rendering of the board and whose turn it is
//   - drop_piece: Drop the current player's piece into a column
//   - get_cell: Read one cell
//   - reset_game: Clear the board, optionally resizing it
//   - list_configs: List board presets
//   - game_instructions: Rules and how to read the board
//
// Transport Modes:
//   - Stdio: server.ServeStdio(client.GetMCPServer())
//   - HTTP: POST bodies to GetMCPServer().HandleMessage
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	if err := server.ServeStdio(client.GetMCPServer()); err != nil {
//		log.Fatal(err)
//	}
package mcp
