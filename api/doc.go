// Package api provides HTTP REST API handlers for Connect Four.
//
// The api package implements:
//   - Session management endpoints
//   - Drop, reset and board inspection endpoints
//   - Board preset listing
//   - WebSocket upgrade handling
//   - Static file serving for the browser board
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create new session ({config_id?, width?, height?})
//   - GET /api/sessions - List sessions (?sort=created|accessed&order=asc|desc&limit=N)
//   - GET /api/sessions/{id} - Get specific session
//   - DELETE /api/sessions/{id} - Remove a session
//
// Game Operations:
//   - GET /api/sessions/{id}/state - Current board and status
//   - GET /api/sessions/{id}/cells/{row}/{column} - One cell, row 0 is the top
//   - POST /api/sessions/{id}/drop - Drop a piece ({column})
//   - POST /api/sessions/{id}/reset - New game ({width?, height?})
//
// Configuration:
//   - GET /api/configs - List available presets
//   - GET /api/configs/{name} - One preset
//
// Error Handling:
//
// Errors are returned as JSON with a machine readable code:
//
//	{
//	  "error": "column is full",
//	  "code": "column_full"
//	}
//
// Bad input (invalid_dimension, invalid_column, invalid_cell, invalid_request)
// maps to 400, moves the current game cannot accept (column_full,
// game_already_over) to 409 and unknown sessions or presets to 404.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//	http.ListenAndServe(":8080", api.NewServer(gameService, hub))
package api
