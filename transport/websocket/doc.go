// Package websocket provides WebSocket transport for Connect Four.
//
// The websocket package implements:
//   - Session-aware WebSocket connections
//   - Automatic state broadcasting after every drop and reset
//   - Connection lifecycle management
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub manages all
// WebSocket connections. Each client connection is served by a read pump and
// a write pump goroutine; the hub's Run loop owns registration and fan-out.
//
// Message Protocol:
//
// Messages are JSON-encoded, one per frame:
//   - state_update: {session_id, event, game_state} with the full board
//   - piece_dropped: {session_id, event, data} carrying the drop result
//
// Clients never send moves over the socket; drops go through the REST API and
// the hub relays the outcome to everyone watching that session.
//
// Session Integration:
//
// Clients specify their session ID via query parameter (?session=ab12) when
// establishing the connection. IDs are matched case-insensitively.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run()
//	defer hub.Stop()
//
//	hub.ServeWS(w, r, sessionID, currentState)
//	hub.BroadcastToSession(sessionID, state)
package websocket
