// Package service provides the business logic layer for Connect Four.
//
// The service package implements:
//   - Multi-session game management
//   - Board preset selection
//   - Drop processing and event reporting
//   - Session lifecycle management
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// ConfigManager manages board preset loading and validation.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the game engine. Each session owns its own engine, and every read or write of
// that engine goes through the session's mutex, so two requests for the same
// game never interleave while different games proceed in parallel.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, _ := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	// Create a new session on the large preset
//	sessionInfo, err := gameService.CreateSession(ctx, service.CreateSessionRequest{ConfigID: "large"})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Drop into the middle column
//	outcome, err := gameService.Drop(ctx, sessionInfo.ID, 3)
//
// Engine errors pass through unchanged, so callers can match them with
// errors.Is against engine.ErrColumnFull and friends.
package service
