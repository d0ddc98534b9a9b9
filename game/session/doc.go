// Package session keeps the in-memory registry of Connect Four games.
//
// Each Session pairs one engine with its board preset and access times.
// Manager owns the registry: it creates sessions, looks them up, removes
// them and prunes the ones nobody has touched for a while.
//
// Identifiers:
//
// Generated IDs are four hexadecimal characters drawn from crypto/rand and
// retried until unused. Callers may also choose an ID of up to 32 letters,
// digits, dashes and underscores. IDs are stored and matched in lower case,
// so "AB12" and "ab12" name the same game.
//
// Concurrency:
//
// The registry map is guarded by the Manager. Moves on one game are
// serialised by the Session itself, so two games never block each other.
//
// Usage:
//
//	manager := session.NewManager()
//
//	sess, err := manager.Create("", config)
//	if err != nil {
//		log.Fatal(err)
//	}
//	result, state, err := sess.Drop(3)
//
//	removed := manager.CleanupExpiredSessions(24 * time.Hour)
//
// Nothing is written to disk; a restart starts with an empty registry.
package session
