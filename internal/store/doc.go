// Package store provides SQLite-backed persistence for the pagination
// slot.
//
// The store keeps an append-only history of submitted searches:
//   - Searches: every search record handed over at offset 0
//   - Pages: the offsets generated from each submission
//
// The current search is the most recent submission (last writer wins).
// Paging never writes a new search row, so "load next page" cannot
// replace the search it pages through.
//
// # Critical Patterns
//
// Logical ordering
//   - All ordering uses seq INTEGER, NEVER timestamps
//   - Queries include ORDER BY seq with a COLLATE BINARY tiebreaker
//
// Content identity
//   - search_id is queryir.ID(record): identical searches share it
//   - submission_id is unique per submission (UUIDv7 by default)
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
