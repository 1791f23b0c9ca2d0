// Package scenario loads an initial edge list and a script of connectivity
// operations from TOML and replays them against a dyncon.Forest.
//
// File layout:
//
//	check   = true    # validate the forest after every mutation
//	shallow = false   # re-root the shallower endpoint on merges
//
//	[[edge]]
//	id = "e1"
//	from = "1"
//	to = "2"
//
//	[[step]]
//	op = "connected"  # connected | add | delete | components
//	from = "1"
//	to = "4"
//	expect = true     # optional
//
// Ops:
//
//   - connected: from, to; optional expect (bool).
//   - add:       from, to, id.
//   - delete:    id.
//   - components: optional expect_count (int).
//
// Unknown keys and ops are rejected at load time. A failed expectation does
// not stop the run; Run reports all of them and returns ErrExpectation.
package scenario
