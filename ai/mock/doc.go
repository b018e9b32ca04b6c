// Package mock provides test doubles for the ai interfaces.
//
// The mocks default to deterministic behavior (hash-derived vectors, a
// minimal well-formed JSON payload) and expose function fields for behavior
// injection plus call counters for assertions.
package mock
