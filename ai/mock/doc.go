// Package mock provides deterministic test doubles for the ai interfaces.
//
// The mock embedder derives vectors from an FNV hash of the input text, so
// identical texts always embed identically and tests need no network. Custom
// behavior can be injected per test through function fields.
package mock
