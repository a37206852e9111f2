// Package catalog manages the vehicle inventory: the Carro domain type and
// its SQLite-backed persistence.
//
// The catalog is deliberately thin. Payload validation happens at the API
// boundary; this package enforces only what the schema enforces (CHECK
// constraints on ranges and enumerations) and translates row absence into
// ErrCarroNotFound.
package catalog
