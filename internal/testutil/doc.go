// Package testutil provides fixtures and helpers for testing the validation
// packages.
//
// Fixtures are valid request/response envelopes for every request category.
// Tests derive invalid variants from them with Patch, which applies an
// RFC 6902 JSON Patch to a copy of the fixture, so each table entry states
// only what it breaks.
//
// This package is internal and should not be imported by external code.
package testutil
