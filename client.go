// Package persondir exposes typed, read-only lookups over an institutional
// person directory. Two backends satisfy the same contract: a live Postgres
// store (persondir/db) and a fixture-replay store (persondir/fixture).
package persondir

import "context"

// RegisteredStatusCode is the store's literal enrollment-status code meaning
// "registered"; GetRegisteredStudents filters on it.
const RegisteredStatusCode = "12"

// Client is the public retrieval contract shared by all backends.
//
// A Client instance is single-owner-at-a-time: no internal locking is
// performed, and the live backend holds one underlying connection handle.
// Callers needing concurrency should use one instance per worker.
type Client interface {
	// GetPersonByNetID resolves a person by their current network ID or any
	// network ID they have ever held. Returns PersonNotFoundError when no
	// person matches and AmbiguousIdentityError when the combined predicate
	// resolves to more than one distinct person.
	GetPersonByNetID(ctx context.Context, netID string, inc Include) (*Person, error)

	// GetPersonByRegID resolves a person by their current or any historical
	// registry ID, with the same failure semantics as GetPersonByNetID.
	GetPersonByRegID(ctx context.Context, regID string, inc Include) (*Person, error)

	// GetPersonByStudentNumber resolves a person by student number. The input
	// is normalized to a 7-digit zero-padded form first; input that cannot be
	// normalized is a guaranteed non-match and short-circuits to
	// PersonNotFoundError without touching the backend.
	GetPersonByStudentNumber(ctx context.Context, studentNumber string, inc Include) (*Person, error)

	// GetPersonBySystemKey resolves a person by the legacy 9-digit system key,
	// with the same normalization rule as GetPersonByStudentNumber.
	GetPersonBySystemKey(ctx context.Context, systemKey string, inc Include) (*Person, error)

	// GetPersons lists all persons.
	GetPersons(ctx context.Context, q Query) ([]*Person, error)

	// GetRegisteredStudents lists persons whose student record carries the
	// registered enrollment-status code.
	GetRegisteredStudents(ctx context.Context, q Query) ([]*Person, error)

	// GetActiveStudents lists persons flagged as active students by the store.
	GetActiveStudents(ctx context.Context, q Query) ([]*Person, error)

	// GetActiveEmployees lists persons flagged as active employees by the store.
	GetActiveEmployees(ctx context.Context, q Query) ([]*Person, error)

	// GetAdvisers lists persons holding an adviser role, optionally filtered
	// by advising program. An empty advisingProgram applies no filter.
	GetAdvisers(ctx context.Context, advisingProgram string, q Query) ([]*Person, error)

	// GetPersonsByAdviserNetID lists the caseload of the adviser identified by
	// the adviser's own network ID. Returns AdviserNotFoundError when the ID
	// resolves to zero or more than one adviser record; an adviser with no
	// advisees yields an empty list.
	GetPersonsByAdviserNetID(ctx context.Context, netID string, q Query) ([]*Person, error)

	// GetPersonsByAdviserRegID is GetPersonsByAdviserNetID keyed by the
	// adviser's registry ID.
	GetPersonsByAdviserRegID(ctx context.Context, regID string, q Query) ([]*Person, error)
}
