package persondir

import "fmt"

// PersonNotFoundError indicates a single-record lookup matched zero rows or
// fixture files.
type PersonNotFoundError struct {
	Key string
}

func (e PersonNotFoundError) Error() string {
	if e.Key == "" {
		return "person not found"
	}
	return fmt.Sprintf("person %q not found", e.Key)
}

// Is enables errors.Is matching on PersonNotFoundError.
func (e PersonNotFoundError) Is(target error) bool {
	_, ok := target.(PersonNotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*PersonNotFoundError)
	return ok
}

// ErrPersonNotFound is the sentinel for errors.Is checks.
var ErrPersonNotFound = PersonNotFoundError{}

// AdviserNotFoundError indicates an adviser-identity resolution step matched
// zero or more than one adviser record when exactly one was required.
type AdviserNotFoundError struct {
	Identifier string
}

func (e AdviserNotFoundError) Error() string {
	if e.Identifier == "" {
		return "adviser not found"
	}
	return fmt.Sprintf("adviser %q not found", e.Identifier)
}

func (e AdviserNotFoundError) Is(target error) bool {
	_, ok := target.(AdviserNotFoundError)
	if ok {
		return true
	}
	_, ok = target.(*AdviserNotFoundError)
	return ok
}

var ErrAdviserNotFound = AdviserNotFoundError{}

// AmbiguousIdentityError indicates a combined current-or-historical ID
// predicate resolved to more than one distinct person. This is a
// data-integrity condition the layer surfaces instead of picking a row.
type AmbiguousIdentityError struct {
	Key     string
	Matches int
}

func (e AmbiguousIdentityError) Error() string {
	return fmt.Sprintf("identifier %q resolves to multiple persons", e.Key)
}

func (e AmbiguousIdentityError) Is(target error) bool {
	_, ok := target.(AmbiguousIdentityError)
	if ok {
		return true
	}
	_, ok = target.(*AmbiguousIdentityError)
	return ok
}

var ErrAmbiguousIdentity = AmbiguousIdentityError{}

// ConnectionError indicates the live store is unreachable or the connection
// factory failed. The layer performs no retries.
type ConnectionError struct {
	Err error
}

func (e ConnectionError) Error() string {
	if e.Err == nil {
		return "store connection failed"
	}
	return fmt.Sprintf("store connection failed: %v", e.Err)
}

func (e ConnectionError) Unwrap() error { return e.Err }

func (e ConnectionError) Is(target error) bool {
	_, ok := target.(ConnectionError)
	if ok {
		return true
	}
	_, ok = target.(*ConnectionError)
	return ok
}

var ErrConnection = ConnectionError{}
