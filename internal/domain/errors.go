package domain

import "fmt"

// UnresolvedError reports that no resolution step produced an address for
// the given input. It carries the original input verbatim so that callers
// can tell "not found" apart from other fault classes.
type UnresolvedError struct {
	Input string
}

func (e *UnresolvedError) Error() string {
	return fmt.Sprintf("could not resolve address or domain: %s", e.Input)
}
