package domain

import (
	"errors"
	"fmt"

	m "github.com/RickarySanchez/RusticFourier/internal/model"
)

// Sentinel errors for the four failure kinds. Match them with errors.Is.
var (
	ErrRootNotFound       = errors.New("root not found")
	ErrFragmentUnresolved = errors.New("fragment unresolved")
	ErrIO                 = errors.New("io failure")
	ErrDecode             = errors.New("deserialization failure")
)

// ResolveError reports which kind of failure occurred and the input that
// triggered it.
type ResolveError struct {
	Kind  m.LoadStatus
	Input string
	Err   error
}

func (e *ResolveError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%v: %q", e.sentinel(), e.Input)
	}

	return fmt.Sprintf("%v: %q: %v", e.sentinel(), e.Input, e.Err)
}

// Is matches the sentinel for the error's kind.
func (e *ResolveError) Is(target error) bool {
	return target == e.sentinel()
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

func (e *ResolveError) sentinel() error {
	switch e.Kind {
	case m.RootNotFound:
		return ErrRootNotFound
	case m.FragmentUnresolved:
		return ErrFragmentUnresolved
	case m.IOFailure:
		return ErrIO
	case m.DecodeFailure:
		return ErrDecode
	}

	return fmt.Errorf("unexpected failure kind %v", e.Kind)
}

// StatusOf maps an error returned by this package to a LoadStatus. A nil
// error is Loaded; errors of unknown origin count as IOFailure.
func StatusOf(err error) m.LoadStatus {
	if err == nil {
		return m.Loaded
	}

	var resolveErr *ResolveError
	if errors.As(err, &resolveErr) {
		return resolveErr.Kind
	}

	return m.IOFailure
}
