package errors

import "fmt"

// Recovered converts a recovered panic value and optional stack trace into
// an error wrapping ErrPanicRecovery. A nil panic value yields nil. When the
// panic value is itself an error it stays reachable through errors.Is.
func Recovered(value any, stack []byte) error {
	if value == nil {
		return nil
	}

	err := fmt.Errorf("%w: %v", ErrPanicRecovery, value)
	if cause, ok := value.(error); ok {
		err = fmt.Errorf("%w: %w", ErrPanicRecovery, cause)
	}

	if stack == nil {
		return err
	}

	return fmt.Errorf("%w\nstack trace:\n%s", err, stack)
}
