package sortrace

import "fmt"

// ConfigError reports a rejected RunConfiguration. The race state is not
// mutated when a ConfigError is returned from StartRace.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface. The returned text matches the
// literal reasons required by the configuration validation contract.
func (e *ConfigError) Error() string {
	return e.Message
}

func configError(field, message string) *ConfigError {
	return &ConfigError{Field: field, Message: message}
}

// WrapError wraps an error with a message and preserves the cause chain,
// so that errors.Is/errors.As still match against cause.
func WrapError(message string, cause error) error {
	return fmt.Errorf("%s: %w", message, cause)
}

// invariantViolation panics to signal a programmer error in a Sorter or
// fairness Model implementation — e.g. a Step result reporting
// comparisons_used > budget, checked by RaceController.Step. These are not
// recoverable configuration errors: the contract forbids them rather than
// handling them.
func invariantViolation(msg string) {
	panic("sortrace: invariant violation: " + msg)
}
