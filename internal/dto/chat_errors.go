package dto

import "fmt"

// LimitExceededError is returned when a caller has spent their daily message
// allowance. Carries the counters the 429 body exposes.
type LimitExceededError struct {
	DailyUsage int
	DailyLimit int
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("daily message limit reached (%d/%d)", e.DailyUsage, e.DailyLimit)
}

// ProviderUnavailableError wraps a completion provider failure. Nothing is
// persisted when this is returned.
type ProviderUnavailableError struct {
	Err error
}

func (e *ProviderUnavailableError) Error() string {
	return fmt.Sprintf("completion provider unavailable: %v", e.Err)
}

func (e *ProviderUnavailableError) Unwrap() error {
	return e.Err
}

// AnswerNotSavedError signals that an answer was generated but the exchange
// could not be stored. The caller paid the provider cost with nothing saved.
type AnswerNotSavedError struct {
	Err error
}

func (e *AnswerNotSavedError) Error() string {
	return fmt.Sprintf("answer generated but not saved: %v", e.Err)
}

func (e *AnswerNotSavedError) Unwrap() error {
	return e.Err
}
