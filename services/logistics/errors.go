package logistics

import "fmt"

// QuoteError marks a rejected numeric input. The pricing core never coerces
// bad numbers to zero; callers get a typed error instead.
type QuoteError struct {
	Code    string
	Message string
}

func (e *QuoteError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewQuoteError(msg string) error {
	return &QuoteError{
		Code:    "quoteError",
		Message: msg,
	}
}
