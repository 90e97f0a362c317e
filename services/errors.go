package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidReferralCode is non-fatal: signup proceeds without credits
	// and the caller surfaces it as a warning.
	ErrInvalidReferralCode = errors.New("invalid referral code")

	// ErrLessonNotInCourse means the visited lesson does not belong to the
	// course sequence. Data integrity problem, fatal to the request.
	ErrLessonNotInCourse = errors.New("lesson does not belong to this course")

	// ErrBalanceConflict means a concurrent request changed the balance
	// between read and write. Callers re-read and re-decide once.
	ErrBalanceConflict = errors.New("credit balance changed concurrently")
)

// InsufficientCreditsError reports a denied credit-funded enrollment along
// with the exact shortfall the user has to cover.
type InsufficientCreditsError struct {
	Price     decimal.Decimal
	Balance   decimal.Decimal
	Shortfall decimal.Decimal
}

func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits: need %s but have %s (short %s)",
		e.Price.StringFixed(2), e.Balance.StringFixed(2), e.Shortfall.StringFixed(2))
}

// NewInsufficientCreditsError builds the error from price and balance.
func NewInsufficientCreditsError(price, balance decimal.Decimal) *InsufficientCreditsError {
	return &InsufficientCreditsError{
		Price:     price,
		Balance:   balance,
		Shortfall: price.Sub(balance),
	}
}
