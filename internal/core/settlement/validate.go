package settlement

import (
	"errors"
	"fmt"

	"github.com/SscSPs/clinic_cash_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrPercentOutOfRange  = errors.New("share percentage must be between 0 and 100")
	ErrPercentSumExceeded = errors.New("share percentages add up to more than 100")
)

// ValidatePercentages is the optional strict check on percentage slots. The engine
// itself never calls it; split and residual accept any percentage.
func ValidatePercentages(shares domain.Shares) error {
	sum := decimal.Zero
	for _, share := range shares {
		if !share.Role.IsPercentage() || !share.Active() {
			continue
		}
		pct := share.SharePercent
		if pct.IsNegative() || pct.GreaterThan(hundredPercent) {
			return fmt.Errorf("%w: %s has %s%%", ErrPercentOutOfRange, share.Role, pct.String())
		}
		sum = sum.Add(pct)
	}
	if sum.GreaterThan(hundredPercent) {
		return fmt.Errorf("%w: total %s%%", ErrPercentSumExceeded, sum.String())
	}
	return nil
}

var hundredPercent = decimal.NewFromInt(100)
