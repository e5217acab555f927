package request

import (
	"fmt"

	"github.com/dlclark/regexp2"
	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

// monthPattern pins cost entries to a YYYY-MM period label.
var monthPattern = regexp2.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`, regexp2.None)

func validMonth(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string")
	}

	matched, err := monthPattern.MatchString(s)
	if err != nil {
		return fmt.Errorf("monthPattern.MatchString -> %w", err)
	}
	if !matched {
		return fmt.Errorf("must be formatted as YYYY-MM")
	}

	return nil
}

func nonNegativeAmount(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		if p, isPtr := value.(*decimal.Decimal); isPtr {
			if p == nil {
				return nil
			}
			d = *p
		} else {
			return fmt.Errorf("must be a number")
		}
	}

	if d.IsNegative() {
		return fmt.Errorf("must not be negative")
	}

	return nil
}

func positiveAmount(value interface{}) error {
	d, ok := value.(decimal.Decimal)
	if !ok {
		return fmt.Errorf("must be a number")
	}

	if !d.IsPositive() {
		return fmt.Errorf("must be greater than zero")
	}

	return nil
}
