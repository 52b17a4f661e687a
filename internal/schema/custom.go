package schema

import (
	"fmt"
	"math"
)

// RoundedFloat always renders with two decimals.
type RoundedFloat float64

func (f RoundedFloat) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%.2f", f)), nil
}

// Round2 rounds half away from zero to two decimals.
func Round2(value float64) RoundedFloat {
	return RoundedFloat(math.Round(value*100) / 100)
}
