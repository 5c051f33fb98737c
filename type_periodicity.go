package statements

import (
	"fmt"
	"strings"
)

// Periodicity defines the length of the reporting periods in a statement.
type Periodicity int

const (
	Monthly Periodicity = iota
	Quarterly
	HalfYearly
	Yearly
)

func (p Periodicity) String() string {
	switch p {
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case HalfYearly:
		return "half-yearly"
	case Yearly:
		return "yearly"
	default:
		return "periodic"
	}
}

// Months returns the number of months a single period spans.
func (p Periodicity) Months() int {
	switch p {
	case Monthly:
		return 1
	case Quarterly:
		return 3
	case HalfYearly:
		return 6
	case Yearly:
		return 12
	default:
		panic(fmt.Sprintf("unknown periodicity %d", p))
	}
}

// ParsePeriodicity parses a string into a Periodicity.
func ParsePeriodicity(s string) (Periodicity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monthly", "month":
		return Monthly, nil
	case "quarterly", "quarter":
		return Quarterly, nil
	case "half-yearly", "halfyearly", "half":
		return HalfYearly, nil
	case "yearly", "year":
		return Yearly, nil
	default:
		return Monthly, fmt.Errorf("unknown periodicity %s", s)
	}
}
