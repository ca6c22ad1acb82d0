package rates

import "fmt"

// Cross returns the from/to rate imputed from a table quoted against
// base. Pairs not involving base are derived by dividing the two base
// quotes.
func (t Table) Cross(base, from, to string) (float64, error) {
	if from == to {
		return 1, nil
	}
	if from == base {
		return t.lookup(base, to)
	}

	fromRate, err := t.lookup(base, from)
	if err != nil {
		return 0, err
	}
	if fromRate == 0 {
		return 0, fmt.Errorf("rate %s/%s is zero, cannot divide", base, from)
	}

	if to == base {
		return 1 / fromRate, nil
	}

	toRate, err := t.lookup(base, to)
	if err != nil {
		return 0, err
	}
	return toRate / fromRate, nil
}

func (t Table) lookup(base, code string) (float64, error) {
	rate, ok := t[code]
	if !ok {
		return 0, fmt.Errorf("no %s/%s rate in table", base, code)
	}
	return rate, nil
}
