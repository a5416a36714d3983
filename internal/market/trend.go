package market

// Trend is the prevailing market regime.
type Trend uint8

const (
	TrendBullish Trend = iota
	TrendBearish
	TrendSideways
	TrendVolatile
)

func (t Trend) String() string {
	switch t {
	case TrendBullish:
		return "Bullish"
	case TrendBearish:
		return "Bearish"
	case TrendSideways:
		return "Sideways"
	case TrendVolatile:
		return "Volatile"
	default:
		return "Unknown"
	}
}

// ParseTrend maps a trend name back to its value. Unrecognized names map to
// TrendSideways.
func ParseTrend(name string) Trend {
	switch name {
	case "Bullish":
		return TrendBullish
	case "Bearish":
		return TrendBearish
	case "Volatile":
		return TrendVolatile
	default:
		return TrendSideways
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t Trend) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Trend) UnmarshalText(text []byte) error {
	*t = ParseTrend(string(text))
	return nil
}
