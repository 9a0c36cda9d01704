package models

// Scale identifies a temperature scale.
type Scale int

const (
	Fahrenheit Scale = iota
	Celsius
)

var scaleNames = map[Scale]string{
	Fahrenheit: "F",
	Celsius:    "C",
}

func (s Scale) String() string {
	if n, ok := scaleNames[s]; ok {
		return n
	}
	return "?"
}

// ParseScale accepts exactly "F" or "C"; matching is case-sensitive.
func ParseScale(tok string) (Scale, bool) {
	for s, n := range scaleNames {
		if n == tok {
			return s, true
		}
	}
	return 0, false
}

// Temperature is a reading tagged with its scale.
type Temperature struct {
	Value float64 `json:"value"`
	Scale Scale   `json:"scale"`
}

// String renders "32 F".
func (t Temperature) String() string {
	return ftoa(t.Value) + " " + t.Scale.String()
}
