package types

import "fmt"

// Tier is the specificity level of a resolved label. Higher tiers are more
// precise. The zero value means "not resolved".
type Tier int

const (
	TierArea Tier = iota + 1
	TierStreet
	TierPOI
)

func (t Tier) String() string {
	switch t {
	case TierArea:
		return "area"
	case TierStreet:
		return "street"
	case TierPOI:
		return "poi"
	default:
		return "unresolved"
	}
}

// MarshalText encodes the tier for JSON and storage boundaries. The wire
// strings are part of the cache format and must stay stable.
func (t Tier) MarshalText() ([]byte, error) {
	if t < TierArea || t > TierPOI {
		return nil, fmt.Errorf("cannot encode tier %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *Tier) UnmarshalText(text []byte) error {
	parsed, err := ParseTier(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseTier converts a storage string back into a Tier.
func ParseTier(s string) (Tier, error) {
	switch s {
	case "area":
		return TierArea, nil
	case "street":
		return TierStreet, nil
	case "poi":
		return TierPOI, nil
	default:
		return 0, fmt.Errorf("unknown tier %q", s)
	}
}
