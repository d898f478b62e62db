package domain

import "fmt"

// Provider identifies a connected wearable-data source. A user may have at
// most one provider connected at a time.
type Provider string

const (
	ProviderFitbit Provider = "fitbit"
	ProviderWhoop  Provider = "whoop"
)

func ParseProvider(s string) (Provider, error) {
	switch Provider(s) {
	case ProviderFitbit:
		return ProviderFitbit, nil
	case ProviderWhoop:
		return ProviderWhoop, nil
	default:
		return "", fmt.Errorf("unknown provider: %q", s)
	}
}

func (p Provider) String() string { return string(p) }
