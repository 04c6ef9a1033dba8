package safesearch

import (
	"errors"
	"fmt"
)

var ErrLikelihoodOutOfRange = errors.New("likelihood code out of range")

// Likelihood is the label for one of the service's six ordinal levels.
type Likelihood string

const (
	Unknown      Likelihood = "UNKNOWN"
	VeryUnlikely Likelihood = "VERY_UNLIKELY"
	Unlikely     Likelihood = "UNLIKELY"
	Possible     Likelihood = "POSSIBLE"
	Likely       Likelihood = "LIKELY"
	VeryLikely   Likelihood = "VERY_LIKELY"
)

// likelihoodNames is indexed by the raw integer code returned by the service.
var likelihoodNames = [...]Likelihood{
	Unknown,
	VeryUnlikely,
	Unlikely,
	Possible,
	Likely,
	VeryLikely,
}

// Labels returns the six labels in ordinal order.
func Labels() []Likelihood {
	labels := make([]Likelihood, len(likelihoodNames))
	copy(labels, likelihoodNames[:])
	return labels
}

// LikelihoodFromCode maps a raw service code to its label.
func LikelihoodFromCode(code int32) (Likelihood, error) {
	if code < 0 || int(code) >= len(likelihoodNames) {
		return "", fmt.Errorf("%w: %d", ErrLikelihoodOutOfRange, code)
	}
	return likelihoodNames[code], nil
}

func (l Likelihood) String() string {
	return string(l)
}
