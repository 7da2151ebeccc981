package memory

import "fmt"

// DefaultWeights is the fixed 19-element parameter vector for the memory
// model, taken from the FSRS v4 published defaults.
var DefaultWeights = [19]float64{
	0.4072, 1.1829, 3.1262, 15.4722, // w[0..3]  first-review stability
	7.2102, 0.5316, 1.0651, 0.0234, // w[4..7]  difficulty deltas
	1.616, 0.1544, 1.0824, // w[8..10] recall growth
	1.9813, 0.0953, 0.2975, 2.2042, // w[11..14] lapse recovery
	0.2407, 2.9466, 0.5034, // w[15..17] hard growth
	0.6567, // w[18] easy growth scaling
}

const (
	// DefaultRequestRetention is the target recall probability at the
	// scheduled review time.
	DefaultRequestRetention = 0.9

	// DefaultMaximumInterval caps the scheduled interval, in days.
	DefaultMaximumInterval = 36500
)

// Params configures an Engine. Zero values produce the defaults; see
// field comments.
type Params struct {
	Weights          [19]float64 `json:"weights"`           // zero → DefaultWeights
	RequestRetention float64     `json:"request_retention"` // zero → 0.9
	MaximumInterval  float64     `json:"maximum_interval"`  // zero → 36500 days
}

// DefaultParams returns the fixed default parameter set.
func DefaultParams() Params {
	return Params{
		Weights:          DefaultWeights,
		RequestRetention: DefaultRequestRetention,
		MaximumInterval:  DefaultMaximumInterval,
	}
}

// validate checks that the resolved parameters are usable.
func (p Params) validate() error {
	for i, w := range p.Weights {
		if w <= 0 {
			return fmt.Errorf("%w: w[%d] = %f must be positive", ErrInvalidParams, i, w)
		}
	}
	if p.RequestRetention <= 0 || p.RequestRetention > 1 {
		return fmt.Errorf("%w: request retention %f out of range (0, 1]", ErrInvalidParams, p.RequestRetention)
	}
	if p.MaximumInterval <= 0 {
		return fmt.Errorf("%w: maximum interval %f must be positive", ErrInvalidParams, p.MaximumInterval)
	}
	return nil
}
