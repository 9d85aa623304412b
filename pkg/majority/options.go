package majority

// Option configures a single finder call.
type Option func(*config)

type config struct {
	validate bool
}

func defaultConfig() config {
	return config{validate: true}
}

func newConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithValidation toggles the counting pass that confirms the candidate.
// Validation is enabled by default.
func WithValidation(enabled bool) Option {
	return func(c *config) { c.validate = enabled }
}

// WithoutValidation skips the counting pass.
//
// The caller asserts that a majority element exists. When it does not, the
// returned element is undefined: it is whichever candidate survived the vote,
// and no error is reported.
func WithoutValidation() Option {
	return WithValidation(false)
}
