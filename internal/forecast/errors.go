package forecast

// ValidationError reports an input rejected before any trial runs.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func errThroughputTooShort() error {
	return &ValidationError{
		Field:   "throughput",
		Message: "Throughput data must contain at least 10 days of data",
	}
}

func errThroughputNegative() error {
	return &ValidationError{
		Field:   "throughput",
		Message: "Throughput values must be non-negative",
	}
}

func errConfidenceOutOfRange() error {
	return &ValidationError{
		Field:   "confidence_level",
		Message: "Confidence level must be between 0 and 99 (100% confidence is not possible in probabilistic forecasting)",
	}
}

func errSimulationsNotPositive() error {
	return &ValidationError{
		Field:   "num_simulations",
		Message: "Number of simulations must be greater than 0",
	}
}

func errTargetNotFuture() error {
	return &ValidationError{
		Field:   "target_date",
		Message: "Target date must be in the future",
	}
}

func errRemainingNotPositive() error {
	return &ValidationError{
		Field:   "stories_remaining",
		Message: "Stories remaining must be greater than 0",
	}
}

// validate checks the mode-independent invariants.
func (c Config) validate() error {
	if len(c.Throughput) < 10 {
		return errThroughputTooShort()
	}
	for _, v := range c.Throughput {
		if v < 0 {
			return errThroughputNegative()
		}
	}
	if c.Confidence <= 0 || c.Confidence >= 100 {
		return errConfidenceOutOfRange()
	}
	if c.Simulations <= 0 {
		return errSimulationsNotPositive()
	}
	return nil
}
