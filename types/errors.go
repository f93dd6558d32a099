package types

// ConfigurationError signals a setup mistake (empty catalog, missing
// default template). It is fatal: callers surface it instead of degrading.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Reason
}
