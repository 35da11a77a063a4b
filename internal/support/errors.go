package support

// InputError — caller sent something unusable (400).
type InputError struct {
	Msg string
}

func (e *InputError) Error() string { return e.Msg }

// ConfigurationError — deployment is missing something (500, not retryable).
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string { return e.Msg }

type UpstreamKind int

const (
	UpstreamGeneric UpstreamKind = iota
	UpstreamQuota
	UpstreamInvalidKey
)

// UpstreamError — the completion call failed.
type UpstreamError struct {
	Kind UpstreamKind
	Err  error
}

func (e *UpstreamError) Error() string {
	switch e.Kind {
	case UpstreamQuota:
		return "OpenAI API quota exceeded. Please check your OpenAI account."
	case UpstreamInvalidKey:
		return "Invalid OpenAI API key. Please check your OPENAI_API_KEY in .env file."
	default:
		return "Sorry, I encountered an error. Please try again later."
	}
}

func (e *UpstreamError) Unwrap() error { return e.Err }

var (
	errMessageRequired = &InputError{Msg: "Message is required"}
	errNotConfigured   = &ConfigurationError{
		Msg: "OpenAI API key not configured. Please add OPENAI_API_KEY to your .env file",
	}
)
