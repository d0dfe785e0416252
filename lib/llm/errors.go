package llm

import "errors"

// Failure classes for upstream AI calls. Handlers map these onto HTTP
// statuses: missing key is a configuration fault (500 before any network
// call), 429/402 pass through verbatim, parse failures are distinct from
// transport failures so the UI can suggest a retry instead of implying a
// billing problem.
var (
	ErrMissingAPIKey   = errors.New("AI API key is not configured")
	ErrRateLimited     = errors.New("AI rate limit exceeded")
	ErrPaymentRequired = errors.New("AI credits exhausted")
	ErrUpstream        = errors.New("AI request failed")
	ErrMalformedReply  = errors.New("failed to parse AI response")
)
