package generative

import "errors"

var (
	// ErrDisabled means no provider is configured; callers fall back to
	// local resolution strategies immediately.
	ErrDisabled = errors.New("generative responder disabled")

	// ErrRateLimited means the request budget for the current window is
	// spent. The responder never queues; the caller falls back instead.
	ErrRateLimited = errors.New("generative request rate limited")

	// ErrEmptyReply means the provider answered with no usable text.
	ErrEmptyReply = errors.New("provider returned empty reply")

	// ErrUnsupported means the configured provider lacks the requested
	// secondary capability, such as sentiment analysis.
	ErrUnsupported = errors.New("capability not supported by provider")
)
