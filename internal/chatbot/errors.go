package chatbot

import "errors"

var (
	// ErrEmptyText is returned by dashboard operations that need input
	// text. Resolve handles blank input itself with a prompt response.
	ErrEmptyText = errors.New("text must not be empty")

	// ErrGenerativeDisabled is returned by dashboard operations when no
	// generative provider is configured.
	ErrGenerativeDisabled = errors.New("generative provider not configured")
)
