package response

const (
	// MessageSuccess is the message attached to successful responses.
	MessageSuccess = "success"

	// DefaultErrorMessage hides internal failures from API consumers.
	DefaultErrorMessage = "Something went wrong. Please try again later."

	// InternalServerErrorCode is the envelope code for unexpected failures.
	InternalServerErrorCode = 500
)
