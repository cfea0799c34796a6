package domain

import "errors"

var (
	// ErrFetch covers a digest fetch whose response was missing, malformed,
	// not an array, or empty after parsing.
	ErrFetch = errors.New("digest fetch failed")

	// ErrFetchInFlight rejects a fetch started while another is pending.
	ErrFetchInFlight = errors.New("digest fetch already in progress")

	// ErrNoLikedItems rejects learning when nothing in the digest is liked.
	ErrNoLikedItems = errors.New("no liked items to learn from")

	// ErrLearningService covers analyzer or persistence failure during
	// learning; the profile is left unchanged.
	ErrLearningService = errors.New("preference learning failed")

	// ErrMissingWebhook rejects dispatch before any request is attempted.
	ErrMissingWebhook = errors.New("webhook URL not configured")

	// ErrDeliveryTransport marks a webhook POST that failed at the
	// transport level.
	ErrDeliveryTransport = errors.New("webhook delivery failed")

	// ErrClipboard marks a failed clipboard write.
	ErrClipboard = errors.New("clipboard copy failed")

	// ErrUnknownItem marks feedback against an ID not in the current digest.
	ErrUnknownItem = errors.New("item not in current digest")
)
