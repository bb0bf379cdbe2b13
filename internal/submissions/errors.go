package submissions

import "errors"

// ErrMissingAddress is returned when the payload has no address.
var ErrMissingAddress = errors.New("address is required")

// Client-facing messages. Internal causes are logged, never echoed.
const (
	msgMissingAddress = "Address is required"
	msgIntakeFailed   = "Something went wrong. Please try again."
	msgListFailed     = "Failed to fetch submissions"
	msgAccepted       = "Thank you! We'll prepare your cash offer within 24 hours."
)

// clientMessage maps an intake error to the text returned to the caller.
func clientMessage(err error) string {
	if errors.Is(err, ErrMissingAddress) {
		return msgMissingAddress
	}
	return msgIntakeFailed
}
