package notify

import "time"

type Config struct {
	// Enabled turns email delivery on. When false, Send is a logged no-op.
	Enabled bool

	// Endpoint is the transactional provider's send URL.
	Endpoint string

	// APIKey is sent as a bearer token.
	APIKey string

	From string

	// Recipients is a comma-separated address list.
	Recipients string

	Subject string

	Timeout time.Duration
}
