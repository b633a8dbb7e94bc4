package notify

import "errors"

var (
	ErrNoRecipients = errors.New("no recipients configured")
	ErrSendFailed   = errors.New("failed to send notification")
)
