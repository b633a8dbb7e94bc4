package notify

import (
	"strings"

	"github.com/samber/lo"
)

// Address is a single addressee in the provider payload.
type Address struct {
	Email string `json:"email"`
}

type personalization struct {
	To []Address `json:"to"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// message is the provider's send payload.
type message struct {
	Personalizations []personalization `json:"personalizations"`
	From             Address           `json:"from"`
	Subject          string            `json:"subject"`
	Content          []content         `json:"content"`
}

// ParseRecipients splits a comma-separated address list, trimming whitespace
// and dropping empty entries.
func ParseRecipients(list string) []Address {
	return lo.FilterMap(strings.Split(list, ","), func(raw string, _ int) (Address, bool) {
		addr := strings.TrimSpace(raw)
		return Address{Email: addr}, addr != ""
	})
}
