package copyengine

import "fmt"

// DefaultSender is the signature line used when none is configured.
const DefaultSender = "Your Name"

// Brief is the onboarding payload sent to the generation service.
type Brief struct {
	ClientName string `json:"clientName"`
	Industry   string `json:"industry"`
	Audience   string `json:"audience"`
	Website    string `json:"website"`
	Strategy   string `json:"strategy"`
}

// Variation is one generated email. Values are produced only by the
// service and are never modified after decoding.
type Variation struct {
	ID       int    `json:"id,omitempty"`
	HookType string `json:"hookType"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	PS       string `json:"ps"`
}

// Compose returns the full email text signed with DefaultSender.
func (v Variation) Compose() string {
	return v.ComposeAs(DefaultSender)
}

// ComposeAs returns the full email text:
//
//	Subject: <subject>
//
//	<body>
//
//	– <sender>
//	<ps>
func (v Variation) ComposeAs(sender string) string {
	if sender == "" {
		sender = DefaultSender
	}
	return fmt.Sprintf("Subject: %s\n\n%s\n\n– %s\n%s", v.Subject, v.Body, sender, v.PS)
}

// generateResponse is the success body of POST /generate.
type generateResponse struct {
	Variations *[]Variation `json:"variations"`
}

// errorResponse is what the service sends alongside 4xx/5xx codes.
type errorResponse struct {
	Error string `json:"error"`
}

// healthResponse is the body of GET /health.
type healthResponse struct {
	Status string `json:"status"`
}
