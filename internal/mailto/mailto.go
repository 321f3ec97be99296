// Package mailto builds RFC 6068 compose links for contacting a guide about
// a scheduled trip. It performs no I/O; sending is the mail client's job.
package mailto

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/guide-directory-api/internal/models"
)

// Link is a pre-filled email compose action
type Link struct {
	Recipients []string `json:"recipients"`
	Subject    string   `json:"subject"`
	Body       string   `json:"body,omitempty"`
}

// busSeparators mark a multi-bus input
var busSeparators = []string{",", "and", "/", " "}

// BusText turns the free-text bus input into display text: "1" becomes
// "Bus 1", "1,2" becomes "Buses 1,2". Empty input stays empty and the
// templates degrade to extra whitespace.
func BusText(input string) string {
	if input == "" {
		return ""
	}
	for _, sep := range busSeparators {
		if strings.Contains(input, sep) {
			return "Buses " + input
		}
	}
	return "Bus " + input
}

// Build produces the compose link for one guide record. The personal email
// is included only when present.
func Build(rec models.GuideRecord, tripCode, dateText, busInput string) Link {
	recipients := []string{rec.WorkEmail}
	if rec.PersonalEmail != "" {
		recipients = append(recipients, rec.PersonalEmail)
	}

	busText := BusText(busInput)

	subject := strings.TrimSpace(fmt.Sprintf(
		"Incorporaciones %s - %s %s %s",
		rec.City, tripCode, dateText, busText,
	))

	body := strings.TrimSpace(fmt.Sprintf(
		"Hola %s,\n\n"+
			"Te contactamos por las incorporaciones de pasajeros del básico %s, fecha %s. %s.\n"+
			"Ciudad: %s.\n\n"+
			"Saludos,\nEquipo de Incorporaciones",
		rec.FirstName, tripCode, dateText, busText, rec.City,
	))

	return Link{
		Recipients: recipients,
		Subject:    subject,
		Body:       body,
	}
}

// URI renders the link as a mailto: URI with percent-encoded query values
func (l Link) URI() string {
	var b strings.Builder
	b.WriteString("mailto:")
	b.WriteString(strings.Join(l.Recipients, ","))
	b.WriteString("?subject=")
	b.WriteString(encode(l.Subject))
	if l.Body != "" {
		b.WriteString("&body=")
		b.WriteString(encode(l.Body))
	}
	return b.String()
}

// encode percent-encodes a header value per RFC 6068: spaces become %20,
// never "+".
func encode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
