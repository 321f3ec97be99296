package mailto_test

import (
	"strings"
	"testing"

	"github.com/guide-directory-api/internal/mailto"
	"github.com/guide-directory-api/internal/models"
)

func TestBusText(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"1", "Bus 1"},
		{"12", "Bus 12"},
		{"1,2", "Buses 1,2"},
		{"1/2", "Buses 1/2"},
		{"1 2", "Buses 1 2"},
		{"1and2", "Buses 1and2"},
	}

	for _, tc := range cases {
		got := mailto.BusText(tc.input)
		if got != tc.expected {
			t.Errorf("BusText(%q): expected %q, got %q", tc.input, tc.expected, got)
		}
	}
}

func TestBuild_SingleRecipient(t *testing.T) {
	rec := models.GuideRecord{
		ID:        "g-1",
		City:      "Lima",
		FirstName: "Ana",
		WorkEmail: "a@x.com",
	}

	link := mailto.Build(rec, "B1", "12/05", "1")

	if len(link.Recipients) != 1 || link.Recipients[0] != "a@x.com" {
		t.Errorf("Expected recipients [a@x.com], got %v", link.Recipients)
	}
	if !strings.Contains(link.Subject, "Lima") {
		t.Errorf("Subject should contain the city, got %q", link.Subject)
	}
	if !strings.Contains(link.Subject, "B1") {
		t.Errorf("Subject should contain the trip code, got %q", link.Subject)
	}
	if !strings.Contains(link.Subject, "Bus 1") {
		t.Errorf("Subject should contain the bus text, got %q", link.Subject)
	}
	if !strings.Contains(link.Body, "Ana") {
		t.Errorf("Body should greet the guide by first name, got %q", link.Body)
	}
}

func TestBuild_PersonalEmailAppended(t *testing.T) {
	rec := models.GuideRecord{
		City:          "Cusco",
		FirstName:     "Luis",
		WorkEmail:     "l@emv.com",
		PersonalEmail: "luis@personal.com",
	}

	link := mailto.Build(rec, "B2", "01/06", "1,2")

	if len(link.Recipients) != 2 {
		t.Fatalf("Expected 2 recipients, got %v", link.Recipients)
	}
	if link.Recipients[1] != "luis@personal.com" {
		t.Errorf("Expected personal email second, got %q", link.Recipients[1])
	}
	if !strings.Contains(link.Subject, "Buses 1,2") {
		t.Errorf("Expected plural bus text in subject, got %q", link.Subject)
	}
}

func TestURI_Encoding(t *testing.T) {
	rec := models.GuideRecord{
		City:      "Lima",
		FirstName: "Ana",
		WorkEmail: "a@x.com",
	}

	uri := mailto.Build(rec, "B1", "12/05", "1").URI()

	if !strings.HasPrefix(uri, "mailto:a@x.com?subject=") {
		t.Errorf("Unexpected URI prefix: %q", uri)
	}
	if strings.Contains(uri, "+") {
		t.Errorf("Spaces must be %%20, not +: %q", uri)
	}
	if !strings.Contains(uri, "%20") {
		t.Errorf("Expected percent-encoded spaces in %q", uri)
	}
	if !strings.Contains(uri, "&body=") {
		t.Errorf("Expected body parameter in %q", uri)
	}
	// Raw spaces would break the link in mail clients
	if strings.Contains(uri, " ") {
		t.Errorf("URI contains a raw space: %q", uri)
	}
}

func TestURI_MultipleRecipients(t *testing.T) {
	link := mailto.Link{
		Recipients: []string{"a@x.com", "b@y.com"},
		Subject:    "Hola",
	}

	uri := link.URI()

	if !strings.HasPrefix(uri, "mailto:a@x.com,b@y.com?subject=") {
		t.Errorf("Expected comma-joined recipients, got %q", uri)
	}
	if strings.Contains(uri, "&body=") {
		t.Errorf("Empty body must be omitted: %q", uri)
	}
}

func TestBuild_EmptyBusDegrades(t *testing.T) {
	rec := models.GuideRecord{
		City:      "Lima",
		FirstName: "Ana",
		WorkEmail: "a@x.com",
	}

	link := mailto.Build(rec, "B1", "12/05", "")

	if strings.Contains(link.Subject, "Bus") {
		t.Errorf("Empty bus input should leave no bus text, got %q", link.Subject)
	}
	if strings.HasSuffix(link.Subject, " ") {
		t.Errorf("Subject should be trimmed, got %q", link.Subject)
	}
}

func TestBuild_Deterministic(t *testing.T) {
	rec := models.GuideRecord{City: "Lima", FirstName: "Ana", WorkEmail: "a@x.com"}

	first := mailto.Build(rec, "B1", "12/05", "1")
	second := mailto.Build(rec, "B1", "12/05", "1")

	if first.URI() != second.URI() {
		t.Errorf("Builder must be deterministic: %q vs %q", first.URI(), second.URI())
	}
}
