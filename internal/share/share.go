// Package share builds the text and deep links offered when a user shares a completed task.
package share

import (
	"fmt"
	"net/url"
	"strings"
)

const emailSubject = "My Holistic Daily Task"

// Payload is what the share dialog offers. Clipboard copy uses Text.
type Payload struct {
	Text      string
	SMSLink   string
	EmailLink string
	URL       string
}

// Text returns the share sentence for a task, quoting the feedback when present.
func Text(title, feedback string) string {
	text := fmt.Sprintf("I just completed \"%s\" on Holistic Daily App!", title)
	if feedback == "" {
		return text
	}
	return text + " It made me feel: " + feedback
}

// Build renders the share payload. origin is the public app URL the share link points at.
func Build(origin, title, feedback string) Payload {
	text := Text(title, feedback)
	enc := encodeComponent(text)

	return Payload{
		Text:      text,
		SMSLink:   "sms:?body=" + enc,
		EmailLink: "mailto:?subject=" + encodeComponent(emailSubject) + "&body=" + enc,
		URL:       strings.TrimRight(origin, "/") + "?share=" + enc,
	}
}

// uriUnreserved undoes QueryEscape for the marks encodeURIComponent leaves alone.
var uriUnreserved = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeComponent percent-encodes s for a query value, with %20 for spaces.
func encodeComponent(s string) string {
	return uriUnreserved.Replace(url.QueryEscape(s))
}
