package usecase

import (
	"net/url"
	"strings"
)

// MailtoNotice is surfaced with every mail handoff: mailto links cannot
// carry attachments, so the exported PDF must be attached by hand.
const MailtoNotice = "Your resume PDF has been saved. Please attach it to the email in your mail client."

// MailtoLink builds a mailto URI with percent-encoded subject and body.
func MailtoLink(to, subject, body string) string {
	return "mailto:" + to + "?subject=" + escapeComponent(subject) + "&body=" + escapeComponent(body)
}

// escapeComponent percent-encodes a mailto query component. QueryEscape's
// plus-for-space convention is not understood by mail clients, so spaces
// become %20.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
