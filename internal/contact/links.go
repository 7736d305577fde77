// Package contact builds WhatsApp and mail deep links and holds the contact
// form state.
package contact

import (
	"net/url"
	"regexp"
	"strings"
)

// DefaultPhone is the studio WhatsApp number.
const DefaultPhone = "+56 9 5618 9912"

const waBase = "https://wa.me/"

var (
	emailPattern = regexp.MustCompile(`^[^\s\p{Z}@]+@[^\s\p{Z}@]+\.[^\s\p{Z}@]+$`)

	// QueryEscape escapes characters that encodeURIComponent leaves alone.
	componentUnescape = strings.NewReplacer(
		"+", "%20",
		"%21", "!",
		"%27", "'",
		"%28", "(",
		"%29", ")",
		"%2A", "*",
	)
)

// Digits keeps only the ASCII digits of phone.
func Digits(phone string) string {
	var b strings.Builder
	b.Grow(len(phone))
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// EncodeComponent percent-encodes s as a URI component (UTF-8, space as %20).
func EncodeComponent(s string) string {
	return componentUnescape.Replace(url.QueryEscape(s))
}

// WhatsAppLink returns https://wa.me/{digits}?text={message}. The digits are
// not validated; an empty result still yields a link.
func WhatsAppLink(phone, message string) string {
	return waBase + Digits(phone) + "?text=" + EncodeComponent(message)
}

// WhatsAppLinkOptional is the lenient variant used by page chrome: no link
// without digits, and no text parameter for an empty message.
func WhatsAppLinkOptional(phone, message string) (string, bool) {
	d := Digits(phone)
	if d == "" {
		return "", false
	}
	if message == "" {
		return waBase + d, true
	}
	return waBase + d + "?text=" + EncodeComponent(message), true
}

// MailtoLink returns a mailto: link for addr.
func MailtoLink(addr string) string {
	return "mailto:" + addr
}

// IsValidEmail applies the permissive one-@, one-dot, no-whitespace check.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// PrettyPhone formats Chilean mobile numbers as +56 9 XXXX XXXX. Anything
// else is returned with a leading +.
func PrettyPhone(phone string) string {
	if phone == "" {
		return ""
	}
	d := Digits(phone)
	if strings.HasPrefix(d, "56") && len(d) == 11 {
		return "+56 " + d[2:3] + " " + d[3:7] + " " + d[7:]
	}
	if strings.HasPrefix(phone, "+") {
		return phone
	}
	return "+" + phone
}
