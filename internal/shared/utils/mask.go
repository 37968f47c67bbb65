package utils

import "strings"

// MaskEmail hides the local part of an address so emails can appear in
// logs and audit details: "ana@example.com" becomes "a***@example.com".
func MaskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at < 0 {
		return "***"
	}
	local, domain := email[:at], email[at+1:]
	if len(local) <= 1 {
		return local + "***@" + domain
	}
	return local[:1] + "***@" + domain
}
