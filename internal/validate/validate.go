package validate

import (
	"regexp"
	"strings"
)

var (
	reEmail  = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reID     = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	reUser   = regexp.MustCompile(`^[A-Za-z0-9_.-]{3,30}$`)
	reStatus = regexp.MustCompile(`^[A-Z][A-Z_]{0,29}$`)
)

// ID validates an opaque resource identifier (user/product/order ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 50 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

func Username(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reUser.MatchString(s)
}

// ProductName validates a displayable product name with a reasonable max length.
func ProductName(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 100 {
		return "", false
	}
	return s, true
}

// Status validates an order status tag like PLACED or PAYMENT_FAILED.
// Empty input is allowed by callers that treat it as "leave unchanged".
func Status(s string) (string, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	return s, reStatus.MatchString(s)
}

// Password enforces a simple length window for login checks.
func Password(s string) bool {
	l := len(s)
	return l >= 8 && l <= 72 // bcrypt input cap
}
