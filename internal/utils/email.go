package utils

import "regexp"

// Нарочно простая проверка: local@domain.tld, без экзотики.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
