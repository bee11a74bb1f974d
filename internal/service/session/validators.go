package session

import (
	"net/mail"
	"strings"
)

func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}

// roleForEmail - упрощенная выдача роли до появления настоящего бэкенда авторизации.
func roleForEmail(email string) string {
	if strings.Contains(strings.ToLower(email), "molino") {
		return "admin_molino"
	}
	return "dueno_panaderia"
}
