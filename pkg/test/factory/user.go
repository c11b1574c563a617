package factory

import (
	fab "github.com/Goldziher/fabricator"
	"golang.org/x/crypto/bcrypt"
)

// DefaultPassword is the plaintext behind every generated digest.
const DefaultPassword = "12345678"

// NewUser builds a T with random fields. A Password entry is added with the
// bcrypt digest of DefaultPassword unless the caller supplies one.
func NewUser[T any](customData ...map[string]any) T {
	instance := fab.New(*new(T))

	hasPassword := false

	for _, data := range customData {
		if _, exists := data["Password"]; exists {
			hasPassword = true
			break
		}
	}

	if !hasPassword {
		digest, _ := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)

		customData = append(customData, map[string]any{
			"Password": string(digest),
		})
	}

	return instance.Build(customData...)
}
