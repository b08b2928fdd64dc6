package auth

import (
	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenClaims is the typed JWT issued to clients. The email is the only
// application claim; role checks always go back to the stored user record.
type AccessTokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}
