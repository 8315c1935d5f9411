package jwt

import "github.com/golang-jwt/jwt/v5"

// Claims carries the player the token was issued to in Subject.
type Claims struct {
	jwt.RegisteredClaims
	Name string `json:"name,omitempty"`
}
