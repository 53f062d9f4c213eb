package vonage

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenTTL = 15 * time.Minute

// applicationToken issues the short-lived RS256 JWT the Voice API expects.
func (c *Client) applicationToken() (string, error) {
	now := c.clock.Now()
	claims := jwt.MapClaims{
		"application_id": c.cfg.ApplicationID,
		"iat":            now.Unix(),
		"exp":            now.Add(tokenTTL).Unix(),
		"jti":            uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(c.key)
}
