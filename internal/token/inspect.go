package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/snoopapp/snoop-client/internal/model"
)

// Inspector implements TokenInspector by peeking at JWT claims without
// signature verification. The client holds no signing key; the Gateway
// remains the authority on token validity. The only thing decided
// locally is whether a round trip is pointless because the token is
// already past its expiry.
type Inspector struct {
	parser *jwt.Parser
	now    func() time.Time
}

// NewInspector creates an Inspector using wall-clock time.
func NewInspector() model.TokenInspector {
	return &Inspector{
		parser: jwt.NewParser(),
		now:    time.Now,
	}
}

// Expired reports whether the token carries an exp claim in the past.
// Tokens that do not parse as JWTs, or parse without an exp claim, are
// reported as not expired.
func (i *Inspector) Expired(tokenString string) bool {
	claims := jwt.MapClaims{}
	_, _, err := i.parser.ParseUnverified(tokenString, claims)
	if err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Before(i.now())
}
