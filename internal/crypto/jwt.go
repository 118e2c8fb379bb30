package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hotelmercedes/booking-api/internal/model"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// PurposeReset marks a token usable only by the password-reset step.
const PurposeReset = "reset"

// Claims represents the signed claim set carried by every issued token.
// Session tokens carry the role and an empty purpose; reset tokens carry
// the reset purpose and no role.
type Claims struct {
	jwt.RegisteredClaims
	UserID  int64      `json:"user_id"`
	Role    model.Role `json:"role,omitempty"`
	Purpose string     `json:"purpose,omitempty"`
}

// GenerateSessionToken creates a signed session token embedding the user
// id and role.
func GenerateSessionToken(userID int64, role model.Role, secret string, expiry time.Duration) (string, error) {
	return generate(Claims{UserID: userID, Role: role}, secret, expiry)
}

// GenerateResetToken creates a signed single-purpose token accepted only
// by the final password-recovery step.
func GenerateResetToken(userID int64, secret string, expiry time.Duration) (string, error) {
	return generate(Claims{UserID: userID, Purpose: PurposeReset}, secret, expiry)
}

func generate(claims Claims, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    "hotel-mercedes",
		Audience:  jwt.ClaimStrings{"booking-api"},
		ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken parses and validates a token string, returning the claims
// if valid. Expired, forged, or foreign tokens all map to ErrInvalidToken.
func ValidateToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	}, jwt.WithIssuer("hotel-mercedes"), jwt.WithAudience("booking-api"))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
