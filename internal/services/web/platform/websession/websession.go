// Package websession signs and verifies the tokens stored in web cookies:
// the signed-in session and the short-lived OAuth2 sign-in flow.
//
// Both are HS256 JWTs keyed by AUTH_SECRET and told apart by audience, so a
// flow token can never be replayed as a session.
package websession

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/teamboost/gratitudewall/internal/platform/id"
)

const (
	// DefaultIssuer is the iss claim on every token this package signs.
	DefaultIssuer = "teamboost-web"
	// DefaultTTL is the session lifetime when none is configured.
	DefaultTTL = 30 * 24 * time.Hour
	// DefaultFlowTTL bounds how long a user may spend at the identity provider.
	DefaultFlowTTL = 10 * time.Minute

	// MinSecretLength is the shortest accepted signing secret in bytes.
	MinSecretLength = 16

	sessionAudience = "session"
	flowAudience    = "oauth-flow"
	clockLeeway     = 30 * time.Second
)

var (
	// ErrInvalidToken reports a token that is malformed, forged or expired.
	ErrInvalidToken = errors.New("invalid web token")
	// ErrMissingSubject reports a session token without a user id.
	ErrMissingSubject = errors.New("session subject is required")
)

// Principal is the identity carried by a session.
type Principal struct {
	UserID    string
	Name      string
	Email     string
	AvatarURL string
	ExpiresAt time.Time
}

// Flow is the sign-in state held between redirecting to the identity
// provider and handling its callback.
type Flow struct {
	State     string
	Verifier  string
	Next      string
	ExpiresAt time.Time
}

// Config controls Codec construction.
type Config struct {
	Secret  string
	Issuer  string
	TTL     time.Duration
	FlowTTL time.Duration
	Now     func() time.Time
}

// Codec issues and parses web tokens. It is safe for concurrent use.
type Codec struct {
	secret  []byte
	issuer  string
	ttl     time.Duration
	flowTTL time.Duration
	now     func() time.Time
}

type sessionClaims struct {
	jwt.RegisteredClaims
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"picture,omitempty"`
}

type flowClaims struct {
	jwt.RegisteredClaims
	State    string `json:"state"`
	Verifier string `json:"verifier"`
	Next     string `json:"next,omitempty"`
}

// NewCodec validates cfg and builds a Codec.
func NewCodec(cfg Config) (*Codec, error) {
	secret := strings.TrimSpace(cfg.Secret)
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("session secret must be at least %d bytes", MinSecretLength)
	}
	issuer := strings.TrimSpace(cfg.Issuer)
	if issuer == "" {
		issuer = DefaultIssuer
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	flowTTL := cfg.FlowTTL
	if flowTTL <= 0 {
		flowTTL = DefaultFlowTTL
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Codec{
		secret:  []byte(secret),
		issuer:  issuer,
		ttl:     ttl,
		flowTTL: flowTTL,
		now:     now,
	}, nil
}

// TTL returns the session lifetime.
func (c *Codec) TTL() time.Duration { return c.ttl }

// FlowTTL returns the sign-in flow lifetime.
func (c *Codec) FlowTTL() time.Duration { return c.flowTTL }

// IssueSession signs a session for p. p.ExpiresAt is ignored; the returned
// Principal carries the expiry actually signed.
func (c *Codec) IssueSession(p Principal) (string, Principal, error) {
	userID := strings.TrimSpace(p.UserID)
	if userID == "" {
		return "", Principal{}, ErrMissingSubject
	}
	registered, err := c.registered(sessionAudience, userID, c.ttl)
	if err != nil {
		return "", Principal{}, err
	}
	claims := sessionClaims{
		RegisteredClaims: registered,
		Name:             strings.TrimSpace(p.Name),
		Email:            strings.TrimSpace(p.Email),
		AvatarURL:        strings.TrimSpace(p.AvatarURL),
	}
	token, err := c.sign(claims)
	if err != nil {
		return "", Principal{}, err
	}
	return token, Principal{
		UserID:    userID,
		Name:      claims.Name,
		Email:     claims.Email,
		AvatarURL: claims.AvatarURL,
		ExpiresAt: registered.ExpiresAt.Time,
	}, nil
}

// ParseSession verifies a session token.
func (c *Codec) ParseSession(token string) (Principal, error) {
	var claims sessionClaims
	if err := c.parse(token, sessionAudience, &claims); err != nil {
		return Principal{}, err
	}
	userID := strings.TrimSpace(claims.Subject)
	if userID == "" {
		return Principal{}, ErrMissingSubject
	}
	return Principal{
		UserID:    userID,
		Name:      claims.Name,
		Email:     claims.Email,
		AvatarURL: claims.AvatarURL,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// IssueFlow signs sign-in flow state.
func (c *Codec) IssueFlow(f Flow) (string, error) {
	if strings.TrimSpace(f.State) == "" || strings.TrimSpace(f.Verifier) == "" {
		return "", errors.New("flow state and verifier are required")
	}
	registered, err := c.registered(flowAudience, "", c.flowTTL)
	if err != nil {
		return "", err
	}
	return c.sign(flowClaims{
		RegisteredClaims: registered,
		State:            f.State,
		Verifier:         f.Verifier,
		Next:             f.Next,
	})
}

// ParseFlow verifies sign-in flow state.
func (c *Codec) ParseFlow(token string) (Flow, error) {
	var claims flowClaims
	if err := c.parse(token, flowAudience, &claims); err != nil {
		return Flow{}, err
	}
	if claims.State == "" || claims.Verifier == "" {
		return Flow{}, ErrInvalidToken
	}
	return Flow{
		State:     claims.State,
		Verifier:  claims.Verifier,
		Next:      claims.Next,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (c *Codec) registered(audience string, subject string, ttl time.Duration) (jwt.RegisteredClaims, error) {
	jti, err := id.NewID()
	if err != nil {
		return jwt.RegisteredClaims{}, fmt.Errorf("token id: %w", err)
	}
	now := c.now().UTC().Truncate(time.Second)
	return jwt.RegisteredClaims{
		Issuer:    c.issuer,
		Subject:   subject,
		Audience:  jwt.ClaimStrings{audience},
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		ID:        jti,
	}, nil
}

func (c *Codec) sign(claims jwt.Claims) (string, error) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (c *Codec) parse(token string, audience string, claims jwt.Claims) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrInvalidToken
	}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(c.issuer),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
		jwt.WithLeeway(clockLeeway),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return nil
}
