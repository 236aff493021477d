package visitor

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidSession = errors.New("invalid session id")

// Service issues and checks the opaque ids that key visitor sessions.
type Service struct {
	ttl time.Duration
}

func New(ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &Service{ttl: ttl}
}

// Issue returns a fresh random session id.
func (s *Service) Issue() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Validate normalizes a presented session id, rejecting anything that is not
// a random (v4) UUID.
func (s *Service) Validate(raw string) (string, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil || id.Version() != 4 {
		return "", ErrInvalidSession
	}
	return id.String(), nil
}

// TTLSeconds is the cookie max-age.
func (s *Service) TTLSeconds() int {
	return int(s.ttl.Seconds())
}
