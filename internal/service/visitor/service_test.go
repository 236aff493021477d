package visitor

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestIssueAndValidate(t *testing.T) {
	svc := New(time.Hour)
	id, err := svc.Issue()
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	got, err := svc.Validate("  " + strings.ToUpper(id) + " ")
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if got != id {
		t.Fatalf("expected normalized %s, got %s", id, got)
	}
	if svc.TTLSeconds() != 3600 {
		t.Fatalf("TTLSeconds = %d", svc.TTLSeconds())
	}
}

func TestValidateRejects(t *testing.T) {
	svc := New(0)
	for _, raw := range []string{"", "not-a-uuid", "6ba7b810-9dad-11d1-80b4-00c04fd430c8"} {
		if _, err := svc.Validate(raw); !errors.Is(err, ErrInvalidSession) {
			t.Fatalf("Validate(%q) = %v, want ErrInvalidSession", raw, err)
		}
	}
	if svc.TTLSeconds() != 30*24*3600 {
		t.Fatalf("default TTL = %d", svc.TTLSeconds())
	}
}
