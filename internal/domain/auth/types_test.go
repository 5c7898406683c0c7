package auth

import (
	"testing"
	"time"
)

func TestIdentity_SimpleFields(t *testing.T) {
	id := Identity{UserID: "u", Email: "e", ExpiresAt: time.Now().Add(time.Hour)}
	if id.UserID != "u" || id.Email != "e" {
		t.Fatalf("unexpected identity: %+v", id)
	}
}
