package auth

import "testing"

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("user1.pw")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	if hash == "user1.pw" {
		t.Fatalf("password must never be stored in clear form")
	}
	if !CheckPassword(hash, "user1.pw") {
		t.Fatalf("expected password to match")
	}
	if CheckPassword(hash, "wrong") {
		t.Fatalf("expected password mismatch")
	}
}
