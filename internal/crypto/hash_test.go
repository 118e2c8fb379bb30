package crypto

import (
	"strings"
	"testing"
)

func TestHashSecret_RoundTrip(t *testing.T) {
	hash, err := HashSecret("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashSecret: %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Errorf("expected PHC-encoded argon2id hash, got %q", hash)
	}

	match, err := VerifySecret("correct horse battery staple", hash)
	if err != nil {
		t.Fatalf("VerifySecret: %v", err)
	}
	if !match {
		t.Error("expected matching secret to verify")
	}
}

func TestVerifySecret_WrongSecret(t *testing.T) {
	hash, err := HashSecret("password123")
	if err != nil {
		t.Fatalf("HashSecret: %v", err)
	}

	match, err := VerifySecret("password124", hash)
	if err != nil {
		t.Fatalf("VerifySecret: %v", err)
	}
	if match {
		t.Error("wrong secret must not verify")
	}
}

func TestHashSecret_FreshSaltPerCall(t *testing.T) {
	first, err := HashSecret("same secret")
	if err != nil {
		t.Fatalf("HashSecret: %v", err)
	}
	second, err := HashSecret("same secret")
	if err != nil {
		t.Fatalf("HashSecret: %v", err)
	}

	if first == second {
		t.Error("two hashes of the same secret must differ (random salt)")
	}
}

func TestVerifySecret_MalformedHash(t *testing.T) {
	cases := []string{
		"",
		"not-a-hash",
		"$argon2id$v=19$m=65536,t=3,p=2$onlyfiveparts",
		"$bcrypt$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=65536,t=3,p=2$c2FsdA$aGFzaA",
	}

	for _, encoded := range cases {
		if _, err := VerifySecret("whatever", encoded); err == nil {
			t.Errorf("expected error for malformed hash %q", encoded)
		}
	}
}
