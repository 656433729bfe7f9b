package auth

import (
	"testing"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := NewJWTService("test-secret", "test-issuer")

	token, err := svc.GenerateToken("checkout-service")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	caller, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if caller != "checkout-service" {
		t.Fatalf("caller got %q want %q", caller, "checkout-service")
	}
}

func TestValidateToken_RejectsWrongSecret(t *testing.T) {
	token, err := NewJWTService("secret-a", "issuer").GenerateToken("caller")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := NewJWTService("secret-b", "issuer").ValidateToken(token); err != ErrInvalidToken {
		t.Fatalf("err got %v want ErrInvalidToken", err)
	}
}

func TestValidateToken_RejectsGarbage(t *testing.T) {
	if _, err := NewJWTService("secret", "issuer").ValidateToken("not.a.token"); err != ErrInvalidToken {
		t.Fatalf("err got %v want ErrInvalidToken", err)
	}
}
