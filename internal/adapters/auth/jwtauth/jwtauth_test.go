package jwtauth

import (
	"context"
	"testing"
	"time"

	"animal-shelter-api/internal/apperrors"
	"animal-shelter-api/internal/ports/auth"
)

func TestIssueAndVerifyRoundTrip(t *testing.T) {
	svc := New("test-key", "animal-shelter-api", time.Hour)
	ctx := context.Background()

	token, err := svc.Issue(ctx, auth.Claims{UserID: "u1", Role: "vet"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	got, err := svc.Verify(ctx, token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if got.UserID != "u1" || got.Role != "vet" {
		t.Fatalf("claims inesperados: %+v", got)
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	ctx := context.Background()
	token, err := New("key-a", "animal-shelter-api", time.Hour).Issue(ctx, auth.Claims{UserID: "u1", Role: "user"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	_, err = New("key-b", "animal-shelter-api", time.Hour).Verify(ctx, token)
	if !apperrors.IsKind(err, apperrors.KindUnauthenticated) {
		t.Fatalf("esperaba Unauthenticated con otra key, got %v", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	svc := New("test-key", "animal-shelter-api", time.Hour)
	ctx := context.Background()

	issued := time.Now()
	svc.now = func() time.Time { return issued }
	token, err := svc.Issue(ctx, auth.Claims{UserID: "u1", Role: "user"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	svc.now = func() time.Time { return issued.Add(2 * time.Hour) }
	_, err = svc.Verify(ctx, token)
	if !apperrors.IsKind(err, apperrors.KindUnauthenticated) {
		t.Fatalf("esperaba Unauthenticated por expiración, got %v", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := New("test-key", "animal-shelter-api", time.Hour)

	_, err := svc.Verify(context.Background(), "not-a-token")
	if !apperrors.IsKind(err, apperrors.KindUnauthenticated) {
		t.Fatalf("esperaba Unauthenticated, got %v", err)
	}
}
