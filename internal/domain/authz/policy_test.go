package authz

import (
	"testing"

	"animal-shelter-api/internal/apperrors"
	"animal-shelter-api/internal/ports/auth"
)

func TestCan_CapabilityTable(t *testing.T) {
	cases := []struct {
		role string
		op   Operation
		want bool
	}{
		{"user", OpAnimalCreate, true},
		{"user", OpReportCreate, true},
		{"user", OpAdoptionCreate, true},
		{"user", OpAnimalDelete, false},
		{"user", OpAnimalSetStatus, false},
		{"user", OpAdoptionSetStatus, false},
		{"user", OpTreatmentCreate, false},

		{"admin", OpAnimalDelete, true},
		{"admin", OpAdoptionSetStatus, true},
		{"vet", OpAnimalSetStatus, true},
		{"vet", OpTreatmentCreate, true},

		{"ghost", OpAnimalCreate, false},
	}

	for _, tc := range cases {
		if got := Can(tc.role, tc.op); got != tc.want {
			t.Fatalf("Can(%s, %s) = %v, want %v", tc.role, tc.op, got, tc.want)
		}
	}
}

func TestRequire_NoSession_IsUnauthenticated(t *testing.T) {
	err := Require(auth.Claims{}, false, OpAnimalDelete)
	if !apperrors.IsKind(err, apperrors.KindUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}

func TestRequire_InsufficientRole_IsForbidden(t *testing.T) {
	claims := auth.Claims{UserID: "u-1", Role: "user"}
	err := Require(claims, true, OpAnimalDelete)
	if !apperrors.IsKind(err, apperrors.KindForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
}

func TestRequire_AdminDelete_OK(t *testing.T) {
	claims := auth.Claims{UserID: "u-1", Role: "admin"}
	if err := Require(claims, true, OpAnimalDelete); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}
