package auth

import (
	"testing"
	"time"

	"github.com/alqalam/college-backend/internal/app/models"
)

func testService(accessExp, refreshExp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  accessExp,
		RefreshTokenExp: refreshExp,
		TokenIssuer:     "test.alqalam.edu.ye",
	})
}

func testUser() *models.User {
	return &models.User{
		ID:       5,
		Email:    "ahmed.saleh@alqalam.edu.ye",
		RoleType: models.RoleStudent,
	}
}

func TestGenerateAndValidateTokenPair(t *testing.T) {
	svc := testService(time.Hour, 720*time.Hour)

	access, refresh, expiresIn, refreshExpiresIn, err := svc.GenerateTokenPair(testUser())
	if err != nil {
		t.Fatalf("GenerateTokenPair: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("empty token in pair")
	}
	if access == refresh {
		t.Error("access and refresh tokens are identical")
	}
	if expiresIn != 3600 {
		t.Errorf("expiresIn = %d, want 3600", expiresIn)
	}
	if refreshExpiresIn != int((720 * time.Hour).Seconds()) {
		t.Errorf("refreshExpiresIn = %d", refreshExpiresIn)
	}

	for _, token := range []string{access, refresh} {
		claims, err := svc.ValidateToken(token)
		if err != nil {
			t.Fatalf("ValidateToken: %v", err)
		}
		if claims.UserID != 5 {
			t.Errorf("UserID = %d, want 5", claims.UserID)
		}
		if claims.Email != "ahmed.saleh@alqalam.edu.ye" {
			t.Errorf("Email = %q", claims.Email)
		}
		if claims.RoleType != string(models.RoleStudent) {
			t.Errorf("RoleType = %q", claims.RoleType)
		}
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	access, _, _, _, err := testService(time.Hour, time.Hour).GenerateTokenPair(testUser())
	if err != nil {
		t.Fatal(err)
	}

	other := NewJWTService(JWTConfig{SecretKey: "different", AccessTokenExp: time.Hour, RefreshTokenExp: time.Hour})
	if _, err := other.ValidateToken(access); err == nil {
		t.Fatal("token signed with another secret validated")
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := testService(-time.Minute, time.Hour)
	access, _, _, _, err := svc.GenerateTokenPair(testUser())
	if err != nil {
		t.Fatal(err)
	}

	if _, err := svc.ValidateToken(access); err != ErrExpiredToken {
		t.Fatalf("err = %v, want ErrExpiredToken", err)
	}
}

func TestValidateGarbageToken(t *testing.T) {
	svc := testService(time.Hour, time.Hour)
	if _, err := svc.ValidateToken("not-a-jwt"); err == nil {
		t.Fatal("garbage token validated")
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer prefix", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "bare token", header: "abc.def.ghi", want: "abc.def.ghi"},
		{name: "empty header", header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ExtractBearerToken: %v", err)
			}
			if got != tt.want {
				t.Errorf("token = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Student123!")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "Student123!" {
		t.Fatal("password stored in plain text")
	}

	if !CheckPassword(hash, "Student123!") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}
