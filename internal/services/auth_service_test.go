package services

import (
	"errors"
	"testing"

	"github.com/taskmanager/backend/internal/dto"
	"github.com/taskmanager/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func TestSignupAndLogin(t *testing.T) {
	db := newTestDB(t)
	cfg := testConfig()
	svc := NewAuthService(db, cfg, nil)

	resp, err := svc.Signup(&dto.SignupRequest{Userid: "alice", Password: "pw1", Role: "user"})
	if err != nil {
		t.Fatalf("Signup: %v", err)
	}
	if resp.Userid != "alice" || resp.Role != "user" {
		t.Errorf("Signup response = %+v, want userid=alice role=user", resp)
	}
	claims, err := VerifyToken(cfg, resp.Token)
	if err != nil {
		t.Fatalf("signup token does not verify: %v", err)
	}
	if claims.Userid != "alice" || claims.Role != "user" {
		t.Errorf("token claims = %+v, want alice/user", claims)
	}

	var stored models.User
	if err := db.Where("userid = ?", "alice").First(&stored).Error; err != nil {
		t.Fatalf("fetch user: %v", err)
	}
	if stored.Password == "pw1" {
		t.Fatal("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("pw1")); err != nil {
		t.Errorf("stored digest does not match password: %v", err)
	}

	login, err := svc.Login(&dto.LoginRequest{Userid: "alice", Password: "pw1"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if login.Userid != "alice" || login.Token == "" {
		t.Errorf("Login response = %+v", login)
	}
}

func TestSignupDuplicateUserid(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig(), nil)

	if _, err := svc.Signup(&dto.SignupRequest{Userid: "bob", Password: "pw", Role: "guide"}); err != nil {
		t.Fatalf("first Signup: %v", err)
	}
	_, err := svc.Signup(&dto.SignupRequest{Userid: "bob", Password: "other", Role: "user"})
	if !errors.Is(err, ErrUserExists) {
		t.Errorf("second Signup = %v, want ErrUserExists", err)
	}
}

func TestSignupMissingFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig(), nil)

	cases := []dto.SignupRequest{
		{Password: "pw", Role: "user"},
		{Userid: "bob", Role: "user"},
		{Userid: "bob", Password: "pw"},
	}
	for _, req := range cases {
		_, err := svc.Signup(&req)
		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Errorf("Signup(%+v) = %v, want ValidationError", req, err)
		}
	}
}

func TestSignupStoreFailureIsNotDuplicate(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig(), nil)

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql.DB: %v", err)
	}
	sqlDB.Close()

	_, err = svc.Signup(&dto.SignupRequest{Userid: "bob", Password: "pw", Role: "user"})
	if err == nil {
		t.Fatal("Signup succeeded against a closed store")
	}
	if errors.Is(err, ErrUserExists) {
		t.Errorf("store failure reported as ErrUserExists: %v", err)
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		t.Errorf("store failure reported as validation error: %v", err)
	}
}

func TestSignupDigestsDiffer(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig(), nil)

	for _, userid := range []string{"carol", "dave"} {
		if _, err := svc.Signup(&dto.SignupRequest{Userid: userid, Password: "same-pw", Role: "user"}); err != nil {
			t.Fatalf("Signup(%s): %v", userid, err)
		}
	}

	var users []models.User
	if err := db.Find(&users).Error; err != nil {
		t.Fatalf("fetch users: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("got %d users, want 2", len(users))
	}
	if users[0].Password == users[1].Password {
		t.Error("identical passwords produced identical digests; salt missing")
	}
}

func TestLoginDoesNotDistinguishFailures(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig(), nil)

	if _, err := svc.Signup(&dto.SignupRequest{Userid: "erin", Password: "pw1", Role: "user"}); err != nil {
		t.Fatalf("Signup: %v", err)
	}

	_, unknownErr := svc.Login(&dto.LoginRequest{Userid: "nobody", Password: "pw1"})
	_, wrongPwErr := svc.Login(&dto.LoginRequest{Userid: "erin", Password: "wrong"})

	if !errors.Is(unknownErr, ErrInvalidCredentials) {
		t.Errorf("unknown user = %v, want ErrInvalidCredentials", unknownErr)
	}
	if !errors.Is(wrongPwErr, ErrInvalidCredentials) {
		t.Errorf("wrong password = %v, want ErrInvalidCredentials", wrongPwErr)
	}
	if unknownErr.Error() != wrongPwErr.Error() {
		t.Error("failure messages differ; login leaks which userids exist")
	}
}

func TestLoginMissingFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig(), nil)

	_, err := svc.Login(&dto.LoginRequest{Userid: "alice"})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Errorf("Login without password = %v, want ValidationError", err)
	}
}

func TestListUsers(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, testConfig(), nil)

	for _, userid := range []string{"frank", "grace"} {
		if _, err := svc.Signup(&dto.SignupRequest{Userid: userid, Password: "pw", Role: "user"}); err != nil {
			t.Fatalf("Signup(%s): %v", userid, err)
		}
	}

	users, err := svc.ListUsers()
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("got %d users, want 2", len(users))
	}
	names := map[string]bool{}
	for _, u := range users {
		names[u.Name] = true
	}
	if !names["frank"] || !names["grace"] {
		t.Errorf("user names = %v, want frank and grace", names)
	}
}
