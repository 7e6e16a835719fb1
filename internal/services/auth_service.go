package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/taskmanager/backend/internal/config"
	"github.com/taskmanager/backend/internal/dto"
	"github.com/taskmanager/backend/internal/mailer"
	"github.com/taskmanager/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserExists = errors.New("User already exists")
	// ErrInvalidCredentials covers both an unknown userid and a wrong
	// password so the response does not reveal which accounts exist.
	ErrInvalidCredentials = errors.New("Invalid userid or password")
)

type AuthService struct {
	db     *gorm.DB
	cfg    *config.Config
	mailer *mailer.Mailer
}

// NewAuthService creates the auth gateway. mailer may be nil when SMTP is
// not configured; signup notifications are skipped in that case.
func NewAuthService(db *gorm.DB, cfg *config.Config, m *mailer.Mailer) *AuthService {
	return &AuthService{db: db, cfg: cfg, mailer: m}
}

// Signup registers a new user and returns a signed token bound to it.
// The existence check is advisory; the unique index on users.userid is
// the backstop for concurrent signups with the same handle.
func (s *AuthService) Signup(req *dto.SignupRequest) (*dto.AuthResponse, error) {
	if req.Userid == "" || req.Password == "" || req.Role == "" {
		return nil, invalid("userid, password, and role are required")
	}

	var existing models.User
	err := s.db.Where("userid = ?", req.Userid).First(&existing).Error
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check userid: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:       uuid.New(),
		Userid:   req.Userid,
		Password: string(hash),
		Role:     req.Role,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.notifySignup(&user)

	return s.authResponse(&user)
}

// Login verifies credentials and returns a fresh token. Unknown userid and
// wrong password produce the same error.
func (s *AuthService) Login(req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if req.Userid == "" || req.Password == "" {
		return nil, invalid("userid and password are required")
	}

	var user models.User
	if err := s.db.Where("userid = ?", req.Userid).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.authResponse(&user)
}

// ListUsers returns every account as {id, name} with name carrying the
// login handle.
func (s *AuthService) ListUsers() ([]dto.UserSummary, error) {
	var users []models.User
	if err := s.db.Order("id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	summaries := make([]dto.UserSummary, len(users))
	for i, u := range users {
		summaries[i] = dto.UserSummary{ID: u.ID, Name: u.Userid}
	}
	return summaries, nil
}

func (s *AuthService) authResponse(user *models.User) (*dto.AuthResponse, error) {
	token, err := IssueToken(s.cfg, user)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return &dto.AuthResponse{
		Userid: user.Userid,
		Role:   user.Role,
		Token:  token,
	}, nil
}

func (s *AuthService) notifySignup(user *models.User) {
	if s.mailer == nil || s.cfg.AdminEmail == "" {
		return
	}
	go func(userid, role string) {
		if err := s.mailer.NotifySignup(s.cfg.AdminEmail, userid, role); err != nil {
			slog.Error("signup notification failed", "userid", userid, "error", err)
		}
	}(user.Userid, user.Role)
}
