package service

import (
	"fmt"
	"strings"

	"github.com/openclinic/hms/internal/domain"
	"github.com/openclinic/hms/internal/store"
	"github.com/openclinic/hms/pkg/auth"
	"go.uber.org/zap"
)

type AuthService struct {
	store       *store.Store
	jwtManager  *auth.JWTManager
	activitySvc *ActivityService
	log         *zap.Logger
	strict      bool
}

func NewAuthService(st *store.Store, jwtManager *auth.JWTManager, activitySvc *ActivityService, log *zap.Logger, strict bool) *AuthService {
	return &AuthService{
		store:       st,
		jwtManager:  jwtManager,
		activitySvc: activitySvc,
		log:         log,
		strict:      strict,
	}
}

// Register creates a staff account. In strict mode a taken username is
// rejected; otherwise duplicates are accepted and the earliest account wins
// on login lookup.
func (s *AuthService) Register(cmd *domain.CreateUserCommand) (domain.User, error) {
	if err := validateRegisterCommand(cmd); err != nil {
		return domain.User{}, err
	}

	if s.strict {
		if _, err := s.store.GetUserByUsername(cmd.Username); err == nil {
			return domain.User{}, domain.ErrUsernameTaken
		}
	}

	hash, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hashing password: %w", err)
	}

	u := s.store.CreateUser(cmd, hash)

	s.activitySvc.Record(domain.CreateActivityLogCommand{
		UserID:       &u.ID,
		ActivityType: "registration",
		Description:  fmt.Sprintf("staff account %q registered", u.Username),
		Details:      map[string]any{"role": string(u.Role)},
	})

	s.log.Info("user registered",
		zap.Int64("user_id", u.ID),
		zap.String("role", string(u.Role)),
	)

	return u, nil
}

func (s *AuthService) Login(username, password string) (*domain.TokenPair, domain.User, error) {
	user, err := s.store.GetUserByUsername(username)
	if err != nil {
		// Constant-work compare against a dummy hash so response timing
		// does not reveal whether the username exists.
		auth.CompareDummy(password)
		return nil, domain.User{}, ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		s.log.Warn("failed login attempt", zap.String("username", username))
		return nil, domain.User{}, ErrInvalidCredentials
	}

	pair, err := s.jwtManager.GenerateTokenPair(&domain.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		s.log.Error("failed to generate token pair", zap.Error(err))
		return nil, domain.User{}, fmt.Errorf("generating tokens: %w", err)
	}

	s.activitySvc.Record(domain.CreateActivityLogCommand{
		UserID:       &user.ID,
		ActivityType: "login",
		Description:  fmt.Sprintf("user %q logged in", user.Username),
	})

	return pair, user, nil
}

// Refresh issues a new token pair given a valid refresh token.
func (s *AuthService) Refresh(refreshToken string) (*domain.TokenPair, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	// Re-validate the account still exists.
	user, err := s.store.GetUser(claims.UserID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.jwtManager.GenerateTokenPair(&domain.Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
}

// ChangePassword updates a user's password after verifying the current one.
func (s *AuthService) ChangePassword(userID int64, currentPassword, newPassword string) error {
	user, err := s.store.GetUser(userID)
	if err != nil {
		return err
	}

	if !auth.CheckPassword(user.PasswordHash, currentPassword) {
		return ErrInvalidCredentials
	}

	if len(newPassword) < 6 {
		return &ValidationError{Fields: []string{"password must be at least 6 characters"}}
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	return s.store.UpdateUserPassword(userID, hash)
}

func (s *AuthService) CurrentUser(userID int64) (domain.User, error) {
	return s.store.GetUser(userID)
}

func validateRegisterCommand(cmd *domain.CreateUserCommand) error {
	var errs []string

	if strings.TrimSpace(cmd.Username) == "" {
		errs = append(errs, "username is required")
	}
	if len(cmd.Password) < 6 {
		errs = append(errs, "password must be at least 6 characters")
	}
	if strings.TrimSpace(cmd.Name) == "" {
		errs = append(errs, "name is required")
	}
	if !cmd.Role.IsValid() {
		errs = append(errs, "role is invalid")
	}

	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
