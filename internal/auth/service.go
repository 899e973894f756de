package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/uemerson199/hospitalcare-meta/pkg/config"
	"github.com/uemerson199/hospitalcare-meta/pkg/interfaces"
	"github.com/uemerson199/hospitalcare-meta/pkg/logger"
	"github.com/uemerson199/hospitalcare-meta/pkg/monitoring"
	"github.com/uemerson199/hospitalcare-meta/pkg/types"
)

const minPasswordLength = 6

// Service implements the AuthService interface
type Service struct {
	config   *config.Config
	logger   *logger.Logger
	userRepo interfaces.UserRepository
}

// NewService creates a new auth service
func NewService(cfg *config.Config, log *logger.Logger, userRepo interfaces.UserRepository) *Service {
	return &Service{
		config:   cfg,
		logger:   log,
		userRepo: userRepo,
	}
}

// Register creates a new user account and returns a signed token
func (s *Service) Register(req *types.RegisterRequest) (*types.AuthResponse, error) {
	if err := s.validateRegistration(req); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	name := req.Name
	if name == "" {
		// Default display name to the username's local part.
		name = strings.SplitN(req.Username, "@", 2)[0]
	}

	now := time.Now()
	user := &types.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		Name:         name,
		PasswordHash: string(hash),
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepo.Create(user); err != nil {
		monitoring.RecordAuthAttempt("register", false)
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	monitoring.RecordAuthAttempt("register", true)
	s.logger.WithUserID(user.ID).Info("User registered successfully")

	return &types.AuthResponse{Token: token, User: user.Public()}, nil
}

// Login authenticates a user and returns a signed token
func (s *Service) Login(credentials *types.Credentials) (*types.AuthResponse, error) {
	user, err := s.userRepo.GetByUsername(credentials.Username)
	if err != nil {
		monitoring.RecordAuthAttempt("login", false)
		// Unknown users get the same indistinct message as a bad
		// password. Infrastructure failures surface as-is.
		if types.AsError(err).Type == types.ErrorTypeNotFound {
			return nil, types.NewAuthenticationError("Invalid username or password")
		}
		return nil, err
	}

	if !user.IsActive {
		monitoring.RecordAuthAttempt("login", false)
		return nil, types.NewAuthenticationError("User account is inactive")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
		monitoring.RecordAuthAttempt("login", false)
		return nil, types.NewAuthenticationError("Invalid username or password")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	monitoring.RecordAuthAttempt("login", true)
	s.logger.WithUserID(user.ID).Info("User authenticated successfully")

	return &types.AuthResponse{Token: token, User: user.Public()}, nil
}

// ValidateToken parses and validates a JWT token, returning its claims
func (s *Service) ValidateToken(tokenString string) (*types.UserClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWT.SecretKey), nil
	})

	if err != nil || !token.Valid {
		return nil, types.NewAuthenticationError("Invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, types.NewAuthenticationError("Invalid token claims")
	}

	userID, _ := claims["sub"].(string)
	username, _ := claims["username"].(string)
	if userID == "" {
		return nil, types.NewAuthenticationError("Invalid token claims")
	}

	return &types.UserClaims{UserID: userID, Username: username}, nil
}

// generateToken creates a signed JWT for a user
func (s *Service) generateToken(user *types.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"iss":      s.config.JWT.Issuer,
		"iat":      now.Unix(),
		"exp":      now.Add(time.Duration(s.config.JWT.AccessTokenTTL) * time.Second).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWT.SecretKey))
}

// validateRegistration validates registration input before any persistence
func (s *Service) validateRegistration(req *types.RegisterRequest) error {
	fields := map[string]string{}

	if strings.TrimSpace(req.Username) == "" {
		fields["username"] = "username is required"
	} else if !strings.Contains(req.Username, "@") {
		fields["username"] = "username must be a valid email address"
	}

	if strings.TrimSpace(req.Password) == "" {
		fields["password"] = "password is required"
	} else if len(req.Password) < minPasswordLength {
		fields["password"] = fmt.Sprintf("password must be at least %d characters", minPasswordLength)
	}

	if len(fields) > 0 {
		return types.NewValidationError("Registration validation failed", fields)
	}

	return nil
}
