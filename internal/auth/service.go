package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	apperrors "equipment-assignment-backend/internal/errors"
	"equipment-assignment-backend/internal/service"

	"github.com/golang-jwt/jwt/v5"
)

// AuthService issues and validates JWT tokens for the shared-password login.
// The whole office shares one secret stored in the settings table; a valid
// login yields a bearer token that unlocks the API.
type AuthService struct {
	config   *AuthConfig
	settings service.SettingsServiceInterface
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	Role string `json:"role" example:"office"`
	jwt.RegisteredClaims
}

// LoginRequest represents the request to log in with the shared password
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	AccessToken string `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int64  `json:"expiresIn" example:"43200"`
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid  bool        `json:"valid" example:"true"`
	Claims *AuthClaims `json:"claims"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, settings service.SettingsServiceInterface) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}
	return &AuthService{
		config:   config,
		settings: settings,
	}, nil
}

// Login checks the shared password and returns a bearer token
func (s *AuthService) Login(req *LoginRequest) (*LoginResponse, error) {
	current, err := s.settings.GetAppPassword()
	if err != nil {
		return nil, fmt.Errorf("failed to load app password: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(current)) != 1 {
		return nil, apperrors.ErrInvalidPassword
	}

	token, err := s.GenerateJWT()
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	return &LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.config.TokenTTL.Seconds()),
	}, nil
}

// GenerateJWT creates a signed token for an authenticated session
func (s *AuthService) GenerateJWT() (string, error) {
	now := time.Now()
	claims := &AuthClaims{
		Role: "office",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.Issuer,
			Subject:   "office",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.ErrInvalidToken
}
