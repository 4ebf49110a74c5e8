package user

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/skillfolio/skillfolio-lambda/internal/auth"
	"github.com/skillfolio/skillfolio-lambda/internal/config"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("user already exists")
	ErrCredentialsMissing = errors.New("email and password required")
	ErrPasswordTooShort   = errors.New("password must be at least 4 characters")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRefresh     = errors.New("invalid refresh token")
)

const (
	accessTokenDuration  = 15 * time.Minute
	refreshTokenDuration = 7 * 24 * time.Hour
	refreshRole          = "refresh"
	googleUserInfoURL    = "https://www.googleapis.com/oauth2/v2/userinfo"
)

type UserService interface {
	Register(ctx context.Context, dto RegisterDTO) (*UserResponse, error)
	Login(ctx context.Context, dto LoginDTO) (*TokenPairResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPairResponse, error)
	GoogleLogin(ctx context.Context, code string) (*TokenPairResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error)
}

type service struct {
	repo UserRepository
}

func NewService(repo UserRepository) UserService {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, dto RegisterDTO) (*UserResponse, error) {
	log := config.WithContext(ctx)

	email := strings.TrimSpace(strings.ToLower(dto.Email))
	if email == "" || dto.Password == "" {
		return nil, ErrCredentialsMissing
	}
	if len(dto.Password) < 4 {
		return nil, ErrPasswordTooShort
	}

	existing, err := s.repo.FindByEmail(email)
	if err != nil {
		log.WithError(err).Error("Failed to look up user by email")
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         "user",
	}
	if err := s.repo.Create(&u); err != nil {
		log.WithError(err).Error("Failed to create user")
		return nil, err
	}

	log.WithField("user_id", u.ID).Info("User registered")
	return toResponse(&u), nil
}

func (s *service) Login(ctx context.Context, dto LoginDTO) (*TokenPairResponse, error) {
	log := config.WithContext(ctx)

	email := strings.TrimSpace(strings.ToLower(dto.Email))
	if email == "" || dto.Password == "" {
		return nil, ErrCredentialsMissing
	}

	u, err := s.repo.FindByEmail(email)
	if err != nil {
		log.WithError(err).Error("Failed to look up user by email")
		return nil, err
	}
	if u == nil || u.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(u)
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (*TokenPairResponse, error) {
	log := config.WithContext(ctx)

	claims, err := auth.ValidateJWT(refreshToken)
	if err != nil || claims.Role != refreshRole {
		return nil, ErrInvalidRefresh
	}

	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidRefresh
	}
	u, err := s.repo.FindByID(id)
	if err != nil {
		log.WithError(err).Error("Failed to look up user for refresh")
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	return s.issueTokens(u)
}

func (s *service) GoogleLogin(ctx context.Context, code string) (*TokenPairResponse, error) {
	log := config.WithContext(ctx)

	if code == "" {
		return nil, ErrInvalidCredentials
	}

	oauthCfg := googleOAuthConfig()
	token, err := oauthCfg.Exchange(ctx, code)
	if err != nil {
		log.WithError(err).Warn("Google code exchange failed")
		return nil, ErrInvalidCredentials
	}

	client := oauthCfg.Client(ctx, token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		log.WithError(err).Error("Failed to fetch Google user info")
		return nil, err
	}
	defer resp.Body.Close()

	var info struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	if info.Email == "" {
		return nil, ErrInvalidCredentials
	}

	email := strings.ToLower(info.Email)
	u, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		u = &User{ID: uuid.New(), Email: email, Role: "user"}
		if err := s.repo.Create(u); err != nil {
			log.WithError(err).Error("Failed to create user from Google login")
			return nil, err
		}
		log.WithField("user_id", u.ID).Info("User created via Google login")
	}

	if token.RefreshToken != "" {
		encrypted, err := config.Encrypt(token.RefreshToken)
		if err != nil {
			log.WithError(err).Error("Failed to encrypt Google refresh token")
			return nil, err
		}
		u.GoogleRefreshToken = encrypted
		if err := s.repo.Update(u); err != nil {
			log.WithError(err).Error("Failed to store Google refresh token")
			return nil, err
		}
	}

	return s.issueTokens(u)
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	u, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	return toResponse(u), nil
}

func (s *service) issueTokens(u *User) (*TokenPairResponse, error) {
	access, err := auth.GenerateJWT(u.ID.String(), u.Role, accessTokenDuration)
	if err != nil {
		return nil, err
	}
	refresh, err := auth.GenerateJWT(u.ID.String(), refreshRole, refreshTokenDuration)
	if err != nil {
		return nil, err
	}
	return &TokenPairResponse{Access: access, Refresh: refresh}, nil
}

func googleOAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
		Scopes:       []string{"openid", "email", "profile"},
		Endpoint:     google.Endpoint,
	}
}

func toResponse(u *User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
