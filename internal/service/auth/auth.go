package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"sync"
	"time"

	"github.com/jrammler/userdesk/internal/entity"
	"github.com/jrammler/userdesk/internal/storage"
	"golang.org/x/crypto/bcrypt"
)

var CredentialError = errors.New("Provided credentials are invalid")
var TokenGenerationError = errors.New("Error while generating token")
var NoValidSessionError = errors.New("No valid session with provided Token")

const sessionLifetime = 24 * time.Hour

type AuthService struct {
	storage  storage.Storage
	sessions map[string]session
	mu       sync.Mutex
}

func NewAuthService(storage storage.Storage) *AuthService {
	return &AuthService{
		storage:  storage,
		sessions: make(map[string]session),
	}
}

type session struct {
	operator   entity.Operator
	expiration time.Time
}

func (s session) isExpired() bool {
	return s.expiration.Before(time.Now())
}

func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), 14)
}

func checkPasswordHash(password string, hash []byte) bool {
	err := bcrypt.CompareHashAndPassword(hash, []byte(password))
	return err == nil
}

func generateSessionToken() (string, error) {
	token := make([]byte, 64)
	_, err := rand.Read(token)
	if err != nil {
		return "", err
	}

	return base64.URLEncoding.EncodeToString(token), nil
}

func (s *AuthService) LoginOperator(ctx context.Context, username, password string) (string, *time.Time, error) {
	operator, err := s.storage.GetOperator(ctx, username)
	if err != nil {
		return "", nil, CredentialError
	}
	if !checkPasswordHash(password, []byte(operator.PasswordHash)) {
		return "", nil, CredentialError
	}
	sessionToken, err := generateSessionToken()
	if err != nil {
		return "", nil, TokenGenerationError
	}
	expiration := time.Now().Add(sessionLifetime)
	s.mu.Lock()
	s.sessions[sessionToken] = session{
		operator:   operator,
		expiration: expiration,
	}
	s.mu.Unlock()
	return sessionToken, &expiration, nil
}

func (s *AuthService) LogoutOperator(ctx context.Context, sessionToken string) {
	s.mu.Lock()
	delete(s.sessions, sessionToken)
	s.mu.Unlock()
}

func (s *AuthService) GetSessionOperator(ctx context.Context, sessionToken string) (entity.Operator, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, exists := s.sessions[sessionToken]
	if !exists {
		return entity.Operator{}, NoValidSessionError
	}
	if session.isExpired() {
		delete(s.sessions, sessionToken)
		return entity.Operator{}, NoValidSessionError
	}
	return session.operator, nil
}
