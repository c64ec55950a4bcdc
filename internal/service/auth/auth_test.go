package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jrammler/userdesk/internal/entity"
)

type mockStorage struct {
	operator entity.Operator
	err      error
}

func (m *mockStorage) GetOperator(ctx context.Context, username string) (entity.Operator, error) {
	if m.err != nil {
		return entity.Operator{}, m.err
	}
	return m.operator, nil
}

func (m *mockStorage) LoadConfig() error {
	return nil
}

func TestLoginOperator(t *testing.T) {
	testCases := []struct {
		name          string
		username      string
		password      string
		storage       mockStorage
		expectedError error
	}{
		{
			name:     "Successful login",
			username: "testuser",
			password: "password",
			storage: mockStorage{
				operator: entity.Operator{
					Username:     "testuser",
					PasswordHash: "$2a$04$dKD7Ty3vN6sYhWyRxDKepOOsjbJ2HtU/Q0Dw7wt.5Q2cqCXJEi/Wa", // "password"
				},
				err: nil,
			},
			expectedError: nil,
		},
		{
			name:     "Invalid credentials",
			username: "testuser",
			password: "wrongpassword",
			storage: mockStorage{
				operator: entity.Operator{
					Username:     "testuser",
					PasswordHash: "$2a$04$dKD7Ty3vN6sYhWyRxDKepOOsjbJ2HtU/Q0Dw7wt.5Q2cqCXJEi/Wa", // "password"
				},
				err: nil,
			},
			expectedError: CredentialError,
		},
		{
			name:          "Operator not found",
			username:      "testuser",
			password:      "password",
			storage:       mockStorage{err: errors.New("operator not found")},
			expectedError: CredentialError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			authService := NewAuthService(&tc.storage)
			_, _, err := authService.LoginOperator(context.Background(), tc.username, tc.password)

			if tc.expectedError != nil {
				if !errors.Is(err, tc.expectedError) {
					t.Errorf("Expected %q, got %q", tc.expectedError, err)
				}
			} else {
				if err != nil {
					t.Errorf("Unexpected error %q", err)
				}
			}
		})
	}
}

func TestLogoutOperator(t *testing.T) {
	authService := NewAuthService(&mockStorage{})
	token, err := generateSessionToken()
	if err != nil {
		t.Errorf("Unexpected error %q", err)
	}
	authService.sessions[token] = session{
		operator:   entity.Operator{Username: "test"},
		expiration: time.Now().Add(time.Hour),
	}
	authService.LogoutOperator(context.Background(), token)
	_, exists := authService.sessions[token]
	if exists {
		t.Errorf("Found token but expected it to be deleted")
	}
}

func TestGetSessionOperator(t *testing.T) {
	testCases := []struct {
		name             string
		sessionToken     string
		setup            func(as *AuthService, token string)
		expectedOperator entity.Operator
		expectedError    error
	}{
		{
			name:         "Valid session",
			sessionToken: "valid_token",
			setup: func(as *AuthService, token string) {
				as.sessions[token] = session{
					operator:   entity.Operator{Username: "test"},
					expiration: time.Now().Add(time.Hour),
				}
			},
			expectedOperator: entity.Operator{Username: "test"},
			expectedError:    nil,
		},
		{
			name:         "No valid session",
			sessionToken: "invalid_token",
			setup: func(as *AuthService, token string) {
			},
			expectedOperator: entity.Operator{},
			expectedError:    NoValidSessionError,
		},
		{
			name:         "Expired session",
			sessionToken: "expired_token",
			setup: func(as *AuthService, token string) {
				as.sessions[token] = session{
					operator:   entity.Operator{Username: "test"},
					expiration: time.Now().Add(-time.Hour),
				}
			},
			expectedOperator: entity.Operator{},
			expectedError:    NoValidSessionError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			authService := NewAuthService(&mockStorage{})
			tc.setup(authService, tc.sessionToken)
			operator, err := authService.GetSessionOperator(context.Background(), tc.sessionToken)

			if operator.Username != tc.expectedOperator.Username {
				t.Errorf("Expected username %q but got %q", tc.expectedOperator.Username, operator.Username)
			}
			if !errors.Is(err, tc.expectedError) {
				t.Errorf("Unexpected error %q, expected %q", err, tc.expectedError)
			}
		})
	}
}

func TestLoginThenSession(t *testing.T) {
	authService := NewAuthService(&mockStorage{
		operator: entity.Operator{
			Username:     "testuser",
			PasswordHash: "$2a$04$dKD7Ty3vN6sYhWyRxDKepOOsjbJ2HtU/Q0Dw7wt.5Q2cqCXJEi/Wa", // "password"
		},
	})
	token, expiration, err := authService.LoginOperator(context.Background(), "testuser", "password")
	if err != nil {
		t.Fatalf("Unexpected error %q", err)
	}
	if expiration == nil || !expiration.After(time.Now()) {
		t.Errorf("Expected expiration in the future, got %v", expiration)
	}

	operator, err := authService.GetSessionOperator(context.Background(), token)
	if err != nil {
		t.Fatalf("Unexpected error %q", err)
	}
	if operator.Username != "testuser" {
		t.Errorf("Expected username %q but got %q", "testuser", operator.Username)
	}
}

func TestConcurrentSessions(t *testing.T) {
	authService := NewAuthService(&mockStorage{
		operator: entity.Operator{
			Username:     "testuser",
			PasswordHash: "$2a$04$dKD7Ty3vN6sYhWyRxDKepOOsjbJ2HtU/Q0Dw7wt.5Q2cqCXJEi/Wa", // "password"
		},
	})
	ctx := context.Background()
	const workers = 8

	tokens := make(chan string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			token, _, err := authService.LoginOperator(ctx, "testuser", "password")
			if err != nil {
				t.Errorf("Unexpected error %q", err)
				return
			}
			for j := 0; j < 10; j++ {
				if _, err := authService.GetSessionOperator(ctx, token); err != nil {
					t.Errorf("Unexpected error %q", err)
				}
				authService.GetSessionOperator(ctx, "unknown")
			}
			tokens <- token
		}()
	}
	wg.Wait()
	close(tokens)

	seen := make(map[string]bool)
	for token := range tokens {
		if seen[token] {
			t.Errorf("Token issued twice")
		}
		seen[token] = true
	}
	if len(seen) != workers {
		t.Fatalf("Expected %d sessions, got %d", workers, len(seen))
	}

	var logoutWg sync.WaitGroup
	for token := range seen {
		logoutWg.Add(1)
		go func(token string) {
			defer logoutWg.Done()
			authService.LogoutOperator(ctx, token)
		}(token)
	}
	logoutWg.Wait()

	if len(authService.sessions) != 0 {
		t.Errorf("Expected all sessions to be removed, got %d", len(authService.sessions))
	}
}
