package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jrammler/userdesk/internal/client/users"
	"github.com/jrammler/userdesk/internal/entity"
	"github.com/jrammler/userdesk/internal/observability"
)

type mockUserService struct {
	users   []entity.User
	err     error
	created []entity.UserPayload
	deleted []int
}

func (m *mockUserService) Create(ctx context.Context, payload entity.UserPayload) error {
	m.created = append(m.created, payload)
	return m.err
}

func (m *mockUserService) Update(ctx context.Context, id int, payload entity.UserPayload) error {
	return errors.New("not supported")
}

func (m *mockUserService) Delete(ctx context.Context, id int) error {
	m.deleted = append(m.deleted, id)
	return m.err
}

func (m *mockUserService) GetOne(ctx context.Context, id int) (entity.User, error) {
	if m.err != nil {
		return entity.User{}, m.err
	}
	for _, user := range m.users {
		if user.Id == id {
			return user, nil
		}
	}
	return entity.User{}, errors.New("not found")
}

func (m *mockUserService) GetAll(ctx context.Context) ([]entity.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.users, nil
}

// useLogger routes the default logger to a debug-level buffer for the test.
func useLogger(t *testing.T) *bytes.Buffer {
	buf := &bytes.Buffer{}
	prev := slog.Default()
	slog.SetDefault(observability.NewLogger(buf, "dev"))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return buf
}

func TestListUsersOutputIsOnlyTable(t *testing.T) {
	logs := useLogger(t)
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"id":1,"email":"a@x.com","firstName":"Ada","role":"ADMIN"},{"id":2,"email":"b@x.com","role":"USER"}]`)
	}))
	defer backend.Close()
	var out bytes.Buffer
	commands := &userCommands{users: users.NewClient(backend.URL, backend.Client(), nil), out: &out}

	err := commands.list(context.Background())

	if err != nil {
		t.Fatalf("Unexpected error %q", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header and 2 rows, got %q", out.String())
	}
	if !strings.HasPrefix(lines[0], "ID") || !strings.Contains(lines[1], "Ada") || !strings.Contains(lines[2], "b@x.com") {
		t.Errorf("Unexpected table %q", out.String())
	}
	if strings.Contains(out.String(), `"level"`) {
		t.Errorf("Expected no log records in command output, got %q", out.String())
	}
	if !strings.Contains(logs.String(), "Sending users api request") {
		t.Errorf("Expected debug record in log output, got %q", logs.String())
	}
}

func TestGetUserFailureKeepsOutputClean(t *testing.T) {
	logs := useLogger(t)
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer backend.Close()
	var out bytes.Buffer
	commands := &userCommands{users: users.NewClient(backend.URL, backend.Client(), nil), out: &out}

	err := commands.get(context.Background(), []string{"9"})

	var statusErr *users.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Expected *users.StatusError, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Expected empty output, got %q", out.String())
	}
	if !strings.Contains(logs.String(), `"user_id":9`) {
		t.Errorf("Expected failure logged with user id, got %q", logs.String())
	}
}

func TestGetUser(t *testing.T) {
	var out bytes.Buffer
	commands := &userCommands{
		users: &mockUserService{users: []entity.User{{Id: 3, Email: "c@x.com", Role: entity.RoleUser}}},
		out:   &out,
	}

	err := commands.get(context.Background(), []string{"3"})

	if err != nil {
		t.Fatalf("Unexpected error %q", err)
	}
	if !strings.Contains(out.String(), "Email:      c@x.com") {
		t.Errorf("Expected email line, got %q", out.String())
	}
}

func TestIdArguments(t *testing.T) {
	testCases := []struct {
		name          string
		args          []string
		expectedUsage bool
	}{
		{name: "Missing id", args: nil, expectedUsage: true},
		{name: "Non numeric id", args: []string{"abc"}, expectedUsage: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mock := &mockUserService{}
			commands := &userCommands{users: mock, out: io.Discard}

			err := commands.delete(context.Background(), tc.args)

			if err == nil {
				t.Fatalf("Expected error, got none")
			}
			if errors.Is(err, UsageError) != tc.expectedUsage {
				t.Errorf("Expected usage error=%v, got %q", tc.expectedUsage, err)
			}
			if len(mock.deleted) != 0 {
				t.Errorf("Expected no delete call, got %v", mock.deleted)
			}
		})
	}
}

func TestDeleteUser(t *testing.T) {
	mock := &mockUserService{}
	var out bytes.Buffer
	commands := &userCommands{users: mock, out: &out}

	err := commands.delete(context.Background(), []string{"5"})

	if err != nil {
		t.Fatalf("Unexpected error %q", err)
	}
	if len(mock.deleted) != 1 || mock.deleted[0] != 5 {
		t.Errorf("Expected delete of 5, got %v", mock.deleted)
	}
	if out.String() != "Deleted user 5\n" {
		t.Errorf("Unexpected output %q", out.String())
	}
}

func TestCreateUser(t *testing.T) {
	testCases := []struct {
		name          string
		args          []string
		passwordErr   error
		expected      *entity.UserPayload
		expectedError error
	}{
		{
			name:     "Email and role",
			args:     []string{"a@b.com", "ADMIN"},
			expected: &entity.UserPayload{Email: "a@b.com", Password: "x", Role: entity.RoleAdmin},
		},
		{
			name:     "Role left to backend",
			args:     []string{"a@b.com"},
			expected: &entity.UserPayload{Email: "a@b.com", Password: "x"},
		},
		{
			name:          "Missing email",
			args:          nil,
			expectedError: UsageError,
		},
		{
			name:          "Password prompt fails",
			args:          []string{"a@b.com"},
			passwordErr:   io.ErrUnexpectedEOF,
			expectedError: io.ErrUnexpectedEOF,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mock := &mockUserService{}
			commands := &userCommands{users: mock, out: io.Discard}

			err := commands.create(context.Background(), tc.args, func() (string, error) {
				return "x", tc.passwordErr
			})

			if !errors.Is(err, tc.expectedError) {
				t.Fatalf("Expected error %v, got %v", tc.expectedError, err)
			}
			if tc.expected == nil {
				if len(mock.created) != 0 {
					t.Errorf("Expected no create call, got %+v", mock.created)
				}
				return
			}
			if len(mock.created) != 1 {
				t.Fatalf("Expected 1 create call, got %d", len(mock.created))
			}
			if mock.created[0].Email != tc.expected.Email || mock.created[0].Password != tc.expected.Password || mock.created[0].Role != tc.expected.Role {
				t.Errorf("Expected %+v, got %+v", *tc.expected, mock.created[0])
			}
		})
	}
}
