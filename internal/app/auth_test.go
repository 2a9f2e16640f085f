package app

import (
	"context"
	"net/http"
	"testing"

	"github.com/anshika-1705/movieapp/api"
	"github.com/anshika-1705/movieapp/internal/domain"
	"github.com/anshika-1705/movieapp/internal/mocks"
)

func TestRegister(t *testing.T) {
	t.Run("registers and returns a token", func(t *testing.T) {
		app := newTestApplication(t, func(app *Application) {
			app.userRepo = &mocks.MockUserRepo{
				CreateFunc: func(ctx context.Context, user *domain.User) error {
					user.ID = 5
					return nil
				},
			}
		})

		w, r := executeRequest(t, http.MethodPost, "/api/auth/register", api.RegisterRequest{
			Name:     "Anshika",
			Email:    "anshika@example.com",
			Password: "pa55word",
			Phone:    "9876543210",
		})

		app.Register(w, r)

		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusCreated)
		}

		resp := decodeEnvelope(t, w)

		if resp.Token == "" {
			t.Error("expected a token in the response")
		}

		if resp.User == nil || resp.User.Role != string(domain.RoleUser) {
			t.Errorf("user = %+v, want role user", resp.User)
		}

		claims, err := app.tokens.Verify(resp.Token)
		if err != nil {
			t.Fatalf("returned token does not verify: %v", err)
		}

		if claims.UserID != 5 {
			t.Errorf("token subject = %d, want 5", claims.UserID)
		}
	})

	t.Run("rejects a taken email", func(t *testing.T) {
		app := newTestApplication(t, func(app *Application) {
			app.userRepo = &mocks.MockUserRepo{
				CreateFunc: func(ctx context.Context, user *domain.User) error {
					return domain.ErrUserAlreadyExists
				},
			}
		})

		w, r := executeRequest(t, http.MethodPost, "/api/auth/register", api.RegisterRequest{
			Name:     "Anshika",
			Email:    "anshika@example.com",
			Password: "pa55word",
			Phone:    "9876543210",
		})

		app.Register(w, r)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("rejects a short password", func(t *testing.T) {
		app := newTestApplication(t)

		w, r := executeRequest(t, http.MethodPost, "/api/auth/register", api.RegisterRequest{
			Name:     "Anshika",
			Email:    "anshika@example.com",
			Password: "pa55",
			Phone:    "9876543210",
		})

		app.Register(w, r)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}

func TestLogin(t *testing.T) {
	existing := &domain.User{
		ID:    5,
		Name:  "Anshika",
		Email: "anshika@example.com",
		Role:  domain.RoleUser,
	}
	if err := existing.Password.Set("pa55word"); err != nil {
		t.Fatal(err)
	}

	newApp := func() *Application {
		return newTestApplication(t, func(app *Application) {
			app.userRepo = &mocks.MockUserRepo{
				GetByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
					if email != existing.Email {
						return nil, domain.ErrRecordNotFound
					}
					return existing, nil
				},
			}
		})
	}

	tests := []struct {
		name       string
		email      string
		password   string
		wantStatus int
	}{
		{"valid credentials", "anshika@example.com", "pa55word", http.StatusOK},
		{"wrong password", "anshika@example.com", "wrong-pass", http.StatusUnauthorized},
		{"unknown email", "nobody@example.com", "pa55word", http.StatusUnauthorized},
		{"malformed email", "not-an-email", "pa55word", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newApp()

			w, r := executeRequest(t, http.MethodPost, "/api/auth/login", api.LoginRequest{
				Email:    tt.email,
				Password: tt.password,
			})

			app.Login(w, r)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}

			if tt.wantStatus == http.StatusOK {
				resp := decodeEnvelope(t, w)

				if resp.Token == "" {
					t.Error("expected a token in the response")
				}
			}
		})
	}
}

func TestGetCurrentUser(t *testing.T) {
	app := newTestApplication(t, func(app *Application) {
		app.userRepo = &mocks.MockUserRepo{
			GetByIdFunc: func(ctx context.Context, id int) (*domain.User, error) {
				return &domain.User{ID: id, Name: "Anshika", Email: "anshika@example.com", Role: domain.RoleUser}, nil
			},
		}
	})

	w, r := executeRequest(t, http.MethodGet, "/api/auth/me", nil)

	app.GetCurrentUser(w, withClaims(app, r, 5, domain.RoleUser))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	resp := decodeEnvelope(t, w)

	if resp.User == nil || resp.User.ID != 5 {
		t.Errorf("user = %+v, want id 5", resp.User)
	}
}

func TestRequireAuthentication(t *testing.T) {
	app := newTestApplication(t)

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := app.contextGetClaims(r)
		if claims.UserID != 5 {
			t.Errorf("claims user id = %d, want 5", claims.UserID)
		}
		w.WriteHeader(http.StatusOK)
	})

	token, err := app.tokens.Issue(5, domain.RoleUser)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid bearer token", "Bearer " + token, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"malformed header", token, http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-token", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, r := executeRequest(t, http.MethodGet, "/api/auth/me", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			app.requireAuthentication(okHandler).ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	app := newTestApplication(t)

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("admin passes", func(t *testing.T) {
		w, r := executeRequest(t, http.MethodPost, "/api/movies", nil)
		r = withClaims(app, r, 1, domain.RoleAdmin)

		app.requireAdmin(okHandler).ServeHTTP(w, r)

		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
		}
	})

	t.Run("regular user is forbidden", func(t *testing.T) {
		w, r := executeRequest(t, http.MethodPost, "/api/movies", nil)
		r = withClaims(app, r, 5, domain.RoleUser)

		app.requireAdmin(okHandler).ServeHTTP(w, r)

		if w.Code != http.StatusForbidden {
			t.Errorf("status = %d, want %d", w.Code, http.StatusForbidden)
		}
	})
}
