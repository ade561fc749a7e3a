package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newClient(t *testing.T, url string) *HTTPClient {
	t.Helper()
	c, err := NewAuthGateClient(url, 2*time.Second)
	if err != nil {
		t.Fatalf("NewAuthGateClient: %v", err)
	}
	return c
}

func TestSignin_SendsPayloadAndStoresCookie(t *testing.T) {
	var gotBody map[string]string

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/signin", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		http.SetCookie(w, &http.Cookie{Name: "auth_token", Value: "tok123", Path: "/"})
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "User signed in successfully"})
	})
	mux.HandleFunc("GET /auth/validate-token", func(w http.ResponseWriter, r *http.Request) {
		ck, err := r.Cookie("auth_token")
		if err != nil || ck.Value != "tok123" {
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid token"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Valid token"})
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	c := newClient(t, ts.URL)
	ctx := context.Background()

	if err := c.Signin(ctx, "a@x.com", "Abcd123!"); err != nil {
		t.Fatalf("Signin: %v", err)
	}
	if gotBody["email"] != "a@x.com" || gotBody["password"] != "Abcd123!" {
		t.Fatalf("payload mismatch: %v", gotBody)
	}

	// cookie from the jar must ride along on the next request
	if err := c.ValidateToken(ctx); err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   error
	}{
		{"unauthorized", http.StatusUnauthorized, `{"message":"Incorrect email or password"}`, ErrUnauthorized},
		{"conflict", http.StatusConflict, `{"message":"User with this email already exists"}`, ErrConflict},
		{"validation", http.StatusBadRequest, `{"message":"Validation failed","errors":["password is too weak"]}`, ErrValidation},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer ts.Close()

			c := newClient(t, ts.URL)
			err := c.Signin(context.Background(), "a@x.com", "pw")
			if !errors.Is(err, tc.want) {
				t.Fatalf("want %v, got %v", tc.want, err)
			}
		})
	}
}

func TestValidationError_CarriesFieldMessages(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Validation failed","errors":["Email must be a valid email address"]}`))
	}))
	defer ts.Close()

	c := newClient(t, ts.URL)
	err := c.Signup(context.Background(), "bad", "Abcd123!", "A")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
	if got := err.Error(); !strings.Contains(got, "Email must be a valid email address") {
		t.Fatalf("error must carry the server detail, got %q", got)
	}
}

func TestUnreachableServer(t *testing.T) {
	// port from a closed listener, nothing is listening there
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	c := newClient(t, url)
	if err := c.Ping(context.Background()); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("want ErrUnavailable, got %v", err)
	}
}
