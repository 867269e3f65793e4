package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"inventory-console/internal/model"
)

const testSecret = "integration-secret"

// fakeAPI is a minimal stand-in for the remote inventory service: it signs
// real HS256 tokens on login and validates them on every resource call.
type fakeAPI struct {
	t        *testing.T
	tokenTTL time.Duration
	roles    []string
	devices  []model.Device
}

func newFakeAPI(t *testing.T) *fakeAPI {
	return &fakeAPI{
		t:        t,
		tokenTTL: time.Hour,
		roles:    []string{"Admin"},
		devices: []model.Device{
			{ID: uuid.NewString(), Name: "laptop", InventoryNumber: "INV-001", CurrentStatusID: 1},
		},
	}
}

func (f *fakeAPI) start() *httptest.Server {
	r := chi.NewRouter()

	r.Post("/api/auth/login", func(w http.ResponseWriter, req *http.Request) {
		var cred model.Credential
		if err := json.NewDecoder(req.Body).Decode(&cred); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if cred.Username != "alice" || cred.Password != "secret1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"sub":      "42",
			"username": cred.Username,
			"role":     f.roles,
			"exp":      time.Now().Add(f.tokenTTL).Unix(),
			"iat":      time.Now().Unix(),
		}).SignedString([]byte(testSecret))
		require.NoError(f.t, err)

		_ = json.NewEncoder(w).Encode(model.TokenResponse{Token: token})
	})

	r.Post("/api/auth/register", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	r.Group(func(r chi.Router) {
		r.Use(f.requireToken)

		r.Get("/api/devices", func(w http.ResponseWriter, req *http.Request) {
			_ = json.NewEncoder(w).Encode(model.DeviceList{
				Items:      f.devices,
				TotalCount: len(f.devices),
				PageNumber: 1,
				PageSize:   len(f.devices),
				TotalPages: 1,
			})
		})
	})

	server := httptest.NewServer(r)
	f.t.Cleanup(server.Close)
	return server
}

func (f *fakeAPI) requireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		header := req.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		parsed, err := jwt.Parse(strings.TrimPrefix(header, "Bearer "), func(token *jwt.Token) (any, error) {
			return []byte(testSecret), nil
		})
		if err != nil || !parsed.Valid {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, req)
	})
}
