package game

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cbodonnell/stackfall/client/ui"
	authhandlers "github.com/cbodonnell/stackfall/pkg/auth/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthServer(t *testing.T) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		if r.PostForm.Get("password") != "secret" {
			http.Error(w, "Invalid email or password", http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(&authhandlers.LoginResponseBody{IDToken: "token-" + r.PostForm.Get("email")})
	})
	mux.HandleFunc("/auth/register", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	return httptest.NewServer(mux)
}

func TestAuthClient(t *testing.T) {
	server := newAuthServer(t)
	defer server.Close()

	client := NewAuthClient(server.URL+"/auth/", server.Client())

	tests := []struct {
		name          string
		call          func() (string, error)
		wantToken     string
		wantErr       bool
		wantActionMsg string
	}{
		{
			name:      "login ok",
			call:      func() (string, error) { return client.Login("a@b.c", "secret") },
			wantToken: "token-a@b.c",
		},
		{
			name:          "login rejected",
			call:          func() (string, error) { return client.Login("a@b.c", "wrong") },
			wantErr:       true,
			wantActionMsg: "Invalid email or password",
		},
		{
			name:    "register server error",
			call:    func() (string, error) { return client.Register("a@b.c", "secret") },
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := tt.call()
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
				return
			}
			require.Error(t, err)
			actionable, ok := err.(*ui.ActionableError)
			if tt.wantActionMsg == "" {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, tt.wantActionMsg, actionable.Message)
		})
	}
}

func TestGameModeString(t *testing.T) {
	assert.Equal(t, "Menu", GameModeMenu.String())
	assert.Equal(t, "Auth", GameModeAuth.String())
	assert.Equal(t, "Network Error", GameModeNetworkError.String())
	assert.Equal(t, "Unknown", GameMode(99).String())
}
