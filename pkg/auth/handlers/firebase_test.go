package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFirebaseStub(t *testing.T, status int, body string) (*httptest.Server, *string) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path + "?" + r.URL.RawQuery
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, &gotPath
}

func postForm(handler func(http.ResponseWriter, *http.Request), values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestFirebaseAuthHandler_HandleLogin(t *testing.T) {
	tests := []struct {
		name       string
		form       url.Values
		stubStatus int
		stubBody   string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "success",
			form:       url.Values{"email": {"ada@example.com"}, "password": {"secret"}},
			stubStatus: http.StatusOK,
			stubBody:   `{"idToken":"id","refreshToken":"refresh","localId":"uid","registered":true}`,
			wantStatus: http.StatusOK,
			wantBody:   `"idToken":"id"`,
		},
		{
			name:       "missing password",
			form:       url.Values{"email": {"ada@example.com"}},
			wantStatus: http.StatusBadRequest,
			wantBody:   "Missing password",
		},
		{
			name:       "invalid credentials",
			form:       url.Values{"email": {"ada@example.com"}, "password": {"wrong"}},
			stubStatus: http.StatusBadRequest,
			stubBody:   `{"error":{"code":400,"message":"INVALID_LOGIN_CREDENTIALS"}}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "Invalid credentials",
		},
		{
			name:       "unknown error",
			form:       url.Values{"email": {"ada@example.com"}, "password": {"secret"}},
			stubStatus: http.StatusBadRequest,
			stubBody:   `{"error":{"code":400,"message":"SOMETHING_ELSE"}}`,
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Failed to login",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub, gotPath := newFirebaseStub(t, tt.stubStatus, tt.stubBody)
			h := NewFirebaseAuthHandler(NewFirebaseAuthHandlerOptions{
				APIKey:             "key",
				IdentityToolkitURL: stub.URL,
			})

			rec := postForm(h.HandleLogin(), tt.form)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			if tt.stubStatus != 0 {
				assert.Equal(t, "/accounts:signInWithPassword?key=key", *gotPath)
			}
		})
	}
}

func TestFirebaseAuthHandler_HandleRefresh(t *testing.T) {
	stub, gotPath := newFirebaseStub(t, http.StatusOK, `{"id_token":"new","refresh_token":"r2","user_id":"uid"}`)
	h := NewFirebaseAuthHandler(NewFirebaseAuthHandlerOptions{
		APIKey:         "key",
		SecureTokenURL: stub.URL,
	})

	rec := postForm(h.HandleRefresh(), url.Values{"refreshToken": {"r1"}})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "/token?key=key", *gotPath)

	body := &RefreshResponseBody{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(body))
	assert.Equal(t, "new", body.IDToken)
	assert.Equal(t, "uid", body.UserID)
}

func TestFirebaseAuthHandler_HandleDelete(t *testing.T) {
	tests := []struct {
		name       string
		stubStatus int
		stubBody   string
		wantStatus int
	}{
		{
			name:       "deleted",
			stubStatus: http.StatusOK,
			stubBody:   `{}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid token",
			stubStatus: http.StatusBadRequest,
			stubBody:   `{"error":{"code":400,"message":"INVALID_ID_TOKEN"}}`,
			wantStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub, _ := newFirebaseStub(t, tt.stubStatus, tt.stubBody)
			h := NewFirebaseAuthHandler(NewFirebaseAuthHandlerOptions{
				APIKey:             "key",
				IdentityToolkitURL: stub.URL,
			})

			rec := postForm(h.HandleDelete(), url.Values{"idToken": {"id"}})
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
