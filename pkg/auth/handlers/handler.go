package handlers

import "net/http"

// AuthHandler serves the account routes mounted under /auth. Register and
// login answer with an ID token the game client presents at login.
type AuthHandler interface {
	HandleRegister() http.HandlerFunc
	HandleLogin() http.HandlerFunc
	HandleRefresh() http.HandlerFunc
	HandleDelete() http.HandlerFunc
}
