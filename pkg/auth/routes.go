package auth

import (
	"net/http"

	"github.com/cbodonnell/stackfall/pkg/auth/handlers"
	"github.com/gorilla/mux"
)

// RegisterRoutes mounts the account endpoints on router.
func RegisterRoutes(router *mux.Router, handler handlers.AuthHandler) {
	router.HandleFunc("/register", handler.HandleRegister()).Methods(http.MethodPost)
	router.HandleFunc("/login", handler.HandleLogin()).Methods(http.MethodPost)
	router.HandleFunc("/refresh", handler.HandleRefresh()).Methods(http.MethodPost)
	router.HandleFunc("/delete", handler.HandleDelete()).Methods(http.MethodPost)
}
