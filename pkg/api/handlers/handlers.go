package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/cbodonnell/stackfall/pkg/api/middleware"
	"github.com/cbodonnell/stackfall/pkg/log"
	"github.com/cbodonnell/stackfall/pkg/messages"
	"github.com/cbodonnell/stackfall/pkg/repositories"
	"github.com/cbodonnell/stackfall/pkg/state"
	"github.com/cbodonnell/stackfall/pkg/version"
	"github.com/gorilla/mux"
)

// FlatbuffersContentType selects the binary board encoding used on the game wire.
const FlatbuffersContentType = "application/x-flatbuffers"

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func HandleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, &HealthResponse{Status: "ok", Version: version.Get()})
	}
}

func HandleListResults(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := parseLimit(r)
		if err != nil {
			http.Error(w, "Invalid limit", http.StatusBadRequest)
			return
		}
		results, err := repository.ListSessionResults(r.Context(), limit)
		if err != nil {
			log.Error("failed to list results: %v", err)
			http.Error(w, "Failed to list results", http.StatusInternalServerError)
			return
		}
		writeJSON(w, results)
	}
}

func HandleGetResult(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		result, err := repository.GetSessionResult(r.Context(), id)
		if err != nil {
			if repositories.IsNotFound(err) {
				http.Error(w, "Result not found", http.StatusNotFound)
				return
			}
			log.Error("failed to get result %s: %v", id, err)
			http.Error(w, "Failed to get result", http.StatusInternalServerError)
			return
		}
		writeJSON(w, result)
	}
}

func HandleListUserResults(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		listUserResults(repository, mux.Vars(r)["userID"], w, r)
	}
}

// HandleListMyResults lists the results of the authenticated user.
func HandleListMyResults(repository repositories.Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			log.Error("failed to get claims from context")
			http.Error(w, "Failed to get user from context", http.StatusInternalServerError)
			return
		}
		listUserResults(repository, claims.UID, w, r)
	}
}

func listUserResults(repository repositories.Repository, userID string, w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r)
	if err != nil {
		http.Error(w, "Invalid limit", http.StatusBadRequest)
		return
	}
	results, err := repository.ListUserSessionResults(r.Context(), userID, limit)
	if err != nil {
		log.Error("failed to list results of user %s: %v", userID, err)
		http.Error(w, "Failed to list results", http.StatusInternalServerError)
		return
	}
	writeJSON(w, results)
}

func HandleListSessions(stateManager state.StateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ids, err := stateManager.List(r.Context())
		if err != nil {
			log.Error("failed to list sessions: %v", err)
			http.Error(w, "Failed to list sessions", http.StatusInternalServerError)
			return
		}
		writeJSON(w, ids)
	}
}

// HandleGetSessionBoard returns the latest snapshot of a live session as
// JSON, or as a FlatBuffers table when the client accepts it.
func HandleGetSessionBoard(stateManager state.StateManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		boardState, err := stateManager.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, state.ErrNotFound) {
				http.Error(w, "Session not found", http.StatusNotFound)
				return
			}
			log.Error("failed to get session %s: %v", id, err)
			http.Error(w, "Failed to get session", http.StatusInternalServerError)
			return
		}

		if r.Header.Get("Accept") == FlatbuffersContentType {
			b, err := messages.SerializeBoardState(boardState)
			if err != nil {
				log.Error("failed to serialize board state: %v", err)
				http.Error(w, "Failed to serialize board state", http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", FlatbuffersContentType)
			w.Write(b)
			return
		}
		writeJSON(w, boardState)
	}
}

func parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return repositories.DefaultListLimit, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return 0, errors.New("limit must be a positive integer")
	}
	return limit, nil
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("failed to encode response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
