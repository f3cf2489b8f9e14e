package state

import (
	"context"
	"fmt"
	"sort"
	"sync"

	gametypes "github.com/cbodonnell/stackfall/pkg/game/types"
)

type InMemoryStateManager struct {
	lock   sync.RWMutex
	boards map[string]*gametypes.BoardState
}

var _ StateManager = &InMemoryStateManager{}

func NewInMemoryStateManager() *InMemoryStateManager {
	return &InMemoryStateManager{
		boards: make(map[string]*gametypes.BoardState),
	}
}

func (m *InMemoryStateManager) Get(ctx context.Context, sessionID string) (*gametypes.BoardState, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	boardState, ok := m.boards[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	return boardState.Copy(), nil
}

func (m *InMemoryStateManager) Set(ctx context.Context, boardState *gametypes.BoardState) error {
	if boardState == nil {
		return fmt.Errorf("board state is nil")
	}
	if boardState.SessionID == "" {
		return fmt.Errorf("board state has no session ID")
	}

	m.lock.Lock()
	defer m.lock.Unlock()
	m.boards[boardState.SessionID] = boardState.Copy()
	return nil
}

func (m *InMemoryStateManager) Delete(ctx context.Context, sessionID string) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	delete(m.boards, sessionID)
	return nil
}

func (m *InMemoryStateManager) List(ctx context.Context) ([]string, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	ids := make([]string, 0, len(m.boards))
	for id := range m.boards {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
