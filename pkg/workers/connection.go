package workers

import (
	"context"

	gametypes "github.com/cbodonnell/stackfall/pkg/game/types"
	"github.com/cbodonnell/stackfall/pkg/log"
	"github.com/cbodonnell/stackfall/pkg/network"
	"github.com/cbodonnell/stackfall/pkg/queue"
)

type ConnectionEventWorker struct {
	connectionEventChan <-chan network.ConnectionEvent
	sessionEventQueue   queue.Queue
}

type NewConnectionEventWorkerOptions struct {
	ConnectionEventChan <-chan network.ConnectionEvent
	SessionEventQueue   queue.Queue
}

// NewConnectionEventWorker creates a new ConnectionEventWorker.
// The worker processes client events like connect and disconnect
// and writes session events to a queue for the game loop to process.
func NewConnectionEventWorker(opts NewConnectionEventWorkerOptions) *ConnectionEventWorker {
	return &ConnectionEventWorker{
		connectionEventChan: opts.ConnectionEventChan,
		sessionEventQueue:   opts.SessionEventQueue,
	}
}

func (w *ConnectionEventWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-w.connectionEventChan:
			switch event.Type {
			case network.ConnectionEventTypeConnect:
				w.handleClientConnect(event)
			case network.ConnectionEventTypeDisconnect:
				w.handleClientDisconnect(event)
			default:
				log.Error("Unknown client event type: %v", event.Type)
			}
		}
	}
}

func (w *ConnectionEventWorker) handleClientConnect(event network.ConnectionEvent) {
	if err := w.sessionEventQueue.Enqueue(&gametypes.StartSessionEvent{
		ClientID: event.ClientID,
		UserID:   event.UserID,
	}); err != nil {
		log.Error("Failed to enqueue start session event: %v", err)
	}
}

func (w *ConnectionEventWorker) handleClientDisconnect(event network.ConnectionEvent) {
	if err := w.sessionEventQueue.Enqueue(&gametypes.EndSessionEvent{
		ClientID: event.ClientID,
	}); err != nil {
		log.Error("Failed to enqueue end session event: %v", err)
	}
}
