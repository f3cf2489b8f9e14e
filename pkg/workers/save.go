package workers

import (
	"context"
	"time"

	"github.com/cbodonnell/stackfall/pkg/log"
	"github.com/cbodonnell/stackfall/pkg/repositories"
	"github.com/cbodonnell/stackfall/pkg/repositories/models"
)

// SaveTimeout bounds a single repository write.
const SaveTimeout = 5 * time.Second

type SaveResultWorker struct {
	repository     repositories.Repository
	saveResultChan <-chan SaveResultRequest
}

type NewSaveResultWorkerOptions struct {
	Repository     repositories.Repository
	SaveResultChan <-chan SaveResultRequest
}

type SaveResultRequest struct {
	Result *models.SessionResult
}

// NewSaveResultWorker creates a new SaveResultWorker.
// The worker writes the results of finished sessions to the repository.
func NewSaveResultWorker(opts NewSaveResultWorkerOptions) *SaveResultWorker {
	return &SaveResultWorker{
		repository:     opts.Repository,
		saveResultChan: opts.SaveResultChan,
	}
}

func (w *SaveResultWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.flush()
			return
		case saveRequest := <-w.saveResultChan:
			w.saveResult(ctx, saveRequest)
		}
	}
}

// flush saves requests that were already queued when the worker was stopped.
func (w *SaveResultWorker) flush() {
	for {
		select {
		case saveRequest := <-w.saveResultChan:
			w.saveResult(context.Background(), saveRequest)
		default:
			return
		}
	}
}

func (w *SaveResultWorker) saveResult(ctx context.Context, saveRequest SaveResultRequest) {
	if saveRequest.Result == nil {
		log.Warn("Ignoring empty save request")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, SaveTimeout)
	defer cancel()

	if err := w.repository.SaveSessionResult(ctx, saveRequest.Result); err != nil {
		log.Error("Failed to save session result %s: %v", saveRequest.Result.ID, err)
		return
	}
	log.Debug("Saved session result %s for user %s", saveRequest.Result.ID, saveRequest.Result.UserID)
}
