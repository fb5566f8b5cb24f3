package pages

import (
	"context"
	"sync"

	"github.com/RitishHUB/polling-frountend/internal/client/models"
	"github.com/RitishHUB/polling-frountend/internal/client/services"
	"github.com/RitishHUB/polling-frountend/internal/common"
)

const (
	resultsFailedAdmin = "Failed to fetch results. Ensure you are an Admin."
	resultsFailedStaff = "Failed to fetch results. Ensure you are an Admin or Staff."
)

// ResultsViewer is the detailed-results panel of the admin and staff pages.
type ResultsViewer struct {
	polls   services.PollService
	ui      UI
	failMsg string

	mu      sync.Mutex
	open    bool
	loading bool
	results *models.PollResults
}

// Open shows the panel in its loading state and fetches the breakdown. On
// failure the panel closes again and the user is alerted.
func (v *ResultsViewer) Open(ctx context.Context, pollID string) (*models.PollResults, error) {
	v.mu.Lock()
	v.open, v.loading, v.results = true, true, nil
	v.mu.Unlock()

	r, err := v.polls.Results(ctx, pollID)

	v.mu.Lock()
	v.loading = false
	if err != nil {
		v.open = false
		v.mu.Unlock()
		v.ui.Alert(v.failMsg)
		return nil, &common.ActionError{Message: v.failMsg, Err: err}
	}
	v.results = r
	v.mu.Unlock()
	return r, nil
}

func (v *ResultsViewer) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.open, v.loading, v.results = false, false, nil
}

// Snapshot reports the panel state.
func (v *ResultsViewer) Snapshot() (open, loading bool, r *models.PollResults) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.open, v.loading, v.results
}
