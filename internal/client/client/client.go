package client

import (
	"context"
	"encoding/json"

	"github.com/RitishHUB/polling-frountend/internal/client/models"
)

// Client is the polling API as consumed by the pages.
type Client interface {
	Login(ctx context.Context, creds models.Credentials) (*models.Session, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.Session, error)

	ListPolls(ctx context.Context) ([]models.Poll, error)
	CreatePoll(ctx context.Context, draft *models.PollDraft) (*models.Poll, error)
	DeletePoll(ctx context.Context, id string) error
	Vote(ctx context.Context, pollID string, optionIndex int) (*models.VoteResponse, error)
	PollResults(ctx context.Context, pollID string) (*models.PollResults, error)

	ListUsers(ctx context.Context) ([]models.User, error)
	DeleteUser(ctx context.Context, id string) error
	AdminStats(ctx context.Context) (*models.AdminStats, error)
	StudentDashboard(ctx context.Context) (*models.StudentDashboard, error)

	// UpdateProfile returns the server's JSON answer unparsed so the caller
	// can merge whatever fields it contains into the session.
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (json.RawMessage, error)
}
