package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/RitishHUB/polling-frountend/internal/client/client"
	"github.com/RitishHUB/polling-frountend/internal/client/models"
	"github.com/RitishHUB/polling-frountend/internal/logging"
)

// AdminData is everything the admin dashboard renders.
type AdminData struct {
	Users []models.User
	Polls []models.Poll
	Stats models.AdminStats
}

// StudentData is everything the student dashboard renders.
type StudentData struct {
	Polls     []models.Poll
	Dashboard models.StudentDashboard
}

// PollService loads page data and performs user actions. Loads issue their
// requests in parallel and succeed only if every request succeeds; requests
// already issued are never cancelled. Actions are single calls.
type PollService interface {
	LoadAdmin(ctx context.Context) (*AdminData, error)
	LoadPolls(ctx context.Context) ([]models.Poll, error)
	LoadStudent(ctx context.Context) (*StudentData, error)

	Vote(ctx context.Context, pollID string, optionIndex int) (*models.VoteResponse, error)
	CreatePoll(ctx context.Context, draft *models.PollDraft) (*models.Poll, error)
	DeletePoll(ctx context.Context, id string) error
	DeleteUser(ctx context.Context, id string) error
	Results(ctx context.Context, pollID string) (*models.PollResults, error)
	SaveProfile(ctx context.Context, update models.ProfileUpdate) (*models.Session, error)
}

type pollService struct {
	client client.Client
	auth   AuthService
	log    logging.Logger
}

func NewPollService(c client.Client, auth AuthService, log logging.Logger) PollService {
	if log == nil {
		log = logging.Nop{}
	}
	return &pollService{client: c, auth: auth, log: log}
}

func (s *pollService) LoadAdmin(ctx context.Context) (*AdminData, error) {
	var (
		g     errgroup.Group
		users []models.User
		polls []models.Poll
		stats *models.AdminStats
	)

	g.Go(func() (err error) {
		users, err = s.client.ListUsers(ctx)
		return err
	})
	g.Go(func() (err error) {
		polls, err = s.client.ListPolls(ctx)
		return err
	})
	g.Go(func() (err error) {
		stats, err = s.client.AdminStats(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &AdminData{Users: users, Polls: polls, Stats: *stats}, nil
}

func (s *pollService) LoadPolls(ctx context.Context) ([]models.Poll, error) {
	return s.client.ListPolls(ctx)
}

func (s *pollService) LoadStudent(ctx context.Context) (*StudentData, error) {
	var (
		g     errgroup.Group
		polls []models.Poll
		dash  *models.StudentDashboard
	)

	g.Go(func() (err error) {
		polls, err = s.client.ListPolls(ctx)
		return err
	})
	g.Go(func() (err error) {
		dash, err = s.client.StudentDashboard(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &StudentData{Polls: polls, Dashboard: *dash}, nil
}

func (s *pollService) Vote(ctx context.Context, pollID string, optionIndex int) (*models.VoteResponse, error) {
	resp, err := s.client.Vote(ctx, pollID, optionIndex)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "vote recorded", "poll", pollID, "option", optionIndex, "badge", resp.NewBadge)
	return resp, nil
}

// CreatePoll validates the draft first; an invalid draft never reaches the
// network.
func (s *pollService) CreatePoll(ctx context.Context, draft *models.PollDraft) (*models.Poll, error) {
	if err := draft.Validate(); err != nil {
		return nil, err
	}
	p, err := s.client.CreatePoll(ctx, draft)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "poll created", "poll", p.ID, "title", draft.Title)
	return p, nil
}

func (s *pollService) DeletePoll(ctx context.Context, id string) error {
	if err := s.client.DeletePoll(ctx, id); err != nil {
		return err
	}
	s.log.Info(ctx, "poll deleted", "poll", id)
	return nil
}

func (s *pollService) DeleteUser(ctx context.Context, id string) error {
	if err := s.client.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.log.Info(ctx, "user deleted", "user", id)
	return nil
}

func (s *pollService) Results(ctx context.Context, pollID string) (*models.PollResults, error) {
	return s.client.PollResults(ctx, pollID)
}

// SaveProfile sends the edit and merges the server's answer into the shared
// session, so every view reading the session sees the new values at once.
func (s *pollService) SaveProfile(ctx context.Context, update models.ProfileUpdate) (*models.Session, error) {
	raw, err := s.client.UpdateProfile(ctx, update)
	if err != nil {
		return nil, err
	}
	return s.auth.UpdateProfile(ctx, raw)
}
