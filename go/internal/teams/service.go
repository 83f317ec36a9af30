package teams

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/labzang/soccer/go/internal/httpapi"
	"github.com/labzang/soccer/go/internal/messenger"
	"github.com/labzang/soccer/go/internal/models"
)

const (
	msgNotFound       = "팀을 찾을 수 없습니다."
	msgUpdateNotFound = "수정할 팀을 찾을 수 없습니다."
	msgDeleteNotFound = "삭제할 팀을 찾을 수 없습니다."
)

// TeamsApp defines what the service layer needs from the teams application
type TeamsApp interface {
	GetTeam(ctx context.Context, id int64) (*models.Team, error)
	ListAllTeams(ctx context.Context) ([]models.Team, error)
	CreateTeam(ctx context.Context, req models.Team) (*models.Team, error)
	CreateTeams(ctx context.Context, reqs []models.Team) ([]models.Team, error)
	UpdateTeam(ctx context.Context, id int64, req models.Team) (*models.Team, error)
	DeleteTeam(ctx context.Context, id int64) error
}

// Service exposes team operations over HTTP
type Service struct {
	app TeamsApp
}

// NewService creates a new teams HTTP service
func NewService(app TeamsApp) *Service {
	return &Service{
		app: app,
	}
}

// Routes returns the team endpoints, mounted under /team by the server
func (s *Service) Routes() http.Handler {
	r := chi.NewRouter()
	r.Post("/findById", s.FindByID)
	r.Get("/", s.FindAll)
	r.Post("/", s.Save)
	r.Post("/saveAll", s.SaveAll)
	r.Post("/all", s.SaveAll)
	r.Put("/", s.Update)
	r.Delete("/", s.Delete)
	return r
}

// FindByID retrieves a team by ID
func (s *Service) FindByID(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeIDRequest(r)
	if err != nil {
		httpapi.Fail(w, r, err, msgNotFound)
		return
	}

	team, err := s.app.GetTeam(r.Context(), req.ID)
	if err != nil {
		httpapi.Fail(w, r, err, msgNotFound)
		return
	}

	messenger.Write(w, messenger.Success(messenger.MsgFound, team))
}

// FindAll retrieves all teams
func (s *Service) FindAll(w http.ResponseWriter, r *http.Request) {
	teams, err := s.app.ListAllTeams(r.Context())
	if err != nil {
		httpapi.Fail(w, r, err, msgNotFound)
		return
	}

	messenger.Write(w, messenger.Success(messenger.FoundAll(len(teams)), teams))
}

// Save creates a new team
func (s *Service) Save(w http.ResponseWriter, r *http.Request) {
	var req models.Team
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.Fail(w, r, err, msgNotFound)
		return
	}

	team, err := s.app.CreateTeam(r.Context(), req)
	if err != nil {
		httpapi.Fail(w, r, err, msgNotFound)
		return
	}

	messenger.Write(w, messenger.Success(messenger.Saved(team.ID), team))
}

// SaveAll creates a batch of teams
func (s *Service) SaveAll(w http.ResponseWriter, r *http.Request) {
	var reqs []models.Team
	if err := httpapi.Decode(r, &reqs); err != nil {
		httpapi.Fail(w, r, err, msgNotFound)
		return
	}

	teams, err := s.app.CreateTeams(r.Context(), reqs)
	if err != nil {
		httpapi.Fail(w, r, err, msgNotFound)
		return
	}

	messenger.Write(w, messenger.Success(messenger.SavedAll(len(teams)), teams))
}

// Update merges the supplied fields into an existing team
func (s *Service) Update(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeIDRequest(r)
	if err != nil {
		httpapi.Fail(w, r, err, msgUpdateNotFound)
		return
	}

	team, err := s.app.UpdateTeam(r.Context(), req.ID, *req)
	if err != nil {
		httpapi.Fail(w, r, err, msgUpdateNotFound)
		return
	}

	messenger.Write(w, messenger.Success(messenger.Updated(req.ID), team))
}

// Delete deletes a team by ID
func (s *Service) Delete(w http.ResponseWriter, r *http.Request) {
	req, err := s.decodeIDRequest(r)
	if err != nil {
		httpapi.Fail(w, r, err, msgDeleteNotFound)
		return
	}

	if err := s.app.DeleteTeam(r.Context(), req.ID); err != nil {
		httpapi.Fail(w, r, err, msgDeleteNotFound)
		return
	}

	messenger.Write(w, messenger.Success(messenger.Deleted(req.ID), nil))
}

func (s *Service) decodeIDRequest(r *http.Request) (*models.Team, error) {
	var req models.Team
	if err := httpapi.Decode(r, &req); err != nil {
		return nil, err
	}
	if err := httpapi.RequireID(req.ID); err != nil {
		return nil, err
	}
	return &req, nil
}
