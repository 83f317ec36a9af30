package player

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/labzang/soccer/go/internal/httpapi"
	"github.com/labzang/soccer/go/internal/messenger"
	"github.com/labzang/soccer/go/internal/models"
)

const (
	msgNotFound       = "선수를 찾을 수 없습니다."
	msgUpdateNotFound = "수정할 선수를 찾을 수 없습니다."
	msgDeleteNotFound = "삭제할 선수를 찾을 수 없습니다."
)

// PlayerApp defines what the service layer needs from the player application
type PlayerApp interface {
	GetPlayer(ctx context.Context, id int64) (*models.Player, error)
	ListAllPlayers(ctx context.Context) ([]models.Player, error)
	CreatePlayer(ctx context.Context, req models.Player) (*models.Player, error)
	CreatePlayers(ctx context.Context, reqs []models.Player) ([]models.Player, error)
	UpdatePlayer(ctx context.Context, id int64, req models.Player) (*models.Player, error)
	DeletePlayer(ctx context.Context, id int64) error
}

// Service implements the player HTTP endpoints
type Service struct {
	app PlayerApp
}

func NewService(app PlayerApp) *Service {
	return &Service{
		app: app,
	}
}

// Routes returns the player router, mounted under /players
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

func (s *Service) FindByID(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeWithID(w, r, msgNotFound)
	if !ok {
		return
	}

	p, err := s.app.GetPlayer(r.Context(), req.ID)
	if err != nil {
		httpapi.Fail(w, r, err, msgNotFound)
		return
	}

	messenger.Write(w, messenger.Success(messenger.MsgFound, p))
}

func (s *Service) FindAll(w http.ResponseWriter, r *http.Request) {
	players, err := s.app.ListAllPlayers(r.Context())
	if err != nil {
		httpapi.Fail(w, r, err, msgNotFound)
		return
	}

	messenger.Write(w, messenger.Success(messenger.FoundAll(len(players)), players))
}

func (s *Service) Save(w http.ResponseWriter, r *http.Request) {
	var req models.Player
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.Fail(w, r, err, msgNotFound)
		return
	}

	p, err := s.app.CreatePlayer(r.Context(), req)
	if err != nil {
		httpapi.Fail(w, r, err, msgNotFound)
		return
	}

	messenger.Write(w, messenger.Success(messenger.Saved(p.ID), p))
}

func (s *Service) SaveAll(w http.ResponseWriter, r *http.Request) {
	var reqs []models.Player
	if err := httpapi.Decode(r, &reqs); err != nil {
		httpapi.Fail(w, r, err, msgNotFound)
		return
	}

	players, err := s.app.CreatePlayers(r.Context(), reqs)
	if err != nil {
		httpapi.Fail(w, r, err, msgNotFound)
		return
	}

	messenger.Write(w, messenger.Success(messenger.SavedAll(len(players)), players))
}

func (s *Service) Update(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeWithID(w, r, msgUpdateNotFound)
	if !ok {
		return
	}

	p, err := s.app.UpdatePlayer(r.Context(), req.ID, req)
	if err != nil {
		httpapi.Fail(w, r, err, msgUpdateNotFound)
		return
	}

	messenger.Write(w, messenger.Success(messenger.Updated(req.ID), p))
}

func (s *Service) Delete(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeWithID(w, r, msgDeleteNotFound)
	if !ok {
		return
	}

	if err := s.app.DeletePlayer(r.Context(), req.ID); err != nil {
		httpapi.Fail(w, r, err, msgDeleteNotFound)
		return
	}

	messenger.Write(w, messenger.Success(messenger.Deleted(req.ID), nil))
}

// decodeWithID decodes a player body that must carry an id, writing the
// error envelope itself when it does not.
func (s *Service) decodeWithID(w http.ResponseWriter, r *http.Request, notFoundMsg string) (models.Player, bool) {
	var req models.Player
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.Fail(w, r, err, notFoundMsg)
		return req, false
	}
	if err := httpapi.RequireID(req.ID); err != nil {
		httpapi.Fail(w, r, err, notFoundMsg)
		return req, false
	}
	return req, true
}
