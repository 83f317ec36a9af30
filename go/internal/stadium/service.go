package stadium

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/labzang/soccer/go/internal/httpapi"
	"github.com/labzang/soccer/go/internal/messenger"
	"github.com/labzang/soccer/go/internal/models"
)

const (
	msgNotFound       = "경기장을 찾을 수 없습니다."
	msgUpdateNotFound = "수정할 경기장을 찾을 수 없습니다."
	msgDeleteNotFound = "삭제할 경기장을 찾을 수 없습니다."
)

// StadiumApp defines what the service layer needs from the stadium application
type StadiumApp interface {
	GetStadium(ctx context.Context, id int64) (*models.Stadium, error)
	ListAllStadiums(ctx context.Context) ([]models.Stadium, error)
	CreateStadium(ctx context.Context, req models.Stadium) (*models.Stadium, error)
	CreateStadiums(ctx context.Context, reqs []models.Stadium) ([]models.Stadium, error)
	UpdateStadium(ctx context.Context, id int64, req models.Stadium) (*models.Stadium, error)
	DeleteStadium(ctx context.Context, id int64) error
}

// Service exposes stadium operations over HTTP
type Service struct {
	app StadiumApp
}

// NewService creates a new stadium HTTP service
func NewService(app StadiumApp) *Service {
	return &Service{
		app: app,
	}
}

// Routes mounts the stadium endpoints; the caller chooses the prefix
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

// FindByID returns a single stadium
func (s *Service) FindByID(w http.ResponseWriter, r *http.Request) {
	var req models.Stadium
	if err := decodeWithID(r, &req); err != nil {
		httpapi.Fail(w, r, err, msgNotFound)
		return
	}

	stadium, err := s.app.GetStadium(r.Context(), req.ID)
	if err != nil {
		httpapi.Fail(w, r, err, msgNotFound)
		return
	}
	messenger.Write(w, messenger.Success(messenger.MsgFound, stadium))
}

// FindAll returns every stadium
func (s *Service) FindAll(w http.ResponseWriter, r *http.Request) {
	stadiums, err := s.app.ListAllStadiums(r.Context())
	if err != nil {
		httpapi.Fail(w, r, err, msgNotFound)
		return
	}
	messenger.Write(w, messenger.Success(messenger.FoundAll(len(stadiums)), stadiums))
}

// Save creates a stadium
func (s *Service) Save(w http.ResponseWriter, r *http.Request) {
	var req models.Stadium
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.Fail(w, r, err, msgNotFound)
		return
	}

	stadium, err := s.app.CreateStadium(r.Context(), req)
	if err != nil {
		httpapi.Fail(w, r, err, msgNotFound)
		return
	}
	messenger.Write(w, messenger.Success(messenger.Saved(stadium.ID), stadium))
}

// SaveAll creates a batch of stadiums
func (s *Service) SaveAll(w http.ResponseWriter, r *http.Request) {
	var reqs []models.Stadium
	if err := httpapi.Decode(r, &reqs); err != nil {
		httpapi.Fail(w, r, err, msgNotFound)
		return
	}

	stadiums, err := s.app.CreateStadiums(r.Context(), reqs)
	if err != nil {
		httpapi.Fail(w, r, err, msgNotFound)
		return
	}
	messenger.Write(w, messenger.Success(messenger.SavedAll(len(stadiums)), stadiums))
}

// Update merges the supplied fields into an existing stadium
func (s *Service) Update(w http.ResponseWriter, r *http.Request) {
	var req models.Stadium
	if err := decodeWithID(r, &req); err != nil {
		httpapi.Fail(w, r, err, msgUpdateNotFound)
		return
	}

	stadium, err := s.app.UpdateStadium(r.Context(), req.ID, req)
	if err != nil {
		httpapi.Fail(w, r, err, msgUpdateNotFound)
		return
	}
	messenger.Write(w, messenger.Success(messenger.Updated(req.ID), stadium))
}

// Delete removes a stadium
func (s *Service) Delete(w http.ResponseWriter, r *http.Request) {
	var req models.Stadium
	if err := decodeWithID(r, &req); err != nil {
		httpapi.Fail(w, r, err, msgDeleteNotFound)
		return
	}

	if err := s.app.DeleteStadium(r.Context(), req.ID); err != nil {
		httpapi.Fail(w, r, err, msgDeleteNotFound)
		return
	}
	messenger.Write(w, messenger.Success(messenger.Deleted(req.ID), nil))
}

func decodeWithID(r *http.Request, req *models.Stadium) error {
	if err := httpapi.Decode(r, req); err != nil {
		return err
	}
	return httpapi.RequireID(req.ID)
}
