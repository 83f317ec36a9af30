package schedule

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/labzang/soccer/go/internal/httpapi"
	"github.com/labzang/soccer/go/internal/messenger"
	"github.com/labzang/soccer/go/internal/models"
)

const (
	msgNotFound       = "일정을 찾을 수 없습니다."
	msgUpdateNotFound = "수정할 일정을 찾을 수 없습니다."
	msgDeleteNotFound = "삭제할 일정을 찾을 수 없습니다."
)

type ScheduleApp interface {
	GetSchedule(ctx context.Context, id int64) (*models.Schedule, error)
	ListAllSchedules(ctx context.Context) ([]models.Schedule, error)
	CreateSchedule(ctx context.Context, req models.Schedule) (*models.Schedule, error)
	CreateSchedules(ctx context.Context, reqs []models.Schedule) ([]models.Schedule, error)
	UpdateSchedule(ctx context.Context, id int64, req models.Schedule) (*models.Schedule, error)
	DeleteSchedule(ctx context.Context, id int64) error
}

// Service exposes schedule operations over HTTP
type Service struct {
	app ScheduleApp
}

func NewService(app ScheduleApp) *Service {
	return &Service{
		app: app,
	}
}

// Routes returns the schedule router, mounted under /schedules
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
	var req models.Schedule
	if err := decodeWithID(r, &req); err != nil {
		httpapi.Fail(w, r, err, msgNotFound)
		return
	}

	sc, err := s.app.GetSchedule(r.Context(), req.ID)
	if err != nil {
		httpapi.Fail(w, r, err, msgNotFound)
		return
	}
	messenger.Write(w, messenger.Success(messenger.MsgFound, sc))
}

func (s *Service) FindAll(w http.ResponseWriter, r *http.Request) {
	schedules, err := s.app.ListAllSchedules(r.Context())
	if err != nil {
		httpapi.Fail(w, r, err, msgNotFound)
		return
	}
	messenger.Write(w, messenger.Success(messenger.FoundAll(len(schedules)), schedules))
}

func (s *Service) Save(w http.ResponseWriter, r *http.Request) {
	var req models.Schedule
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.Fail(w, r, err, msgNotFound)
		return
	}

	sc, err := s.app.CreateSchedule(r.Context(), req)
	if err != nil {
		httpapi.Fail(w, r, err, msgNotFound)
		return
	}
	messenger.Write(w, messenger.Success(messenger.Saved(sc.ID), sc))
}

func (s *Service) SaveAll(w http.ResponseWriter, r *http.Request) {
	var reqs []models.Schedule
	if err := httpapi.Decode(r, &reqs); err != nil {
		httpapi.Fail(w, r, err, msgNotFound)
		return
	}

	schedules, err := s.app.CreateSchedules(r.Context(), reqs)
	if err != nil {
		httpapi.Fail(w, r, err, msgNotFound)
		return
	}
	messenger.Write(w, messenger.Success(messenger.SavedAll(len(schedules)), schedules))
}

func (s *Service) Update(w http.ResponseWriter, r *http.Request) {
	var req models.Schedule
	if err := decodeWithID(r, &req); err != nil {
		httpapi.Fail(w, r, err, msgUpdateNotFound)
		return
	}

	sc, err := s.app.UpdateSchedule(r.Context(), req.ID, req)
	if err != nil {
		httpapi.Fail(w, r, err, msgUpdateNotFound)
		return
	}
	messenger.Write(w, messenger.Success(messenger.Updated(req.ID), sc))
}

func (s *Service) Delete(w http.ResponseWriter, r *http.Request) {
	var req models.Schedule
	if err := decodeWithID(r, &req); err != nil {
		httpapi.Fail(w, r, err, msgDeleteNotFound)
		return
	}

	if err := s.app.DeleteSchedule(r.Context(), req.ID); err != nil {
		httpapi.Fail(w, r, err, msgDeleteNotFound)
		return
	}
	messenger.Write(w, messenger.Success(messenger.Deleted(req.ID), nil))
}

func decodeWithID(r *http.Request, req *models.Schedule) error {
	if err := httpapi.Decode(r, req); err != nil {
		return err
	}
	return httpapi.RequireID(req.ID)
}
