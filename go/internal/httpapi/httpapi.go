package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/labzang/soccer/go/internal/messenger"
	"github.com/labzang/soccer/go/internal/models"
)

// maxBodyBytes caps request bodies; saveAll batches are the largest payloads.
const maxBodyBytes = 4 << 20

var validate = validator.New(validator.WithRequiredStructEnabled())

// Decode reads a JSON request body into dst
func Decode(r *http.Request, dst any) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("request body is empty: %w", models.ErrInvalidArgument)
		}
		return fmt.Errorf("malformed request body: %v: %w", err, models.ErrInvalidArgument)
	}
	return nil
}

// RequireID checks that an id-bearing request carries a positive id
func RequireID(id int64) error {
	if err := validate.Var(id, "required,gt=0"); err != nil {
		return fmt.Errorf("id is required: %w", models.ErrInvalidArgument)
	}
	return nil
}

// Fail translates an app error into an envelope.
// notFound is the message used when err wraps models.ErrNotFound.
func Fail(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		messenger.Write(w, messenger.NotFound(notFound))
	case errors.Is(err, models.ErrInvalidArgument):
		messenger.Write(w, messenger.BadRequest(err.Error()))
	default:
		log.Error().Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request failed")
		messenger.Write(w, messenger.Error(err.Error()))
	}
}
