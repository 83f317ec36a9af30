package messenger

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Envelope codes embedded in every response body
const (
	CodeOK         = http.StatusOK
	CodeBadRequest = http.StatusBadRequest
	CodeNotFound   = http.StatusNotFound
	CodeError      = http.StatusInternalServerError
	CodeBadGateway = http.StatusBadGateway
)

// Messenger is the uniform response envelope returned by every endpoint
type Messenger struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// Success wraps data in a 200 envelope
func Success(message string, data any) Messenger {
	return Messenger{Code: CodeOK, Message: message, Data: data}
}

// NotFound builds a 404 envelope with no data
func NotFound(message string) Messenger {
	return Messenger{Code: CodeNotFound, Message: message}
}

// BadRequest builds a 400 envelope with no data
func BadRequest(message string) Messenger {
	return Messenger{Code: CodeBadRequest, Message: message}
}

// BadGateway builds a 502 envelope for upstream failures seen by the gateway
func BadGateway(message string) Messenger {
	return Messenger{Code: CodeBadGateway, Message: message}
}

// Error builds a 500 envelope with no data
func Error(message string) Messenger {
	return Messenger{Code: CodeError, Message: message}
}

// HTTPStatus is the transport status used when writing m.
// Success and not-found travel as 200 so clients read the embedded code.
func (m Messenger) HTTPStatus() int {
	switch m.Code {
	case CodeBadRequest, CodeError, CodeBadGateway:
		return m.Code
	default:
		return http.StatusOK
	}
}

// Write encodes m as JSON to w
func Write(w http.ResponseWriter, m Messenger) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(m.HTTPStatus())
	if err := json.NewEncoder(w).Encode(m); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
