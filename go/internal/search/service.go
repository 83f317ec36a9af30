package search

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/labzang/soccer/go/internal/httpapi"
	"github.com/labzang/soccer/go/internal/messenger"
)

const (
	msgEmptyKeyword = "검색어를 입력해주세요."
	msgNoResults    = "검색 결과가 없습니다."
)

// Request is the body of POST /search
type Request struct {
	Domain  string `json:"domain"`
	Keyword string `json:"keyword"`
}

type Searcher interface {
	Search(ctx context.Context, domain, keyword string) (*Result, error)
}

// Service is the HTTP adapter for keyword search
type Service struct {
	searcher Searcher
}

func NewService(searcher Searcher) *Service {
	return &Service{searcher: searcher}
}

// Routes returns the search router, mounted under /search
func (s *Service) Routes() http.Handler {
	r := chi.NewRouter()
	r.Post("/", s.Search)
	return r
}

// Search handles POST /search
func (s *Service) Search(w http.ResponseWriter, r *http.Request) {
	var req Request
	if err := httpapi.Decode(r, &req); err != nil {
		httpapi.Fail(w, r, err, "")
		return
	}

	res, err := s.searcher.Search(r.Context(), req.Domain, req.Keyword)
	if err != nil {
		messenger.Write(w, messenger.Error(failureMessage(err)))
		return
	}

	if res.Count == 0 {
		messenger.Write(w, messenger.Success(msgNoResults, res.Items))
		return
	}
	msg := fmt.Sprintf("'%s' 검색 결과 %d건이 발견되었습니다.", req.Keyword, res.Count)
	messenger.Write(w, messenger.Success(msg, res.Items))
}

func failureMessage(err error) string {
	var unsupported *UnsupportedDomainError
	switch {
	case errors.Is(err, ErrEmptyKeyword):
		return msgEmptyKeyword
	case errors.As(err, &unsupported):
		return "지원하지 않는 검색 도메인입니다: " + unsupported.Domain
	default:
		log.Error().Err(err).Msg("search failed")
		return fmt.Sprintf("검색 중 오류가 발생했습니다: %v", err)
	}
}
