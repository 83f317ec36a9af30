package search

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/labzang/soccer/go/internal/models"
)

// Domains accepted by Search
const (
	DomainPlayer   = "player"
	DomainDefault  = "default"
	DomainTeam     = "team"
	DomainStadium  = "stadium"
	DomainSchedule = "schedule"
)

// ErrEmptyKeyword is returned when the keyword is empty or only whitespace
var ErrEmptyKeyword = errors.New("empty keyword")

// UnsupportedDomainError names a domain Search cannot dispatch
type UnsupportedDomainError struct {
	Domain string
}

func (e *UnsupportedDomainError) Error() string {
	return fmt.Sprintf("unsupported search domain %q", e.Domain)
}

type PlayerSearcher interface {
	SearchPlayers(ctx context.Context, keyword string) ([]models.Player, error)
}

type TeamSearcher interface {
	SearchTeams(ctx context.Context, keyword string) ([]models.Team, error)
}

type StadiumSearcher interface {
	SearchStadiums(ctx context.Context, keyword string) ([]models.Stadium, error)
}

type ScheduleSearcher interface {
	SearchSchedules(ctx context.Context, keyword string) ([]models.Schedule, error)
}

// Result holds the matches of a single search. Items is always a non-nil
// slice of the domain's model type.
type Result struct {
	Domain string
	Count  int
	Items  any
}

// App dispatches keyword searches to the entity apps
type App struct {
	players   PlayerSearcher
	teams     TeamSearcher
	stadiums  StadiumSearcher
	schedules ScheduleSearcher
}

// NewApp creates a search App
func NewApp(players PlayerSearcher, teams TeamSearcher, stadiums StadiumSearcher, schedules ScheduleSearcher) *App {
	return &App{
		players:   players,
		teams:     teams,
		stadiums:  stadiums,
		schedules: schedules,
	}
}

// Search runs keyword against domain. An empty domain searches players.
func (a *App) Search(ctx context.Context, domain, keyword string) (*Result, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, ErrEmptyKeyword
	}
	if domain == "" {
		domain = DomainDefault
	}

	log.Debug().Str("domain", domain).Str("keyword", keyword).Msg("search")

	switch domain {
	case DomainPlayer, DomainDefault:
		if a.players == nil {
			break
		}
		players, err := a.players.SearchPlayers(ctx, keyword)
		return result(domain, players, err)
	case DomainTeam:
		if a.teams == nil {
			break
		}
		teams, err := a.teams.SearchTeams(ctx, keyword)
		return result(domain, teams, err)
	case DomainStadium:
		if a.stadiums == nil {
			break
		}
		stadiums, err := a.stadiums.SearchStadiums(ctx, keyword)
		return result(domain, stadiums, err)
	case DomainSchedule:
		if a.schedules == nil {
			break
		}
		schedules, err := a.schedules.SearchSchedules(ctx, keyword)
		return result(domain, schedules, err)
	}
	return nil, &UnsupportedDomainError{Domain: domain}
}

func result[T any](domain string, items []T, err error) (*Result, error) {
	if err != nil {
		return nil, fmt.Errorf("%s search: %w", domain, err)
	}
	if items == nil {
		items = []T{}
	}
	return &Result{Domain: domain, Count: len(items), Items: items}, nil
}
