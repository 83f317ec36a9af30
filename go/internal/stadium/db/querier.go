package db

import (
	"context"
)

type Querier interface {
	CreateStadium(ctx context.Context, arg CreateStadiumParams) (Stadium, error)
	DeleteStadium(ctx context.Context, id int64) error
	GetStadium(ctx context.Context, id int64) (Stadium, error)
	GetStadiumByUk(ctx context.Context, stadiumUk string) (Stadium, error)
	ListStadiums(ctx context.Context) ([]Stadium, error)
	UpdateStadium(ctx context.Context, arg UpdateStadiumParams) (Stadium, error)
}

var _ Querier = (*Queries)(nil)
