// Package pgx implements the user store on PostgreSQL via pgxpool.
package pgx

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nbarth/gatehouse/core"
)

type Adapter struct {
	pool *pgxpool.Pool
}

var _ core.UserStorage = (*Adapter)(nil)

func New(pool *pgxpool.Pool) *Adapter {
	return &Adapter{
		pool: pool,
	}
}
