package repository

import "github.com/jackc/pgx/v5/pgtype"

type User struct {
	ID        pgtype.UUID        `json:"id"`
	Username  string             `json:"username"`
	Password  string             `json:"-"`
	CreatedAt pgtype.Timestamptz `json:"createdAt"`
}
