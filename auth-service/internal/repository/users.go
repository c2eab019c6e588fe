package repository

import "context"

const createUser = `
INSERT INTO users (username, password)
VALUES ($1, $2)
RETURNING id, username, password, created_at
`

type CreateUserParams struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateUser persists a new user. Username uniqueness is enforced by the
// unique constraint on the table; a duplicate surfaces as a pgconn error with
// SQLSTATE 23505 rather than a pre-insert existence check, so two concurrent
// registrations for the same name can never both succeed.
func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) (User, error) {
	row := q.db.QueryRow(ctx, createUser, arg.Username, arg.Password)
	var u User
	err := row.Scan(&u.ID, &u.Username, &u.Password, &u.CreatedAt)
	return u, err
}

const getUserByUsername = `
SELECT id, username, password, created_at FROM users
WHERE username = $1
`

func (q *Queries) GetUserByUsername(ctx context.Context, username string) (User, error) {
	row := q.db.QueryRow(ctx, getUserByUsername, username)
	var u User
	err := row.Scan(&u.ID, &u.Username, &u.Password, &u.CreatedAt)
	return u, err
}

const deleteUserByUsername = `
DELETE FROM users
WHERE username = $1
`

func (q *Queries) DeleteUserByUsername(ctx context.Context, username string) (int64, error) {
	tag, err := q.db.Exec(ctx, deleteUserByUsername, username)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
