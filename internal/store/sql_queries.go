package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-crm-front/models"
)

const (
	usersTable    = "users"
	sessionsTable = "sessions"
)

var (
	userColumns    = []string{"id", "username", "password_hash", "is_admin", "created_at"}
	sessionColumns = []string{"id", "data", "expires_at"}
)

// storedTime normalizes timestamps so SQLite's text representation sorts
// the same way the instants do.
func storedTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Second)
}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.Insert(usersTable).
		Columns("username", "password_hash", "is_admin").
		Values(user.Username, user.PasswordHash, user.IsAdmin).
		Suffix("RETURNING id, username, password_hash, is_admin, created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildFindUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	query, args, err := b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCountUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.Select("COUNT(*)").From(usersTable).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetSessionQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	query, args, err := b.Select(sessionColumns...).
		From(sessionsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSaveSessionQuery(b sq.StatementBuilderType, id, data string, expiresAt time.Time) (string, []any, error) {
	query, args, err := b.Insert(sessionsTable).
		Columns(sessionColumns...).
		Values(id, data, storedTime(expiresAt)).
		Suffix("ON CONFLICT (id) DO UPDATE SET data = excluded.data, expires_at = excluded.expires_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteSessionQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	query, args, err := b.Delete(sessionsTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteExpiredSessionsQuery(b sq.StatementBuilderType, now time.Time) (string, []any, error) {
	query, args, err := b.Delete(sessionsTable).
		Where(sq.LtOrEq{"expires_at": storedTime(now)}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
