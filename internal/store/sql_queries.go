package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-meet/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	userColumns = `id, telegram_id, username, status, created_at, updated_at`

	upsertUser = `INSERT INTO users (id, telegram_id, username)
	VALUES ($1, $2, $3)
	ON CONFLICT (telegram_id) DO UPDATE
		SET username   = COALESCE(EXCLUDED.username, users.username),
		    updated_at = now()
	RETURNING ` + userColumns + `;`

	findUserByID = `SELECT ` + userColumns + `
	FROM users
	WHERE id = $1;`

	setUserStatus = `UPDATE users
	SET status = $2, updated_at = now()
	WHERE id = $1
	RETURNING ` + userColumns + `;`

	listUsersWithProfiles = `SELECT u.id, u.telegram_id, u.username, u.status, u.created_at, u.updated_at,
		p.id, p.name, p.birth_date, p.city, p.about, p.photo_url, p.created_at, p.updated_at
	FROM users u
	LEFT JOIN profiles p ON p.user_id = u.id
	ORDER BY u.created_at, u.id;`

	profileColumns = `id, user_id, name, birth_date, city, about, photo_url, created_at, updated_at`

	// $6 is the new photo url; empty keeps the stored one
	upsertProfile = `INSERT INTO profiles (user_id, name, birth_date, city, about, photo_url)
	VALUES ($1, $2, $3, $4, $5, COALESCE(NULLIF($6::text, ''), '` + models.DefaultPhotoURL + `'))
	ON CONFLICT (user_id) DO UPDATE
		SET name       = EXCLUDED.name,
		    birth_date = EXCLUDED.birth_date,
		    city       = EXCLUDED.city,
		    about      = EXCLUDED.about,
		    photo_url  = COALESCE(NULLIF($6::text, ''), profiles.photo_url),
		    updated_at = now()
	RETURNING ` + profileColumns + `;`

	deleteProfileInterests = `DELETE FROM profile_interests WHERE profile_id = $1;`

	getProfileByUserID = `SELECT p.id, p.user_id, p.name, p.birth_date, p.city, p.about, p.photo_url, p.created_at, p.updated_at,
		u.id, u.username, u.telegram_id, u.status
	FROM profiles p
	JOIN users u ON u.id = p.user_id
	WHERE p.user_id = $1;`

	listInterests = `SELECT id, name FROM interests ORDER BY id;`

	connectionColumns = `id, requester_id, receiver_id, status, created_at, updated_at`

	createConnection = `INSERT INTO connections (requester_id, receiver_id)
	VALUES ($1, $2)
	RETURNING ` + connectionColumns + `;`

	respondToConnection = `UPDATE connections
	SET status = $3, updated_at = now()
	WHERE id = $1 AND receiver_id = $2 AND status = 'PENDING'
	RETURNING ` + connectionColumns + `;`

	findConnectionStatus = `SELECT status
	FROM connections
	WHERE id = $1 AND receiver_id = $2;`
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildFeedQuery builds the feed SELECT for filter. The viewer and
// unverified users are always excluded.
func buildFeedQuery(filter models.FeedFilter, today time.Time) (string, []any, error) {
	query := psql.
		Select(
			"p.id", "p.user_id", "p.name", "p.birth_date", "p.city", "p.about", "p.photo_url", "p.created_at", "p.updated_at",
			"u.id", "u.username", "u.telegram_id", "u.status",
		).
		From("profiles p").
		Join("users u ON u.id = p.user_id").
		Where(sq.NotEq{"p.user_id": filter.ViewerID}).
		Where(sq.Eq{"u.status": string(models.UserStatusVerified)})

	if city := strings.TrimSpace(filter.City); city != "" {
		query = query.Where("lower(p.city) = lower(?)", city)
	}

	bornAfter, bornOnOrBefore := birthDateBounds(today, filter.AgeFrom, filter.AgeTo)
	if bornAfter != nil {
		query = query.Where("p.birth_date > CAST(? AS DATE)", bornAfter.Format(models.DateLayout))
	}
	if bornOnOrBefore != nil {
		query = query.Where("p.birth_date <= CAST(? AS DATE)", bornOnOrBefore.Format(models.DateLayout))
	}

	if len(filter.InterestIDs) > 0 {
		sub, subArgs, err := sq.
			Select("1").
			From("profile_interests pi").
			Where("pi.profile_id = p.id").
			Where(sq.Eq{"pi.interest_id": filter.InterestIDs}).
			ToSql()
		if err != nil {
			return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		query = query.Where("EXISTS ("+sub+")", subArgs...)
	}

	sql, args, err := query.OrderBy("p.created_at DESC", "p.id DESC").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sql, args, nil
}

// birthDateBounds converts inclusive age bounds into birth date bounds.
//
// Someone is at most ageTo years old while their (ageTo+1)-th birthday is
// still ahead, so the birth date must be strictly after today minus ageTo+1
// years. Someone is at least ageFrom years old once their ageFrom-th
// birthday is today or behind.
func birthDateBounds(today time.Time, ageFrom, ageTo *int) (bornAfter, bornOnOrBefore *time.Time) {
	day := models.NewDate(today).Time

	if ageTo != nil {
		t := yearsBefore(day, *ageTo+1)
		bornAfter = &t
	}
	if ageFrom != nil {
		t := yearsBefore(day, *ageFrom)
		bornOnOrBefore = &t
	}
	return bornAfter, bornOnOrBefore
}

// yearsBefore moves day back n years. February 29 becomes February 28 in
// non-leap years instead of rolling over into March.
func yearsBefore(day time.Time, n int) time.Time {
	t := day.AddDate(-n, 0, 0)
	if t.Day() != day.Day() {
		t = t.AddDate(0, 0, -t.Day())
	}
	return t
}

// buildProfileInterestsQuery selects the interests of every profile in profileIDs.
func buildProfileInterestsQuery(profileIDs []int64) (string, []any, error) {
	sql, args, err := psql.
		Select("pi.profile_id", "i.id", "i.name").
		From("profile_interests pi").
		Join("interests i ON i.id = pi.interest_id").
		Where(sq.Eq{"pi.profile_id": profileIDs}).
		OrderBy("pi.profile_id", "i.name").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sql, args, nil
}

// buildInsertProfileInterestsQuery links profileID to every interest in interestIDs.
func buildInsertProfileInterestsQuery(profileID int64, interestIDs []int64) (string, []any, error) {
	query := psql.Insert("profile_interests").Columns("profile_id", "interest_id")
	for _, id := range interestIDs {
		query = query.Values(profileID, id)
	}

	sql, args, err := query.Suffix("ON CONFLICT DO NOTHING").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sql, args, nil
}

// buildEnsureInterestsQuery inserts missing interest names and returns
// every row for names.
func buildEnsureInterestsQuery(names []string) (string, []any, error) {
	query := psql.Insert("interests").Columns("name")
	for _, name := range names {
		query = query.Values(name)
	}

	sql, args, err := query.
		Suffix("ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name RETURNING id, name").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sql, args, nil
}

// buildIncomingConnectionsQuery selects pending requests addressed to
// receiverID, newest first, with the requester and their profile if any.
func buildIncomingConnectionsQuery(receiverID string) (string, []any, error) {
	sql, args, err := psql.
		Select(
			"c.id", "c.requester_id", "c.receiver_id", "c.status", "c.created_at", "c.updated_at",
			"u.id", "u.username", "u.telegram_id", "u.status",
			"p.id", "p.name", "p.birth_date", "p.city", "p.about", "p.photo_url", "p.created_at", "p.updated_at",
		).
		From("connections c").
		Join("users u ON u.id = c.requester_id").
		LeftJoin("profiles p ON p.user_id = c.requester_id").
		Where(sq.Eq{"c.receiver_id": receiverID, "c.status": string(models.ConnectionStatusPending)}).
		OrderBy("c.created_at DESC", "c.id DESC").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return sql, args, nil
}
