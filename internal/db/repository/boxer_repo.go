package repository

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/boxlab/boxing-platform/internal/boxer"
)

// DB is the subset of pgxpool.Pool the repository needs. pgxmock satisfies
// the same interface, which keeps SQL-level tests hermetic.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// BoxerRepository exposes typed DB operations for the boxer registry.
type BoxerRepository struct {
	db DB
}

// NewBoxerRepository wraps a pgx pool (or mock) for boxer operations.
func NewBoxerRepository(db DB) *BoxerRepository {
	return &BoxerRepository{db: db}
}

const (
	createBoxerSQL = `INSERT INTO boxers (name, weight, height, reach, age)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`

	getBoxerByIDSQL = `SELECT id, name, weight, height, reach, age, fights, wins
FROM boxers WHERE id = $1`

	getBoxerByNameSQL = `SELECT id, name, weight, height, reach, age, fights, wins
FROM boxers WHERE name = $1`

	deleteBoxerSQL = `DELETE FROM boxers WHERE id = $1`

	recordWinSQL  = `UPDATE boxers SET fights = fights + 1, wins = wins + 1 WHERE id = $1`
	recordLossSQL = `UPDATE boxers SET fights = fights + 1 WHERE id = $1`

	leaderboardByWinsSQL = `SELECT id, name, weight, height, reach, age, fights, wins,
       wins::float / fights AS win_pct
FROM boxers WHERE fights > 0
ORDER BY wins DESC, id ASC
LIMIT $1`

	leaderboardByWinPctSQL = `SELECT id, name, weight, height, reach, age, fights, wins,
       wins::float / fights AS win_pct
FROM boxers WHERE fights > 0
ORDER BY win_pct DESC, id ASC
LIMIT $1`
)

// CreateBoxer inserts a new boxer with zeroed counters and returns the
// stored row. Duplicate names map to boxer.ErrNameTaken.
func (r *BoxerRepository) CreateBoxer(ctx context.Context, params boxer.NewBoxerParams) (boxer.Boxer, error) {
	var id int64
	err := r.db.QueryRow(ctx, createBoxerSQL,
		params.Name, params.Weight, params.Height, params.Reach, params.Age,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return boxer.Boxer{}, boxer.ErrNameTaken
		}
		return boxer.Boxer{}, fmt.Errorf("create boxer: %w", err)
	}

	return boxer.Boxer{
		ID:          id,
		Name:        params.Name,
		Weight:      params.Weight,
		Height:      params.Height,
		Reach:       params.Reach,
		Age:         params.Age,
		WeightClass: boxer.WeightClassFor(params.Weight),
	}, nil
}

// GetByID fetches a boxer snapshot by id.
func (r *BoxerRepository) GetByID(ctx context.Context, id int64) (boxer.Boxer, error) {
	return r.scanBoxer(r.db.QueryRow(ctx, getBoxerByIDSQL, id))
}

// GetByName fetches a boxer snapshot by its unique name.
func (r *BoxerRepository) GetByName(ctx context.Context, name string) (boxer.Boxer, error) {
	return r.scanBoxer(r.db.QueryRow(ctx, getBoxerByNameSQL, name))
}

// Delete removes a boxer row. Missing rows map to boxer.ErrNotFound.
func (r *BoxerRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, deleteBoxerSQL, id)
	if err != nil {
		return fmt.Errorf("delete boxer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return boxer.ErrNotFound
	}
	return nil
}

// RecordFightResult applies a fight outcome in a single transaction: the
// winner gains a fight and a win, the loser gains a fight. Either boxer
// missing rolls the whole update back.
func (r *BoxerRepository) RecordFightResult(ctx context.Context, winnerID, loserID int64) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin fight result tx: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, recordWinSQL, winnerID)
	if err != nil {
		return fmt.Errorf("record win: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return boxer.ErrNotFound
	}

	tag, err = tx.Exec(ctx, recordLossSQL, loserID)
	if err != nil {
		return fmt.Errorf("record loss: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return boxer.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit fight result: %w", err)
	}
	return nil
}

// Leaderboard returns boxers with at least one fight, ranked descending by
// the requested key with ties broken by ascending id.
func (r *BoxerRepository) Leaderboard(ctx context.Context, sortKey string, limit int) ([]boxer.LeaderboardEntry, error) {
	var query string
	switch sortKey {
	case boxer.SortByWins:
		query = leaderboardByWinsSQL
	case boxer.SortByWinPct:
		query = leaderboardByWinPctSQL
	default:
		return nil, boxer.ErrInvalidSortKey
	}

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	entries := make([]boxer.LeaderboardEntry, 0)
	for rows.Next() {
		var (
			e      boxer.LeaderboardEntry
			winPct float64
		)
		if err := rows.Scan(&e.ID, &e.Name, &e.Weight, &e.Height, &e.Reach, &e.Age, &e.Fights, &e.Wins, &winPct); err != nil {
			return nil, fmt.Errorf("scan leaderboard row: %w", err)
		}
		e.WeightClass = boxer.WeightClassFor(e.Weight)
		e.WinPct = math.Round(winPct*1000) / 10
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate leaderboard rows: %w", err)
	}
	return entries, nil
}

func (r *BoxerRepository) scanBoxer(row pgx.Row) (boxer.Boxer, error) {
	var b boxer.Boxer
	err := row.Scan(&b.ID, &b.Name, &b.Weight, &b.Height, &b.Reach, &b.Age, &b.Fights, &b.Wins)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return boxer.Boxer{}, boxer.ErrNotFound
		}
		return boxer.Boxer{}, fmt.Errorf("scan boxer: %w", err)
	}
	b.WeightClass = boxer.WeightClassFor(b.Weight)
	return b, nil
}
