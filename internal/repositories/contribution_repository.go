package repositories

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/alimgiray/gexplore/internal/models"
)

// ContributionRepository stores the imported per-day contribution log
type ContributionRepository struct {
	db *sql.DB
	mu sync.RWMutex
}

func NewContributionRepository(db *sql.DB) *ContributionRepository {
	return &ContributionRepository{db: db}
}

// GetRange returns the stored counts for days within [from, through], keyed by day
func (r *ContributionRepository) GetRange(from, through time.Time) (map[string]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query := `
		SELECT day, count
		FROM contribution_days
		WHERE day >= ? AND day <= ?
		ORDER BY day
	`

	rows, err := r.db.Query(query, models.DayKey(from), models.DayKey(through))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var day string
		var count int
		if err := rows.Scan(&day, &count); err != nil {
			return nil, err
		}
		counts[day] = count
	}

	return counts, rows.Err()
}

// ReplaceRange deletes every stored day within [from, through] and inserts counts.
// Keys outside the range are rejected so a partial import cannot clobber other days.
func (r *ContributionRepository) ReplaceRange(from, through time.Time, counts map[string]int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	fromKey, throughKey := models.DayKey(from), models.DayKey(through)
	for day, count := range counts {
		if day < fromKey || day > throughKey {
			return fmt.Errorf("day %s outside %s..%s", day, fromKey, throughKey)
		}
		if count < 0 {
			return fmt.Errorf("negative count %d on %s", count, day)
		}
	}

	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM contribution_days WHERE day >= ? AND day <= ?`, fromKey, throughKey); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO contribution_days (day, count, updated_at) VALUES (?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	now := time.Now()
	for day, count := range counts {
		if _, err := stmt.Exec(day, count, now); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Total returns the sum of all stored counts
func (r *ContributionRepository) Total() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total int
	err := r.db.QueryRow(`SELECT COALESCE(SUM(count), 0) FROM contribution_days`).Scan(&total)
	return total, err
}
