package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// ScoreEntry is one finished run: the landings a captain made before the
// game ended.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Captain   string
	Score     int
	CreatedAt time.Time
}

// GameStats aggregates the runs of one mode.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

const scoreColumns = "id, game_id, captain, score, created_at"

// SaveScore records a finished run and returns its ID.
func (s *Store) SaveScore(gameID, captain string, score int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO scores (game_id, captain, score) VALUES (?, ?, ?)",
		gameID, captain, score,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores returns the best limit runs of a mode, best first. Ties go
// to the earlier run. A non-positive limit means 10.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.scores(
		"SELECT "+scoreColumns+" FROM scores WHERE game_id = ? ORDER BY score DESC, id LIMIT ?",
		gameID, limit,
	)
}

// AllScores returns every run of a mode, best first.
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	return s.scores(
		"SELECT "+scoreColumns+" FROM scores WHERE game_id = ? ORDER BY score DESC, id",
		gameID,
	)
}

// CaptainScores returns the best limit runs of one captain across all
// modes, best first.
func (s *Store) CaptainScores(captain string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.scores(
		"SELECT "+scoreColumns+" FROM scores WHERE captain = ? ORDER BY score DESC, id LIMIT ?",
		captain, limit,
	)
}

func (s *Store) scores(query string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var (
			e         ScoreEntry
			createdAt any
		)
		if err := rows.Scan(&e.ID, &e.GameID, &e.Captain, &e.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// HighScore returns the best run of a mode, 0 if there is none.
func (s *Store) HighScore(gameID string) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM scores WHERE game_id = ?", gameID).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(best.Int64), nil
}

// ClearScores deletes every run of a mode.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

const statsColumns = "COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0), MAX(created_at)"

func scanStats(row rowScanner, st *GameStats) error {
	var last any
	if err := row.Scan(&st.GamesCount, &st.HighScore, &st.AvgScore, &st.TotalScore, &last); err != nil {
		return err
	}
	if last != nil {
		st.LastPlayed = parseTime(last)
	}
	return nil
}

// GetGameStats aggregates the runs of one mode. A mode without runs
// yields zero stats.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	st := &GameStats{GameID: gameID}
	row := s.db.QueryRow("SELECT "+statsColumns+" FROM scores WHERE game_id = ?", gameID)
	if err := scanStats(row, st); err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	return st, nil
}

// GetAllGamesStats aggregates the runs of every mode that has been played.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query("SELECT game_id, " + statsColumns + " FROM scores GROUP BY game_id")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var (
			st   GameStats
			last any
		)
		if err := rows.Scan(&st.GameID, &st.GamesCount, &st.HighScore, &st.AvgScore, &st.TotalScore, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		if last != nil {
			st.LastPlayed = parseTime(last)
		}
		stats[st.GameID] = &st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}
