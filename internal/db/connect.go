package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib" // driver: pgx
	_ "modernc.org/sqlite"             // driver: sqlite
)

type Driver string

const (
	DriverSQLite   Driver = "sqlite"
	DriverPostgres Driver = "postgres"
)

// Open opens a DB and ensures schema exists.
func Open(ctx context.Context, driver Driver, dsn string) (*sql.DB, error) {
	var drvName string
	switch driver {
	case DriverSQLite:
		drvName = "sqlite" // modernc driver
		if dsn == "" {
			dsn = "file:linguaprep.db?cache=shared&mode=rwc&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
		drvName = "pgx" // pgx stdlib driver
		if dsn == "" {
			dsn = "postgres://localhost:5432/linguaprep?sslmode=disable"
		}
	default:
		return nil, fmt.Errorf("unsupported driver: %s", driver)
	}

	db, err := sql.Open(drvName, dsn)
	if err != nil {
		return nil, err
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	if err := ensureSchema(ctx, db, driver); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(ctx context.Context, db *sql.DB, driver Driver) error {
	var schema string
	switch driver {
	case DriverSQLite:
		schema = schemaSQLite
	case DriverPostgres:
		schema = schemaPostgres
	}
	_, err := db.ExecContext(ctx, schema)
	return err
}

const schemaSQLite = `
PRAGMA foreign_keys=ON;

CREATE TABLE IF NOT EXISTS questions (
  id TEXT PRIMARY KEY,
  exam_type TEXT NOT NULL,
  skill TEXT NOT NULL,
  kind TEXT NOT NULL,
  difficulty TEXT NOT NULL,
  prompt TEXT NOT NULL,
  content_json TEXT,
  choices_json TEXT,
  answer_key_json TEXT,
  time_limit_sec INTEGER NOT NULL DEFAULT 0,
  points REAL NOT NULL DEFAULT 1,
  synthesized INTEGER NOT NULL DEFAULT 0,
  created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_questions_pick ON questions (exam_type, skill, difficulty);

CREATE TABLE IF NOT EXISTS attempts (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  question_id TEXT NOT NULL REFERENCES questions(id),
  exam_type TEXT NOT NULL,
  skill TEXT NOT NULL,
  difficulty TEXT NOT NULL DEFAULT '',
  answer_json TEXT NOT NULL,
  audio_ref TEXT,
  time_spent_sec INTEGER NOT NULL DEFAULT 0,
  is_correct INTEGER,
  score REAL NOT NULL DEFAULT 0,
  raw_score REAL NOT NULL DEFAULT 0,
  feedback TEXT NOT NULL DEFAULT '',
  suggestions TEXT NOT NULL DEFAULT '',
  criteria_json TEXT,
  submitted_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_attempts_recent ON attempts (user_id, exam_type, skill, submitted_at);

CREATE TABLE IF NOT EXISTS progress (
  user_id TEXT NOT NULL,
  exam_type TEXT NOT NULL,
  skill TEXT NOT NULL,
  total_questions INTEGER NOT NULL DEFAULT 0,
  correct_answers INTEGER NOT NULL DEFAULT 0,
  total_points REAL NOT NULL DEFAULT 0,
  earned_points REAL NOT NULL DEFAULT 0,
  average_score REAL NOT NULL DEFAULT 0,
  best_score REAL NOT NULL DEFAULT 0,
  last_activity INTEGER NOT NULL DEFAULT 0,
  PRIMARY KEY (user_id, exam_type, skill)
);

CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  username TEXT NOT NULL UNIQUE,
  pass_hash TEXT NOT NULL,
  role TEXT NOT NULL DEFAULT 'student',
  created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS event_log (
  offset INTEGER PRIMARY KEY AUTOINCREMENT, -- BIGSERIAL in Postgres
  site_id TEXT NOT NULL DEFAULT 'local',
  typ TEXT NOT NULL,                         -- e.g., AttemptSubmitted
  key TEXT NOT NULL,                         -- natural key: attemptID
  data TEXT NOT NULL,                        -- JSON payload
  created_at INTEGER NOT NULL
);
`

const schemaPostgres = `
CREATE TABLE IF NOT EXISTS questions (
  id TEXT PRIMARY KEY,
  exam_type TEXT NOT NULL,
  skill TEXT NOT NULL,
  kind TEXT NOT NULL,
  difficulty TEXT NOT NULL,
  prompt TEXT NOT NULL,
  content_json TEXT,
  choices_json TEXT,
  answer_key_json TEXT,
  time_limit_sec INTEGER NOT NULL DEFAULT 0,
  points DOUBLE PRECISION NOT NULL DEFAULT 1,
  synthesized BOOLEAN NOT NULL DEFAULT FALSE,
  created_at BIGINT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_questions_pick ON questions (exam_type, skill, difficulty);

CREATE TABLE IF NOT EXISTS attempts (
  id TEXT PRIMARY KEY,
  user_id TEXT NOT NULL,
  question_id TEXT NOT NULL REFERENCES questions(id),
  exam_type TEXT NOT NULL,
  skill TEXT NOT NULL,
  difficulty TEXT NOT NULL DEFAULT '',
  answer_json TEXT NOT NULL,
  audio_ref TEXT,
  time_spent_sec INTEGER NOT NULL DEFAULT 0,
  is_correct BOOLEAN,
  score DOUBLE PRECISION NOT NULL DEFAULT 0,
  raw_score DOUBLE PRECISION NOT NULL DEFAULT 0,
  feedback TEXT NOT NULL DEFAULT '',
  suggestions TEXT NOT NULL DEFAULT '',
  criteria_json TEXT,
  submitted_at BIGINT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_attempts_recent ON attempts (user_id, exam_type, skill, submitted_at);

CREATE TABLE IF NOT EXISTS progress (
  user_id TEXT NOT NULL,
  exam_type TEXT NOT NULL,
  skill TEXT NOT NULL,
  total_questions BIGINT NOT NULL DEFAULT 0,
  correct_answers BIGINT NOT NULL DEFAULT 0,
  total_points DOUBLE PRECISION NOT NULL DEFAULT 0,
  earned_points DOUBLE PRECISION NOT NULL DEFAULT 0,
  average_score DOUBLE PRECISION NOT NULL DEFAULT 0,
  best_score DOUBLE PRECISION NOT NULL DEFAULT 0,
  last_activity BIGINT NOT NULL DEFAULT 0,
  PRIMARY KEY (user_id, exam_type, skill)
);

CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  username TEXT NOT NULL UNIQUE,
  pass_hash TEXT NOT NULL,
  role TEXT NOT NULL DEFAULT 'student',
  created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS event_log (
  offset BIGSERIAL PRIMARY KEY,
  site_id TEXT NOT NULL DEFAULT 'local',
  typ TEXT NOT NULL,
  key TEXT NOT NULL,
  data TEXT NOT NULL,
  created_at BIGINT NOT NULL
);
`
