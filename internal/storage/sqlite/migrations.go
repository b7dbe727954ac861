package sqlite

import "database/sql"

// schema sets up the database. It runs on startup; every statement is idempotent.
// users must exist before history because of the foreign key.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    display_name TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS history (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    created_at INTEGER NOT NULL,
    monthly_gross_income REAL NOT NULL,
    other_monthly_income REAL NOT NULL,
    employment_type TEXT NOT NULL,
    monthly_pension REAL NOT NULL,
    monthly_nhf REAL NOT NULL,
    monthly_other_deductions REAL NOT NULL,
    year INTEGER NOT NULL,
    monthly_gross REAL NOT NULL,
    monthly_tax REAL NOT NULL,
    monthly_net REAL NOT NULL,
    FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_history_user_created ON history(user_id, created_at);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
