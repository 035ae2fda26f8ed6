package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS debts (
    id                   TEXT PRIMARY KEY,
    name                 TEXT NOT NULL,
    amount               TEXT NOT NULL,
    paid                 TEXT NOT NULL,
    rate                 TEXT NOT NULL,
    due_date             TEXT NOT NULL,
    cutoff_day           INTEGER NOT NULL DEFAULT 0,
    notes                TEXT NOT NULL DEFAULT '',
    counted_in_progress  INTEGER NOT NULL DEFAULT 0,
    created_at           TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS scheduled_payments (
    id            TEXT PRIMARY KEY,
    debt_id       TEXT NOT NULL REFERENCES debts(id) ON DELETE CASCADE,
    debt_name     TEXT NOT NULL,
    amount        TEXT NOT NULL,
    due_date      TEXT NOT NULL,
    paid_amount   TEXT NOT NULL,
    paid          INTEGER NOT NULL DEFAULT 0,
    month_number  INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS transactions (
    id           TEXT PRIMARY KEY,
    type         TEXT NOT NULL,
    amount       TEXT NOT NULL,
    category     TEXT NOT NULL DEFAULT '',
    date         TEXT NOT NULL,
    description  TEXT NOT NULL DEFAULT '',
    used         TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS garden (
    id                    INTEGER PRIMARY KEY CHECK (id = 1),
    historical_debts_paid INTEGER NOT NULL DEFAULT 0,
    streak_current        INTEGER NOT NULL DEFAULT 0,
    streak_longest        INTEGER NOT NULL DEFAULT 0,
    streak_last_activity  TEXT NOT NULL DEFAULT '',
    guest_id              TEXT NOT NULL DEFAULT ''
);
INSERT OR IGNORE INTO garden (id) VALUES (1);

CREATE TABLE IF NOT EXISTS garden_awards (
    tier        INTEGER PRIMARY KEY,
    awarded_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS profile (
    id            INTEGER PRIMARY KEY CHECK (id = 1),
    name          TEXT NOT NULL,
    email         TEXT NOT NULL DEFAULT '',
    avatar_url    TEXT NOT NULL DEFAULT '',
    registered_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_payments_debt ON scheduled_payments(debt_id);
CREATE INDEX IF NOT EXISTS idx_payments_due ON scheduled_payments(due_date);
CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date);
`
