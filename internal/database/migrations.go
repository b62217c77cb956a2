package database

// migrationsSQL holds the schema, applied in version order. Versions are
// never edited once released; add a new one instead.
var migrationsSQL = map[int]string{
	1: migrationV1Holidays,
}

// migrationV1Holidays creates the export table. One row per holiday per
// nominal year per catalog; position keeps catalog order, and
// observed_date may fall in the adjacent year.
const migrationV1Holidays = `
CREATE TABLE IF NOT EXISTS holidays (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    catalog TEXT NOT NULL,
    year INTEGER NOT NULL,
    position INTEGER NOT NULL,
    name TEXT NOT NULL,
    observed_date TEXT NOT NULL,
    created_at TEXT NOT NULL DEFAULT (datetime('now')),
    updated_at TEXT NOT NULL DEFAULT (datetime('now')),

    UNIQUE (catalog, year, name)
);

CREATE INDEX IF NOT EXISTS idx_holidays_catalog_year
    ON holidays(catalog, year, position);

CREATE INDEX IF NOT EXISTS idx_holidays_observed_date
    ON holidays(catalog, observed_date);
`
