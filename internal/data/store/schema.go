package store

// Flat record layouts mirror the JSON shapes persisted by existing
// installations (see ExportJSON/ImportJSON); only the storage medium
// differs.
const schema = `
CREATE TABLE IF NOT EXISTS app_limits (
    position INTEGER NOT NULL,
    package_name TEXT PRIMARY KEY,
    label TEXT NOT NULL,
    usage_limit_minutes INTEGER NOT NULL,
    time_used_minutes INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS smart_alerts (
    position INTEGER NOT NULL,
    id TEXT PRIMARY KEY,
    type TEXT NOT NULL,
    message TEXT NOT NULL,
    timestamp INTEGER NOT NULL,
    app_label TEXT
);

CREATE INDEX IF NOT EXISTS idx_alerts_position ON smart_alerts(position);
CREATE INDEX IF NOT EXISTS idx_limits_position ON app_limits(position);
`
