package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
//
// note_goals deliberately has no foreign key on goal_id: note links are
// weak references and must survive goal deletion (dangling ids are
// tolerated). time_logs.goal_id is the opposite, a hard reference with
// a delete cascade.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS goals (
	id                 TEXT PRIMARY KEY,
	title              TEXT NOT NULL,
	description        TEXT NOT NULL DEFAULT '',
	category           TEXT NOT NULL CHECK(category IN ('learning', 'project', 'income')),
	weekly_hour_target REAL NOT NULL DEFAULT 0 CHECK(weekly_hour_target >= 0),
	rules              TEXT NOT NULL DEFAULT '[]',
	start_date         TEXT NOT NULL,
	end_date           TEXT,
	is_active          INTEGER NOT NULL DEFAULT 1 CHECK(is_active IN (0, 1)),
	created_at         DATETIME NOT NULL,
	updated_at         DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_goals_category ON goals(category);
CREATE INDEX IF NOT EXISTS idx_goals_is_active ON goals(is_active);

CREATE TABLE IF NOT EXISTS time_logs (
	id          TEXT PRIMARY KEY,
	goal_id     TEXT NOT NULL REFERENCES goals(id) ON DELETE CASCADE,
	date        TEXT NOT NULL,
	activity    TEXT NOT NULL,
	hours_spent REAL NOT NULL,
	reflection  TEXT NOT NULL DEFAULT '',
	created_at  DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_time_logs_goal_id ON time_logs(goal_id);
CREATE INDEX IF NOT EXISTS idx_time_logs_date ON time_logs(date);
CREATE INDEX IF NOT EXISTS idx_time_logs_goal_date ON time_logs(goal_id, date);

CREATE TABLE IF NOT EXISTS notes (
	id              TEXT PRIMARY KEY,
	title           TEXT NOT NULL,
	content         TEXT NOT NULL DEFAULT '',
	linked_projects TEXT NOT NULL DEFAULT '[]',
	linked_date     TEXT,
	created_at      DATETIME NOT NULL,
	updated_at      DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_notes_linked_date ON notes(linked_date);
CREATE INDEX IF NOT EXISTS idx_notes_updated_at ON notes(updated_at);

CREATE TABLE IF NOT EXISTS note_goals (
	note_id TEXT NOT NULL REFERENCES notes(id) ON DELETE CASCADE,
	goal_id TEXT NOT NULL,
	PRIMARY KEY (note_id, goal_id)
);

CREATE INDEX IF NOT EXISTS idx_note_goals_goal_id ON note_goals(goal_id);

CREATE TABLE IF NOT EXISTS note_tags (
	note_id TEXT NOT NULL REFERENCES notes(id) ON DELETE CASCADE,
	tag     TEXT NOT NULL,
	PRIMARY KEY (note_id, tag)
);

CREATE INDEX IF NOT EXISTS idx_note_tags_tag ON note_tags(tag);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
}
