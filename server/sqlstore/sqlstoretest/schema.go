// Package sqlstoretest creates sqlite databases with the tables of the server schema the
// stores work with.
package sqlstoretest

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// Schema is the subset of the server schema the stores touch.
var Schema = []string{
	`CREATE TABLE Users (Id TEXT PRIMARY KEY, Username TEXT NOT NULL DEFAULT '', DeleteAt INTEGER NOT NULL DEFAULT 0,
		LastPictureUpdate INTEGER NOT NULL DEFAULT 0, RemoteId TEXT)`,
	`CREATE TABLE Sessions (Id TEXT PRIMARY KEY, UserId TEXT NOT NULL)`,
	`CREATE TABLE Preferences (UserId TEXT NOT NULL, Category TEXT NOT NULL, Name TEXT NOT NULL, Value TEXT)`,
	`CREATE TABLE TeamMembers (TeamId TEXT NOT NULL, UserId TEXT NOT NULL)`,
	`CREATE TABLE Channels (Id TEXT PRIMARY KEY, Name TEXT NOT NULL, Type TEXT NOT NULL, DeleteAt INTEGER NOT NULL DEFAULT 0)`,
	`CREATE TABLE ChannelMembers (ChannelId TEXT NOT NULL, UserId TEXT NOT NULL, Roles TEXT NOT NULL DEFAULT '',
		SchemeAdmin BOOLEAN, PRIMARY KEY (ChannelId, UserId))`,
	`CREATE TABLE ChannelMemberHistory (ChannelId TEXT NOT NULL, UserId TEXT NOT NULL, JoinTime INTEGER NOT NULL,
		LeaveTime INTEGER)`,
	`CREATE TABLE Posts (Id TEXT PRIMARY KEY, ChannelId TEXT NOT NULL, UserId TEXT NOT NULL, Props TEXT,
		UpdateAt INTEGER NOT NULL DEFAULT 0, DeleteAt INTEGER NOT NULL DEFAULT 0)`,
	`CREATE TABLE FileInfo (Id TEXT PRIMARY KEY, PostId TEXT NOT NULL, Path TEXT NOT NULL,
		ThumbnailPath TEXT NOT NULL DEFAULT '', PreviewPath TEXT NOT NULL DEFAULT '')`,
	`CREATE TABLE IncomingWebhooks (Id TEXT PRIMARY KEY, UserId TEXT NOT NULL, UpdateAt INTEGER NOT NULL DEFAULT 0,
		DeleteAt INTEGER NOT NULL DEFAULT 0)`,
	`CREATE TABLE OutgoingWebhooks (Id TEXT PRIMARY KEY, CreatorId TEXT NOT NULL, UpdateAt INTEGER NOT NULL DEFAULT 0,
		DeleteAt INTEGER NOT NULL DEFAULT 0)`,
	`CREATE TABLE Commands (Id TEXT PRIMARY KEY, CreatorId TEXT NOT NULL, UpdateAt INTEGER NOT NULL DEFAULT 0,
		DeleteAt INTEGER NOT NULL DEFAULT 0)`,
	`CREATE TABLE PluginKeyValueStore (PluginId TEXT NOT NULL, PKey TEXT NOT NULL, PValue BLOB,
		ExpireAt INTEGER NOT NULL DEFAULT 0, PRIMARY KEY (PluginId, PKey))`,
}

// CreateSchema creates the tables in db.
func CreateSchema(t testing.TB, db *sql.DB) {
	t.Helper()

	for _, stmt := range Schema {
		_, err := db.Exec(stmt)
		require.NoError(t, err, stmt)
	}
}

// NewMemoryDB opens an in memory database with the schema.
func NewMemoryDB(t testing.TB) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// Every connection to :memory: opens its own database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	CreateSchema(t, db)
	return db
}

// NewFileDB creates a database file at path with the schema, for code that opens the
// database on its own.
func NewFileDB(t testing.TB, path string) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	CreateSchema(t, db)
	return db
}
