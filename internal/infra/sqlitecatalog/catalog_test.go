package sqlitecatalog

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kedar1021/to-do-app/internal/domain"
)

func newDB(t *testing.T, stmts ...string) string {
	t.Helper()
	return newNamedDB(t, "db.sqlite3", stmts...)
}

func newNamedDB(t *testing.T, name string, stmts ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)

	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	for _, s := range stmts {
		_, err := db.Exec(s)
		require.NoError(t, err, s)
	}
	return path
}

func TestListTables_ReturnsEveryTable(t *testing.T) {
	path := newDB(t,
		"CREATE TABLE auth_user (id INTEGER PRIMARY KEY, username TEXT)",
		"CREATE TABLE tasks_task (id INTEGER PRIMARY KEY, title TEXT, due_date TEXT)",
		"CREATE INDEX tasks_task_title ON tasks_task(title)",
		"CREATE VIEW task_titles AS SELECT title FROM tasks_task",
	)

	cat, err := NewOpener().Open(context.Background(), path)
	require.NoError(t, err)
	defer cat.Close()

	names, err := cat.ListTables(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"auth_user", "tasks_task"}, names)
}

func TestListTables_EmptyDatabase(t *testing.T) {
	path := newDB(t)

	cat, err := NewOpener().Open(context.Background(), path)
	require.NoError(t, err)
	defer cat.Close()

	names, err := cat.ListTables(context.Background())
	require.NoError(t, err)
	assert.Empty(t, names)
	assert.NotNil(t, names)
}

func TestOpen_IsReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.sqlite3")

	_, err := NewOpener().Open(context.Background(), path)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindQueryFailure))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "read-only open must not create the file")
}

func TestListTables_NotADatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.sqlite3")
	require.NoError(t, os.WriteFile(path, []byte("this is not a sqlite file, not at all, really not"), 0o644))

	cat, err := NewOpener().Open(context.Background(), path)
	if err != nil {
		assert.True(t, domain.IsKind(err, domain.KindQueryFailure))
		return
	}
	defer cat.Close()

	_, err = cat.ListTables(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindQueryFailure))
}

func TestListTables_URIReservedCharsInFileName(t *testing.T) {
	for _, name := range []string{"my#db.sqlite3", "my%41db.sqlite3"} {
		t.Run(name, func(t *testing.T) {
			path := newNamedDB(t, name, "CREATE TABLE tasks_task (id INTEGER PRIMARY KEY)")
			dir := filepath.Dir(path)

			cat, err := NewOpener().Open(context.Background(), path)
			require.NoError(t, err)
			defer cat.Close()

			names, err := cat.ListTables(context.Background())
			require.NoError(t, err)
			assert.Equal(t, []string{"tasks_task"}, names)

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			require.Len(t, entries, 1, "opening must not create a sibling file")
			assert.Equal(t, name, entries[0].Name())
		})
	}
}

func TestDSN_EscapesPath(t *testing.T) {
	got := dsn("/data/my#db%41?.sqlite3")
	assert.Equal(t, "file:///data/my%23db%2541%3F.sqlite3?mode=ro", got)
}
