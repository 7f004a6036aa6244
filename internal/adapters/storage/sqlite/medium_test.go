package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestMedium(t *testing.T) *Medium {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// una sola conexión: cada conexión a :memory: es una base distinta
	sqlDB.SetMaxOpenConns(1)

	m, err := New(db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func TestMedium_MissingKey(t *testing.T) {
	m := newTestMedium(t)

	v, ok, err := m.Get(context.Background(), "reminders")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestMedium_Upsert(t *testing.T) {
	ctx := context.Background()
	m := newTestMedium(t)

	require.NoError(t, m.Set(ctx, "pets", []byte(`[]`)))
	require.NoError(t, m.Set(ctx, "pets", []byte(`[{"id":"a"}]`)))

	v, ok, err := m.Get(ctx, "pets")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":"a"}]`, string(v))

	var count int64
	require.NoError(t, m.db.Model(&Entry{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestOpen_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "petcare.db")

	m, err := Open(path)
	require.NoError(t, err)
	defer m.Close()

	require.NoError(t, m.Set(context.Background(), "documents", []byte(`[]`)))
	assert.FileExists(t, path)
}
