package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnect(t *testing.T) {
	t.Run("Invalid Connection", func(t *testing.T) {
		cfg := Config{
			Driver:         DriverMySQL,
			Host:           "localhost",
			Port:           9999, // Unused port
			User:           "root",
			Password:       "wrongpassword",
			Name:           "catalog",
			TimeoutSeconds: 1,
		}

		db, err := Connect(cfg)
		assert.Error(t, err)
		assert.Nil(t, db)
	})

	t.Run("Unsupported Driver", func(t *testing.T) {
		db, err := Connect(Config{Driver: "oracle"})
		assert.ErrorContains(t, err, "unsupported database driver")
		assert.Nil(t, db)
	})

	t.Run("SQLite In Memory", func(t *testing.T) {
		db, err := Connect(Config{Driver: DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)

		require.NoError(t, db.Exec("CREATE TABLE t (id INTEGER PRIMARY KEY)").Error)
		require.NoError(t, db.Exec("INSERT INTO t (id) VALUES (1)").Error)

		// A second statement must see the same in-memory database.
		var count int64
		require.NoError(t, db.Raw("SELECT COUNT(*) FROM t").Scan(&count).Error)
		assert.Equal(t, int64(1), count)
	})
}

func TestDialector(t *testing.T) {
	tests := []struct {
		driver string
		name   string
	}{
		{DriverMySQL, "mysql"},
		{"", "mysql"},
		{DriverPostgres, "postgres"},
		{DriverSQLite, "sqlite"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Dialector(Config{Driver: tt.driver, Name: ":memory:"}, 5)
			require.NoError(t, err)
			assert.Equal(t, tt.name, d.Name())
		})
	}
}
