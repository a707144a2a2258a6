package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConnectionFactory(t *testing.T) {
	sqlitePath := filepath.Join(t.TempDir(), "links.db")
	empty := ""

	tests := []struct {
		name     string
		config   FactoryConfig
		wantType any
		wantErr  bool
	}{
		{name: "in memory", config: FactoryConfig{StorageType: StorageTypeInMemory}, wantType: &MemoryStorage{}},
		{
			name:     "sqlite",
			config:   FactoryConfig{StorageType: StorageTypeSQLite, SQLiteDBPath: &sqlitePath},
			wantType: &SQLite{},
		},
		{name: "sqlite without path", config: FactoryConfig{StorageType: StorageTypeSQLite}, wantErr: true},
		{
			name:    "postgres with empty dsn",
			config:  FactoryConfig{StorageType: StorageTypePostgres, PostgresDSN: &empty},
			wantErr: true,
		},
		{name: "unknown", config: FactoryConfig{StorageType: "mongo"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, err := NewConnectionFactory(t.Context(), tt.config)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, conn)
			assert.NoError(t, CloseConnection(conn))
		})
	}
}

func TestSQLite_Ping(t *testing.T) {
	conn, err := NewSQLite(filepath.Join(t.TempDir(), "ping.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	assert.NoError(t, conn.Ping(t.Context()))
	assert.True(t, conn.Migrator().HasTable("short_links"))
}

func TestCloseConnection_Unknown(t *testing.T) {
	assert.Error(t, CloseConnection("not a connection"))
}
