package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-ai/config"
	"github.com/pageza/recipe-ai/internal/model"
)

func TestNewSQLiteMemory(t *testing.T) {
	db, err := New(config.ServerConfig{DBDriver: "sqlite", DBDSN: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, RunMigrations(db))
	require.NoError(t, HealthCheck(context.Background(), db))

	require.NoError(t, db.Create(&model.Ingredient{ID: "1", Name: "Oats", Quantity: 1}).Error)

	// a second query must see the same in-memory database
	var count int64
	require.NoError(t, db.Model(&model.Ingredient{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestNewUnsupportedDriver(t *testing.T) {
	_, err := New(config.ServerConfig{DBDriver: "mysql"})
	assert.Error(t, err)
}
