//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestMongoDB_Integration(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	t.Run("connection successful", func(t *testing.T) {
		assert.NotNil(t, db.Client)
		assert.NotNil(t, db.Database)
		assert.Equal(t, AuditCollection, db.Audit.Name())
		assert.NoError(t, db.HealthCheck(ctx))
	})

	t.Run("set audit TTL is repeatable", func(t *testing.T) {
		require.NoError(t, db.SetAuditTTL(ctx, 24*time.Hour))
		require.NoError(t, db.SetAuditTTL(ctx, 48*time.Hour))

		cursor, err := db.Audit.Indexes().List(ctx)
		require.NoError(t, err)
		var indexes []bson.M
		require.NoError(t, cursor.All(ctx, &indexes))

		var found bson.M
		for _, idx := range indexes {
			if idx["name"] == auditTTLIndexName {
				found = idx
			}
		}
		require.NotNil(t, found)
		assert.EqualValues(t, 48*60*60, found["expireAfterSeconds"])
	})

	t.Run("zero TTL removes expiry", func(t *testing.T) {
		require.NoError(t, db.SetAuditTTL(ctx, 0))

		cursor, err := db.Audit.Indexes().List(ctx)
		require.NoError(t, err)
		var indexes []bson.M
		require.NoError(t, cursor.All(ctx, &indexes))
		for _, idx := range indexes {
			assert.NotEqual(t, auditTTLIndexName, idx["name"])
		}
	})
}
