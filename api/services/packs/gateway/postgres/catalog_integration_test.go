package pgcatalog_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/tbeaudouin05/packchange/api/config"
	database "github.com/tbeaudouin05/packchange/api/database"
	pgcatalog "github.com/tbeaudouin05/packchange/api/services/packs/gateway/postgres"
	"github.com/tbeaudouin05/packchange/api/services/packs/model"
)

const (
	testUserID = "00000000-0000-0000-0000-00000000c0de"
	testPackID = "catalog-test-pack"
	testSvcID  = "catalog-test-service"
)

func setupCatalogDB(t *testing.T) func() {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in -short mode")
	}
	cfg, err := config.LoadConfig()
	if err != nil || cfg.DatabaseURL == "" {
		t.Skip("DATABASE_URL not configured")
	}
	// Prevent tests from running against production database
	config.CheckNotProdDB()
	if database.GetDB() == nil {
		require.NoError(t, database.Initialize(cfg.DatabaseURL))
	}
	db := database.GetDB()
	clean := func() {
		_, _ = db.Exec("DELETE FROM user_services WHERE user_id = $1", testUserID)
		_, _ = db.Exec("DELETE FROM user_packs WHERE user_id = $1", testUserID)
		_, _ = db.Exec("DELETE FROM packs WHERE id = $1", testPackID)
		_, _ = db.Exec("DELETE FROM services WHERE id = $1", testSvcID)
	}
	clean()
	return clean
}

func TestCatalog_Reads_Integration(t *testing.T) {
	cleanup := setupCatalogDB(t)
	defer cleanup()
	db := database.GetDB()

	_, err := db.Exec(`INSERT INTO services (id, name, type, active) VALUES ($1, 'Catalog test', 'blog', true)`, testSvcID)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO packs (id, name, price, currency, billing_period, rank, service_ids, is_default)
		VALUES ($1, 'Catalog test pack', 4900, 'EUR', 'monthly', 99, ARRAY[$2]::text[], false)`, testPackID, testSvcID)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO user_packs (user_id, pack_id, status, activated_at) VALUES ($1, $2, 'active', $3)`,
		testUserID, testPackID, time.Now().UTC())
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO user_services (user_id, service_id, status, visits, sales, revenue) VALUES ($1, $2, 'active', 7, 1, 4900)`,
		testUserID, testSvcID)
	require.NoError(t, err)

	c := pgcatalog.New(db)
	ctx := context.Background()

	plans, err := c.ListPlans(ctx)
	require.NoError(t, err)
	var found model.Plan
	for _, p := range plans {
		if p.ID == testPackID {
			found = p
		}
	}
	assert.Equal(t, []string{testSvcID}, found.ServiceIDs)
	assert.Equal(t, model.BillingMonthly, found.BillingPeriod)

	subs, err := c.UserSubscriptions(ctx, testUserID)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, testPackID, subs[0].PlanID)
	assert.True(t, subs[0].ExpiresAt.IsZero())

	usage, err := c.UserUsage(ctx, testUserID)
	require.NoError(t, err)
	require.Len(t, usage, 1)
	assert.Equal(t, int64(7), usage[0].Visits)
}
