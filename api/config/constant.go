package config

import (
	"log"
	"strings"
	"time"
)

const (
	// ProdDbId is the identifier for the production database
	ProdDbId = "prod-packs"

	// DefaultPackName is the free plan assigned on first activation
	DefaultPackName = "Pack Découverte"

	// DefaultChangePackFunction is the edge function name used when CHANGE_PACK_FUNCTION is unset
	DefaultChangePackFunction = "change-pack"

	DefaultCurrency = "EUR"

	DefaultCatalogCacheTTL = 5 * time.Minute
)

// CheckNotProdDB aborts immediately if the configured database URL contains ProdDbId.
// This should be called at the start of any test that interacts with the database.
func CheckNotProdDB() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DatabaseURL is not configured")
	}
	if strings.Contains(cfg.DatabaseURL, ProdDbId) {
		log.Fatalf("Tests aborted: DatabaseURL contains production identifier %s", ProdDbId)
	}
}
