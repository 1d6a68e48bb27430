package bootstrap

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/tbeaudouin05/packchange/api/config"
	"github.com/tbeaudouin05/packchange/api/database"
	packsapp "github.com/tbeaudouin05/packchange/api/services/packs/app"
	gw "github.com/tbeaudouin05/packchange/api/services/packs/gateway"
	"github.com/tbeaudouin05/packchange/api/services/packs/gateway/cached"
	pgcatalog "github.com/tbeaudouin05/packchange/api/services/packs/gateway/postgres"
	stripegw "github.com/tbeaudouin05/packchange/api/services/packs/gateway/stripe"
	supabasegw "github.com/tbeaudouin05/packchange/api/services/packs/gateway/supabase"
	"github.com/tbeaudouin05/packchange/api/services/packs/notify"
)

var packService packsapp.Service
var sessionVerifier gw.SessionVerifier
var bus *notify.Bus
var initOnce sync.Once
var initErr error

// Init initializes config, database, and third-party clients, and wires services.
func Init() error {
	// If a service has already been injected (e.g., tests), do not override or init heavy deps.
	if packService != nil {
		return nil
	}
	var err error
	if config.AppConfig == nil {
		config.AppConfig, err = config.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	cfg := config.AppConfig

	backend := supabasegw.New(supabasegw.Options{
		URL:        cfg.SupabaseURL,
		AnonKey:    cfg.SupabaseAnonKey,
		ServiceKey: cfg.SupabaseServiceKey,
		Function:   cfg.ChangePackFunction,
	})

	var catalog gw.Catalog = backend
	if cfg.DatabaseURL != "" {
		if err := database.Initialize(cfg.DatabaseURL); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		catalog = pgcatalog.New(database.GetDB())
		slog.Info("catalog reads use direct postgres connection")
	}

	var billing gw.Billing
	if cfg.StripeSecretKey != "" {
		stripegw.SetKey(cfg.StripeSecretKey)
		billing = stripegw.New()
	} else {
		slog.Warn("STRIPE_SECRET_KEY not set, pack cancellation disabled")
	}

	if sessionVerifier == nil {
		sessionVerifier = backend
	}
	if bus == nil {
		bus = notify.NewBus(notify.DefaultBufferSize)
	}

	packService = packsapp.NewService(packsapp.Dependencies{
		Sessions:        sessionVerifier,
		Changes:         backend,
		Catalog:         cached.New(catalog, cfg.CacheTTL()),
		Billing:         billing,
		Publisher:       bus,
		DefaultCurrency: cfg.DefaultCurrency,
		DefaultPackName: config.DefaultPackName,
		PublicBaseURL:   cfg.PublicBaseURL,
	})
	return nil
}

func GetPackService() packsapp.Service { return packService }

// SetPackService allows tests to inject a stub implementation.
func SetPackService(s packsapp.Service) { packService = s }

func GetSessionVerifier() gw.SessionVerifier { return sessionVerifier }

// SetSessionVerifier allows tests to inject a stub verifier.
func SetSessionVerifier(v gw.SessionVerifier) { sessionVerifier = v }

// GetBus returns the notification bus, creating it on first use.
func GetBus() *notify.Bus {
	if bus == nil {
		bus = notify.NewBus(notify.DefaultBufferSize)
	}
	return bus
}

// SetBus allows tests to inject a bus shared with an injected service.
func SetBus(b *notify.Bus) { bus = b }

// Ensure runs Init() once per process and returns any initialization error.
func Ensure() error {
	initOnce.Do(func() {
		initErr = Init()
	})
	return initErr
}
