package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"coliving/internal/auth"
	"coliving/internal/config"
	"coliving/internal/domain"
	"coliving/internal/domain/models"
	"coliving/internal/domain/repositories"
	"coliving/internal/domain/services"
	"coliving/internal/metrics"
	"coliving/internal/repository/postgres"
	"coliving/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed demo data")
	authUsers := flag.Bool("auth-users", false, "Create Supabase auth users for the demo accounts (requires SUPABASE_KEY)")
	password := flag.String("password", "coliving-demo", "Password for demo auth users")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && *dropTables {
		log.Fatalf("🚫 BLOCKED: Cannot run --drop-tables in production environment")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if *schemaOnly {
		log.Printf("🏗️  Setting up schema only (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	} else {
		log.Printf("🌱 Seeding database (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	}

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.SupabaseDBURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)

	if *dropTables {
		log.Println("🗑️  Dropping all tables...")
		if err := postgres.DropSchema(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		log.Println("✅ Tables dropped")
	}

	log.Println("📋 Ensuring database schema is up to date...")
	if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	log.Println("✅ Schema ready")

	if *schemaOnly {
		return
	}

	resolveID := deterministicID
	if *authUsers {
		if cfg.SupabaseURL == "" || cfg.SupabaseServiceKey == "" {
			log.Fatalf("--auth-users requires SUPABASE_URL and SUPABASE_KEY")
		}
		admin := auth.NewAdminClient(cfg.SupabaseURL, cfg.SupabaseServiceKey)
		resolveID = func(ctx context.Context, email string, operator bool) (uuid.UUID, error) {
			var appMetadata map[string]interface{}
			if operator {
				appMetadata = map[string]interface{}{"role": models.OperatorRole}
			}
			return admin.EnsureUser(ctx, email, *password, appMetadata)
		}
	}

	repoConfig := &postgres.RepositoryConfig{Pool: pool, Tables: tables, Logger: logger}
	directory := postgres.NewTenantDirectory(repoConfig)
	profileService := service.NewPreferenceProfileService(
		postgres.NewPreferenceProfileRepository(repoConfig),
		postgres.NewTransactionManager(pool, logger),
		metrics.New(prometheus.NewRegistry()),
		logger,
	)

	if err := seedDemo(ctx, pool, tables, directory, profileService, resolveID); err != nil {
		log.Fatalf("Failed to seed demo data: %v", err)
	}
	log.Println("🎉 Seeding complete!")
}

// idResolver maps a demo email to the account id used as tenant or operator id
type idResolver func(ctx context.Context, email string, operator bool) (uuid.UUID, error)

var demoNamespace = uuid.MustParse("6f1c3a52-2d8e-4b8a-9a55-1f0b7c2e9d31")

// deterministicID keeps re-seeding idempotent without an auth backend
func deterministicID(_ context.Context, email string, _ bool) (uuid.UUID, error) {
	return uuid.NewSHA1(demoNamespace, []byte(email)), nil
}

func seedDemo(
	ctx context.Context,
	pool *pgxpool.Pool,
	tables *postgres.TableNames,
	directory repositories.TenantDirectory,
	profiles services.PreferenceProfileService,
	resolveID idResolver,
) error {
	propertyID := uuid.NewSHA1(demoNamespace, []byte(demoPropertyName))

	operatorID, err := resolveID(ctx, demoOperatorEmail, true)
	if err != nil {
		return fmt.Errorf("resolve operator: %w", err)
	}
	if _, err := pool.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (operator_id, property_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, tables.PropertyManagers), operatorID, propertyID); err != nil {
		return fmt.Errorf("insert property manager: %w", err)
	}
	log.Printf("👤 Operator %s manages %s", demoOperatorEmail, demoPropertyName)

	for i, tenant := range demoTenants() {
		id, err := resolveID(ctx, tenant.email, false)
		if err != nil {
			return fmt.Errorf("resolve tenant %s: %w", tenant.email, err)
		}

		exists, err := directory.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			if _, err := pool.Exec(ctx, fmt.Sprintf(`
				INSERT INTO %s (id, email, property_id, current_room_id) VALUES ($1, $2, $3, $4)
			`, tables.Tenants), id, tenant.email, propertyID, tenant.roomID); err != nil {
				return fmt.Errorf("insert tenant %s: %w", tenant.email, err)
			}
		}

		_, err = profiles.CreateProfile(ctx, id, tenant.profile)
		switch {
		case errors.Is(err, domain.ErrConflict):
			log.Printf("⏭️  %d/%d %s already has preferences", i+1, len(demoTenants()), tenant.email)
		case err != nil:
			return fmt.Errorf("create profile for %s: %w", tenant.email, err)
		default:
			log.Printf("✅ %d/%d %s (ID: %s)", i+1, len(demoTenants()), tenant.email, id)
		}
	}
	return nil
}
