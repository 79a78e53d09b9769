package repository

import (
	"context"
	"flag"
	"log"
	"os"
	"testing"
	"time"

	"customer-portal/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

var (
	testDB        database.Service
	testDBSkipMsg string
)

func setupTestDB(ctx context.Context) (func(context.Context, ...testcontainers.TerminateOption) error, error) {
	dbContainer, err := postgres.Run(
		ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("portal_test"),
		postgres.WithUsername("portal"),
		postgres.WithPassword("portal"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		return nil, err
	}

	connStr, err := dbContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return dbContainer.Terminate, err
	}

	testDB = database.Open(connStr, 4, zap.NewNop())

	sqlDB, err := testDB.StdDB()
	if err != nil {
		return dbContainer.Terminate, err
	}
	defer sqlDB.Close()

	if err := database.RunMigrations(sqlDB, zap.NewNop()); err != nil {
		return dbContainer.Terminate, err
	}

	return dbContainer.Terminate, nil
}

func TestMain(m *testing.M) {
	flag.Parse()

	var teardown func(context.Context, ...testcontainers.TerminateOption) error
	if testing.Short() {
		testDBSkipMsg = "repository integration tests need postgres; skipped in -short mode"
	} else {
		var err error
		teardown, err = setupTestDB(context.Background())
		if err != nil {
			log.Printf("could not start postgres container: %v", err)
			testDBSkipMsg = "postgres container unavailable: " + err.Error()
		}
	}

	code := m.Run()

	if testDB != nil {
		testDB.Close()
	}
	if teardown != nil {
		if err := teardown(context.Background()); err != nil {
			log.Printf("could not teardown postgres container: %v", err)
		}
	}

	os.Exit(code)
}

// requireDB skips the test when no database is available and otherwise
// empties every table so each test starts from a clean slate.
func requireDB(t *testing.T) {
	t.Helper()
	if testDBSkipMsg != "" {
		t.Skip(testDBSkipMsg)
	}
	require.NoError(t, truncateAll(context.Background()))
}

func truncateAll(ctx context.Context) error {
	_, err := testDB.Exec(ctx, `
		TRUNCATE order_items, orders, product_specifications, product_images,
			products, news, categories, users RESTART IDENTITY CASCADE`, nil)
	return err
}

func insertCategory(t *testing.T, name string, sortOrder int, active bool) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := testDB.QueryRow(context.Background(), `
		INSERT INTO categories (name, slug, sort_order, is_active)
		VALUES (@name, @slug, @sort_order, @is_active)
		RETURNING id`,
		pgx.NamedArgs{"name": name, "slug": uuid.NewString(), "sort_order": sortOrder, "is_active": active},
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func insertProduct(t *testing.T, name string, categoryID *uuid.UUID, active bool) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := testDB.QueryRow(context.Background(), `
		INSERT INTO products (name, sku, price, category_id, is_active)
		VALUES (@name, @sku, 10.50, @category_id, @is_active)
		RETURNING id`,
		pgx.NamedArgs{"name": name, "sku": uuid.NewString(), "category_id": categoryID, "is_active": active},
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func insertUser(t *testing.T, email, customerCode string) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := testDB.QueryRow(context.Background(), `
		INSERT INTO users (email, first_name, last_name, customer_code)
		VALUES (@email, 'Dana', 'Reyes', @customer_code)
		RETURNING id`,
		pgx.NamedArgs{"email": email, "customer_code": customerCode},
	).Scan(&id)
	require.NoError(t, err)
	return id
}
