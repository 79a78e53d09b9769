package database

import (
	"io/fs"
	"strings"
	"testing"

	"customer-portal/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readMigration(t *testing.T, name string) string {
	t.Helper()
	content, err := fs.ReadFile(migrations.FS, name)
	require.NoError(t, err, "migration %s should be embedded", name)
	return string(content)
}

func TestMigrationFilesHaveUpAndDown(t *testing.T) {
	names, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names, "no SQL migration files embedded")

	for _, name := range names {
		content := readMigration(t, name)
		for _, directive := range []string{
			"-- +goose Up",
			"-- +goose Down",
			"-- +goose StatementBegin",
			"-- +goose StatementEnd",
		} {
			assert.Contains(t, content, directive, "%s missing %q", name, directive)
		}
	}
}

func TestMigrationFilesCreateExpectedTables(t *testing.T) {
	expectedTables := map[string]string{
		"users":                  "00001_create_users_table.sql",
		"categories":             "00002_create_categories_table.sql",
		"news":                   "00003_create_news_table.sql",
		"products":               "00004_create_products_table.sql",
		"product_images":         "00005_create_product_images_table.sql",
		"product_specifications": "00006_create_product_specifications_table.sql",
		"orders":                 "00007_create_orders_table.sql",
		"order_items":            "00008_create_order_items_table.sql",
	}

	for table, file := range expectedTables {
		content := readMigration(t, file)
		assert.Contains(t, content, "CREATE TABLE IF NOT EXISTS "+table+" (", "%s does not create %s", file, table)
		assert.Contains(t, content, "DROP TABLE IF EXISTS "+table, "%s does not drop %s", file, table)
	}
}

func TestUsersEmailIsUnique(t *testing.T) {
	content := readMigration(t, "00001_create_users_table.sql")
	assert.Contains(t, content, "email VARCHAR(255) UNIQUE NOT NULL")
}

func TestOrderStatusConstraint(t *testing.T) {
	content := readMigration(t, "00007_create_orders_table.sql")
	for _, status := range []string{"pending", "processing", "shipped", "delivered", "cancelled"} {
		assert.True(t, strings.Contains(content, "'"+status+"'"), "status %s not allowed by schema", status)
	}
}

func TestDependentsCascadeWithParent(t *testing.T) {
	for _, file := range []string{
		"00005_create_product_images_table.sql",
		"00006_create_product_specifications_table.sql",
		"00008_create_order_items_table.sql",
	} {
		assert.Contains(t, readMigration(t, file), "ON DELETE CASCADE", file)
	}
}
