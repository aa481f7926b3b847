package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUsersTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		phone TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		pin_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user',
		verified BOOLEAN NOT NULL DEFAULT 0,
		upi_id TEXT,
		bank_account TEXT,
		ifsc_code TEXT,
		branch_name TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createServicesTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE services (
		id TEXT PRIMARY KEY,
		provider_id TEXT NOT NULL,
		name TEXT NOT NULL,
		category TEXT NOT NULL,
		description TEXT NOT NULL,
		base_price REAL NOT NULL,
		unit TEXT NOT NULL,
		discount REAL NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createBookingsTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE bookings (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		service_id TEXT NOT NULL,
		provider_id TEXT NOT NULL,
		address_id TEXT NOT NULL,
		hours_days REAL NOT NULL,
		total_amount REAL NOT NULL,
		payment_method TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		payment_status TEXT,
		notes TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createPaymentsTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE payments (
		id TEXT PRIMARY KEY,
		booking_id TEXT NOT NULL,
		user_id TEXT NOT NULL,
		amount REAL NOT NULL,
		method TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createCartItemsTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE cart_items (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		service_id TEXT NOT NULL,
		hours_days REAL NOT NULL,
		created_at DATETIME
	);`)
}

func createAddressesTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE addresses (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		user_name TEXT NOT NULL,
		street_name TEXT NOT NULL,
		city TEXT NOT NULL,
		district TEXT NOT NULL,
		pincode TEXT NOT NULL,
		landmark TEXT,
		latitude REAL,
		longitude REAL,
		created_at DATETIME
	);`)
}

func createSettingsTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME
	);`)
}
