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

func createFounderTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE founders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		contact_details TEXT,
		company_name TEXT,
		industry TEXT,
		role TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createInvestorTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE investors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		investment_focus TEXT,
		investment_budget TEXT,
		investment_sector TEXT,
		investment_experience TEXT,
		linked_in_profile TEXT,
		role TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createAdminTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE admins (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createProjectTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE projects (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT NOT NULL,
		target_amount REAL NOT NULL DEFAULT 0,
		funds_raised REAL NOT NULL DEFAULT 0,
		image_url TEXT,
		pdf_document_path TEXT,
		founder_id INTEGER NOT NULL,
		deadline DATETIME,
		funding_type TEXT,
		min_investment REAL DEFAULT 0,
		contact_email TEXT,
		address TEXT,
		phone TEXT,
		personalized_message TEXT,
		motivation_letter TEXT,
		category TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createInvestmentTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE investments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		amount REAL NOT NULL,
		investor_id INTEGER NOT NULL,
		project_id INTEGER NOT NULL,
		created_at DATETIME
	);`)
}

func createUpdateTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE updates (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT,
		content TEXT NOT NULL,
		project_id INTEGER NOT NULL,
		created_at DATETIME
	);`)
}
