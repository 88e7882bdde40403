package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the test database. Expects a MySQL instance on
// localhost:3306 with a database named 'messhall_test'; tests skip when it
// is not reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/messhall_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB empties the test tables and closes the handle.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"order_meals", "orders", "meals", "customers", "dfacs"}
	for _, table := range tables {
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the schema, including the trigger that snapshots
// the meal price onto each order line at insert time.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createCustomersTable := `
	CREATE TABLE IF NOT EXISTS customers (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		first_name VARCHAR(100) NOT NULL,
		last_name VARCHAR(100) NOT NULL,
		email VARCHAR(150) NOT NULL,
		dfac_id INT,
		deleted_at DATETIME NULL
	)`

	createDfacsTable := `
	CREATE TABLE IF NOT EXISTS dfacs (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		dfac_name VARCHAR(150) NOT NULL,
		street_address VARCHAR(255),
		city VARCHAR(100),
		state_abb VARCHAR(2),
		zip_code VARCHAR(10),
		dfac_phnumber VARCHAR(30),
		deleted_at DATETIME NULL
	)`

	createMealsTable := `
	CREATE TABLE IF NOT EXISTS meals (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		dfac_id INT NOT NULL,
		meal_name VARCHAR(150) NOT NULL,
		description TEXT,
		type VARCHAR(50),
		price DECIMAL(10,2) NOT NULL,
		img_pic VARCHAR(255),
		likes INT NOT NULL DEFAULT 0,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_dfac (dfac_id)
	)`

	createOrdersTable := `
	CREATE TABLE IF NOT EXISTS orders (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		customer_id INT NOT NULL,
		dfac_id INT NOT NULL,
		comments TEXT,
		to_go TINYINT(1) NOT NULL DEFAULT 1,
		order_timestamp DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		ready_for_pickup DATETIME NULL,
		picked_up DATETIME NULL,
		canceled TINYINT(1) NOT NULL DEFAULT 0,
		canceled_at DATETIME NULL,
		favorite TINYINT(1) NOT NULL DEFAULT 0,
		deleted_at DATETIME NULL,
		INDEX idx_customer (customer_id),
		INDEX idx_dfac (dfac_id)
	)`

	createOrderMealsTable := `
	CREATE TABLE IF NOT EXISTS order_meals (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		order_id INT UNSIGNED NOT NULL,
		meal_id INT NOT NULL,
		quantity INT NOT NULL DEFAULT 1,
		special_instructions TEXT,
		price_at_order DECIMAL(10,2),
		FOREIGN KEY (order_id) REFERENCES orders(id),
		INDEX idx_order (order_id),
		INDEX idx_meal (meal_id)
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"customers", createCustomersTable},
		{"dfacs", createDfacsTable},
		{"meals", createMealsTable},
		{"orders", createOrdersTable},
		{"order_meals", createOrderMealsTable},
	}

	for _, tbl := range tables {
		if _, err := db.Exec(tbl.query); err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}

	// The price snapshot is owned by the datastore, not the engine.
	if _, err := db.Exec(`DROP TRIGGER IF EXISTS order_meals_price_snapshot`); err != nil {
		t.Logf("failed to drop trigger: %v", err)
	}
	trigger := `
	CREATE TRIGGER order_meals_price_snapshot
	BEFORE INSERT ON order_meals
	FOR EACH ROW
	SET NEW.price_at_order = (SELECT price FROM meals WHERE id = NEW.meal_id)`
	if _, err := db.Exec(trigger); err != nil {
		t.Logf("failed to create price snapshot trigger: %v", err)
	}
}

// SeedCustomer inserts a customer row and returns its id.
func SeedCustomer(t *testing.T, db *sql.DB, deleted bool) int {
	query := `INSERT INTO customers (first_name, last_name, email) VALUES ('Pat', 'Jones', 'pat@example.com')`
	if deleted {
		query = `INSERT INTO customers (first_name, last_name, email, deleted_at)
		         VALUES ('Pat', 'Jones', 'pat@example.com', CURRENT_TIMESTAMP)`
	}
	result, err := db.Exec(query)
	if err != nil {
		t.Fatalf("seeding customer: %v", err)
	}
	id, _ := result.LastInsertId()
	return int(id)
}

// SeedDfac inserts a dfac row and returns its id.
func SeedDfac(t *testing.T, db *sql.DB, deleted bool) int {
	query := `INSERT INTO dfacs (dfac_name, city, state_abb) VALUES ('North DFAC', 'Columbus', 'GA')`
	if deleted {
		query = `INSERT INTO dfacs (dfac_name, city, state_abb, deleted_at)
		         VALUES ('North DFAC', 'Columbus', 'GA', CURRENT_TIMESTAMP)`
	}
	result, err := db.Exec(query)
	if err != nil {
		t.Fatalf("seeding dfac: %v", err)
	}
	id, _ := result.LastInsertId()
	return int(id)
}

// SeedMeal inserts a meal row and returns its id.
func SeedMeal(t *testing.T, db *sql.DB, dfacID int, price float64) int {
	result, err := db.Exec(
		`INSERT INTO meals (dfac_id, meal_name, description, type, price)
		 VALUES (?, 'Breakfast Plate', 'Eggs and toast', 'breakfast', ?)`,
		dfacID, price,
	)
	if err != nil {
		t.Fatalf("seeding meal: %v", err)
	}
	id, _ := result.LastInsertId()
	return int(id)
}
