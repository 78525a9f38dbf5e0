package store

import "go.uber.org/zap"

// schemaStep is one statement of the bootstrap sequence. Additive steps are
// the column migrations: they are attempted unconditionally and their failure
// is discarded, because on an up-to-date database the column already exists.
// The sequence is append-only and its order is part of the upgrade contract;
// never reorder or remove released steps.
type schemaStep struct {
	sql      string
	additive bool
}

var schemaSteps = []schemaStep{
	{sql: `CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		role TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`},
	{sql: `CREATE TABLE IF NOT EXISTS clients (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		legal_name TEXT,
		mb TEXT NOT NULL,
		pib TEXT,
		address TEXT,
		city TEXT,
		postal_code TEXT,
		country TEXT,
		phone TEXT,
		email TEXT,
		tax_id TEXT,
		bank TEXT,
		client_type TEXT,
		municipality TEXT,
		street TEXT,
		house_number TEXT,
		is_manual_address INTEGER DEFAULT 0,
		google_maps TEXT,
		contact_person TEXT,
		telegram TEXT,
		instagram TEXT,
		installment INTEGER DEFAULT 0,
		installment_term INTEGER,
		showcase INTEGER DEFAULT 0,
		bar INTEGER DEFAULT 0,
		notes TEXT,
		contact TEXT,
		created_at TEXT NOT NULL
	)`},
	{sql: `CREATE TABLE IF NOT EXISTS products (
		id TEXT PRIMARY KEY,
		code TEXT UNIQUE NOT NULL,
		name TEXT NOT NULL,
		description TEXT,
		price REAL,
		category TEXT,
		weight REAL,
		supplier TEXT,
		is_active INTEGER DEFAULT 1,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`},
	{sql: `ALTER TABLE products ADD COLUMN supplier TEXT`, additive: true},
	{sql: `CREATE TABLE IF NOT EXISTS invoices (
		id TEXT PRIMARY KEY,
		invoice_number TEXT UNIQUE NOT NULL,
		document_type TEXT NOT NULL,
		client_id TEXT,
		client_name TEXT,
		date TEXT NOT NULL,
		due_date TEXT,
		total REAL NOT NULL,
		status TEXT NOT NULL,
		notes TEXT,
		created_at TEXT NOT NULL
	)`},
	{sql: `CREATE TABLE IF NOT EXISTS invoice_items (
		id TEXT PRIMARY KEY,
		invoice_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		product_name TEXT NOT NULL,
		quantity REAL NOT NULL,
		price REAL NOT NULL,
		total REAL NOT NULL,
		FOREIGN KEY (invoice_id) REFERENCES invoices(id)
	)`},
	{sql: `CREATE TABLE IF NOT EXISTS deliveries (
		id TEXT PRIMARY KEY,
		delivery_number TEXT UNIQUE NOT NULL,
		client_id TEXT,
		client_name TEXT,
		date TEXT NOT NULL,
		status TEXT NOT NULL,
		notes TEXT,
		created_at TEXT NOT NULL
	)`},
	{sql: `CREATE TABLE IF NOT EXISTS delivery_items (
		id TEXT PRIMARY KEY,
		delivery_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		product_name TEXT NOT NULL,
		quantity REAL NOT NULL,
		FOREIGN KEY (delivery_id) REFERENCES deliveries(id)
	)`},
	{sql: `CREATE TABLE IF NOT EXISTS warehouse_groups (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT,
		created_at TEXT NOT NULL
	)`},
	{sql: `CREATE TABLE IF NOT EXISTS warehouse_items (
		id TEXT PRIMARY KEY,
		group_id TEXT NOT NULL,
		product_id TEXT NOT NULL,
		product_code TEXT NOT NULL,
		product_name TEXT NOT NULL,
		quantity REAL NOT NULL,
		notes TEXT,
		created_at TEXT NOT NULL,
		FOREIGN KEY (group_id) REFERENCES warehouse_groups(id),
		FOREIGN KEY (product_id) REFERENCES products(id)
	)`},
	{sql: `CREATE TABLE IF NOT EXISTS statistics (
		id TEXT PRIMARY KEY,
		date TEXT NOT NULL,
		type TEXT NOT NULL,
		value REAL NOT NULL,
		metadata TEXT,
		created_at TEXT NOT NULL
	)`},
	{sql: `CREATE TABLE IF NOT EXISTS categories (
		id TEXT PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		created_at TEXT NOT NULL
	)`},
	{sql: `CREATE TABLE IF NOT EXISTS subcategories (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		category_id TEXT NOT NULL,
		created_at TEXT NOT NULL,
		FOREIGN KEY (category_id) REFERENCES categories(id)
	)`},
	{sql: `CREATE TABLE IF NOT EXISTS supplier_sectors (
		id TEXT PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		created_at TEXT NOT NULL
	)`},
	{sql: `CREATE TABLE IF NOT EXISTS supplier_products (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		sector_id TEXT NOT NULL,
		created_at TEXT NOT NULL,
		FOREIGN KEY (sector_id) REFERENCES supplier_sectors(id)
	)`},
	{sql: `CREATE TABLE IF NOT EXISTS suppliers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		legal_name TEXT,
		mb TEXT,
		pib TEXT,
		address TEXT,
		city TEXT,
		phone TEXT,
		email TEXT,
		telegram TEXT,
		instagram TEXT,
		website TEXT,
		bank TEXT,
		sector_id TEXT,
		product_id TEXT,
		contact_person TEXT,
		contact_person_status TEXT,
		google_maps TEXT,
		notes TEXT,
		is_active INTEGER DEFAULT 1,
		created_at TEXT NOT NULL,
		FOREIGN KEY (sector_id) REFERENCES supplier_sectors(id),
		FOREIGN KEY (product_id) REFERENCES supplier_products(id)
	)`},
	{sql: `CREATE TABLE IF NOT EXISTS countries (
		id TEXT PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		code TEXT,
		created_at TEXT NOT NULL
	)`},
	{sql: `ALTER TABLE clients ADD COLUMN contact_person_status TEXT`, additive: true},
	{sql: `ALTER TABLE clients ADD COLUMN abbreviation TEXT`, additive: true},
	{sql: `ALTER TABLE products ADD COLUMN subcategory TEXT`, additive: true},
	{sql: `ALTER TABLE products ADD COLUMN internal_code TEXT`, additive: true},
	{sql: `ALTER TABLE suppliers ADD COLUMN country TEXT`, additive: true},
	{sql: `ALTER TABLE suppliers ADD COLUMN reg_number TEXT`, additive: true},
	{sql: `ALTER TABLE suppliers ADD COLUMN wechat TEXT`, additive: true},
}

// bootstrap executes the schema sequence in order. Any failure of a
// non-additive step aborts startup.
func (s *Store) bootstrap() error {
	for _, step := range schemaSteps {
		if err := s.db.Exec(step.sql).Error; err != nil {
			if step.additive {
				zap.L().Debug("additive migration skipped", zap.Error(err))
				continue
			}
			return err
		}
	}
	return nil
}
