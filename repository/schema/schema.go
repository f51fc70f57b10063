package schema

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

const mysqlSchema = `
CREATE TABLE IF NOT EXISTS account (
  id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
  email VARCHAR(254) NOT NULL,
  password_hash VARCHAR(255) NOT NULL,
  first_name VARCHAR(100) NOT NULL,
  last_name VARCHAR(100) NOT NULL,
  surname VARCHAR(100) NOT NULL DEFAULT '',
  position VARCHAR(100) NOT NULL DEFAULT '',
  account_type VARCHAR(6) NOT NULL DEFAULT 'buyer',
  is_active BOOLEAN NOT NULL DEFAULT FALSE,
  created_at DATETIME NOT NULL,
  UNIQUE KEY uq_account_email (email)
);
CREATE TABLE IF NOT EXISTS shop (
  id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
  name VARCHAR(128) NOT NULL,
  url VARCHAR(2048) NOT NULL DEFAULT '',
  account_id BIGINT UNSIGNED NULL,
  status BOOLEAN NOT NULL DEFAULT TRUE,
  KEY idx_shop_account (account_id),
  CONSTRAINT fk_shop_account FOREIGN KEY (account_id) REFERENCES account (id) ON DELETE CASCADE
);
CREATE TABLE IF NOT EXISTS category (
  id BIGINT UNSIGNED PRIMARY KEY,
  name VARCHAR(128) NOT NULL
);
CREATE TABLE IF NOT EXISTS category_shop (
  category_id BIGINT UNSIGNED NOT NULL,
  shop_id BIGINT UNSIGNED NOT NULL,
  PRIMARY KEY (category_id, shop_id),
  CONSTRAINT fk_category_shop_category FOREIGN KEY (category_id) REFERENCES category (id) ON DELETE CASCADE,
  CONSTRAINT fk_category_shop_shop FOREIGN KEY (shop_id) REFERENCES shop (id) ON DELETE CASCADE
);
CREATE TABLE IF NOT EXISTS product (
  id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
  name VARCHAR(128) NOT NULL,
  category_id BIGINT UNSIGNED NOT NULL,
  KEY idx_product_name_category (name, category_id),
  CONSTRAINT fk_product_category FOREIGN KEY (category_id) REFERENCES category (id) ON DELETE CASCADE
);
CREATE TABLE IF NOT EXISTS product_info (
  id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
  product_id BIGINT UNSIGNED NOT NULL,
  shop_id BIGINT UNSIGNED NOT NULL,
  quantity INT UNSIGNED NOT NULL DEFAULT 1,
  price DECIMAL(20,2) NOT NULL,
  price_rrc DECIMAL(20,2) NOT NULL,
  UNIQUE KEY uq_product_info (product_id, shop_id),
  CONSTRAINT fk_product_info_product FOREIGN KEY (product_id) REFERENCES product (id) ON DELETE CASCADE,
  CONSTRAINT fk_product_info_shop FOREIGN KEY (shop_id) REFERENCES shop (id) ON DELETE CASCADE
);
CREATE TABLE IF NOT EXISTS parameter (
  id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
  name VARCHAR(128) NOT NULL,
  UNIQUE KEY uq_parameter_name (name)
);
CREATE TABLE IF NOT EXISTS product_parameter (
  id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
  product_info_id BIGINT UNSIGNED NOT NULL,
  parameter_id BIGINT UNSIGNED NOT NULL,
  value VARCHAR(128) NOT NULL,
  UNIQUE KEY uq_product_parameter (product_info_id, parameter_id),
  CONSTRAINT fk_product_parameter_info FOREIGN KEY (product_info_id) REFERENCES product_info (id) ON DELETE CASCADE,
  CONSTRAINT fk_product_parameter_parameter FOREIGN KEY (parameter_id) REFERENCES parameter (id) ON DELETE CASCADE
);
CREATE TABLE IF NOT EXISTS ` + "`order`" + ` (
  id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
  account_id BIGINT UNSIGNED NOT NULL,
  status VARCHAR(16) NOT NULL DEFAULT 'new',
  created_at DATETIME NOT NULL,
  KEY idx_order_account_status (account_id, status),
  CONSTRAINT fk_order_account FOREIGN KEY (account_id) REFERENCES account (id) ON DELETE CASCADE
);
CREATE TABLE IF NOT EXISTS order_item (
  id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
  order_id BIGINT UNSIGNED NOT NULL,
  product_info_id BIGINT UNSIGNED NOT NULL,
  quantity INT UNSIGNED NOT NULL,
  UNIQUE KEY uq_order_item (order_id, product_info_id),
  CONSTRAINT fk_order_item_order FOREIGN KEY (order_id) REFERENCES ` + "`order`" + ` (id) ON DELETE CASCADE,
  CONSTRAINT fk_order_item_info FOREIGN KEY (product_info_id) REFERENCES product_info (id) ON DELETE CASCADE
);
CREATE TABLE IF NOT EXISTS contact (
  id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
  account_id BIGINT UNSIGNED NOT NULL,
  type VARCHAR(16) NOT NULL,
  value VARCHAR(50) NOT NULL,
  UNIQUE KEY uq_contact_type (account_id, type),
  CONSTRAINT fk_contact_account FOREIGN KEY (account_id) REFERENCES account (id) ON DELETE CASCADE
);
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS account (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  first_name TEXT NOT NULL,
  last_name TEXT NOT NULL,
  surname TEXT NOT NULL DEFAULT '',
  position TEXT NOT NULL DEFAULT '',
  account_type TEXT NOT NULL DEFAULT 'buyer' CHECK (account_type IN ('seller','buyer')),
  is_active BOOLEAN NOT NULL DEFAULT 0,
  created_at DATETIME NOT NULL
);
CREATE TABLE IF NOT EXISTS shop (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  url TEXT NOT NULL DEFAULT '',
  account_id INTEGER NULL REFERENCES account(id) ON DELETE CASCADE,
  status BOOLEAN NOT NULL DEFAULT 1
);
CREATE TABLE IF NOT EXISTS category (
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS category_shop (
  category_id INTEGER NOT NULL REFERENCES category(id) ON DELETE CASCADE,
  shop_id INTEGER NOT NULL REFERENCES shop(id) ON DELETE CASCADE,
  PRIMARY KEY (category_id, shop_id)
);
CREATE TABLE IF NOT EXISTS product (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  category_id INTEGER NOT NULL REFERENCES category(id) ON DELETE CASCADE
);
CREATE INDEX IF NOT EXISTS idx_product_name_category ON product(name, category_id);
CREATE TABLE IF NOT EXISTS product_info (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  product_id INTEGER NOT NULL REFERENCES product(id) ON DELETE CASCADE,
  shop_id INTEGER NOT NULL REFERENCES shop(id) ON DELETE CASCADE,
  quantity INTEGER NOT NULL DEFAULT 1 CHECK (quantity >= 0),
  price NUMERIC NOT NULL CHECK (price >= 0),
  price_rrc NUMERIC NOT NULL CHECK (price_rrc >= 0),
  UNIQUE (product_id, shop_id)
);
CREATE TABLE IF NOT EXISTS parameter (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL UNIQUE
);
CREATE TABLE IF NOT EXISTS product_parameter (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  product_info_id INTEGER NOT NULL REFERENCES product_info(id) ON DELETE CASCADE,
  parameter_id INTEGER NOT NULL REFERENCES parameter(id) ON DELETE CASCADE,
  value TEXT NOT NULL,
  UNIQUE (product_info_id, parameter_id)
);
CREATE TABLE IF NOT EXISTS ` + "`order`" + ` (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  account_id INTEGER NOT NULL REFERENCES account(id) ON DELETE CASCADE,
  status TEXT NOT NULL DEFAULT 'new',
  created_at DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_order_account_status ON ` + "`order`" + `(account_id, status);
CREATE TABLE IF NOT EXISTS order_item (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  order_id INTEGER NOT NULL REFERENCES ` + "`order`" + `(id) ON DELETE CASCADE,
  product_info_id INTEGER NOT NULL REFERENCES product_info(id) ON DELETE CASCADE,
  quantity INTEGER NOT NULL CHECK (quantity >= 0),
  UNIQUE (order_id, product_info_id)
);
CREATE TABLE IF NOT EXISTS contact (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  account_id INTEGER NOT NULL REFERENCES account(id) ON DELETE CASCADE,
  type TEXT NOT NULL CHECK (type IN ('phone','address')),
  value TEXT NOT NULL,
  UNIQUE (account_id, type)
);
`

// Ensure creates the tables for the driver behind db. It is safe to run on
// every start.
func Ensure(db *sqlx.DB) error {
	var ddl string
	switch db.DriverName() {
	case "mysql":
		ddl = mysqlSchema
	case "sqlite", "sqlite3":
		ddl = sqliteSchema
	default:
		return fmt.Errorf("schema: unsupported driver %q", db.DriverName())
	}

	// the mysql driver rejects multi-statement Exec unless multiStatements is set
	for _, stmt := range strings.Split(ddl, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("schema: %w", err)
		}
	}
	return nil
}
