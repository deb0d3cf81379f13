package repos

import (
	"strings"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// OpenDB connects to SQLite and makes sure the schema exists. Demo rows are
// not inserted here; see SeedDemo.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", withPragmas(dsn))
	if err != nil {
		return nil, err
	}
	if isMemory(dsn) {
		// every connection to :memory: is a fresh database
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func isMemory(dsn string) bool {
	return strings.HasPrefix(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}

func withPragmas(dsn string) string {
	if strings.Contains(dsn, "_pragma=foreign_keys") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

CREATE TABLE IF NOT EXISTS address(
  address_id TEXT PRIMARY KEY,
  street_address1 TEXT NOT NULL,
  street_address2 TEXT,
  street_address3 TEXT,
  city TEXT NOT NULL,
  state_province_county TEXT NOT NULL,
  postal_code TEXT,
  country_code TEXT,
  latitude REAL,
  longitude REAL,
  created_at TIMESTAMP NOT NULL,
  updated_at TIMESTAMP NOT NULL,
  etag TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_address_created_at ON address(created_at);

CREATE TABLE IF NOT EXISTS users(
  user_id TEXT PRIMARY KEY,
  email TEXT NOT NULL,
  username TEXT NOT NULL,
  bio TEXT NOT NULL DEFAULT '',
  role TEXT NOT NULL CHECK (role IN ('USER','ADMIN')),
  image TEXT,
  password_hash TEXT NOT NULL,
  created_at TIMESTAMP NOT NULL,
  updated_at TIMESTAMP NOT NULL,
  etag TEXT NOT NULL
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(LOWER(email));
CREATE INDEX IF NOT EXISTS idx_users_created_at ON users(created_at);

CREATE TABLE IF NOT EXISTS organization(
  organization_id TEXT PRIMARY KEY,
  org_type TEXT NOT NULL CHECK (org_type IN ('Business','FarmAnimalSanctuary','NonProfit')),
  name TEXT NOT NULL,
  description TEXT,
  image TEXT,
  email TEXT NOT NULL,
  website TEXT NOT NULL,
  contact_name TEXT,
  phone_number TEXT,
  alt_phone_number TEXT,
  primary_address_id TEXT REFERENCES address(address_id) ON DELETE SET NULL,
  created_at TIMESTAMP NOT NULL,
  updated_at TIMESTAMP NOT NULL,
  etag TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_organization_created_at ON organization(created_at);

CREATE TABLE IF NOT EXISTS article(
  article_id TEXT PRIMARY KEY,
  slug TEXT NOT NULL UNIQUE,
  title TEXT NOT NULL,
  description TEXT NOT NULL,
  body TEXT NOT NULL,
  tag_list TEXT NOT NULL DEFAULT '[]',
  author_id TEXT REFERENCES users(user_id) ON DELETE SET NULL,
  created_at TIMESTAMP NOT NULL,
  updated_at TIMESTAMP NOT NULL,
  etag TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_article_created_at ON article(created_at);

CREATE TABLE IF NOT EXISTS auction(
  auction_id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  description TEXT NOT NULL,
  start_date TIMESTAMP NOT NULL,
  end_date TIMESTAMP NOT NULL,
  benefits_organization_id TEXT REFERENCES organization(organization_id) ON DELETE SET NULL,
  created_at TIMESTAMP NOT NULL,
  updated_at TIMESTAMP NOT NULL,
  etag TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_auction_created_at ON auction(created_at);

CREATE TABLE IF NOT EXISTS auction_item(
  auction_item_id TEXT PRIMARY KEY,
  auction_id TEXT NOT NULL REFERENCES auction(auction_id) ON DELETE CASCADE,
  basket_id TEXT REFERENCES auction_item(auction_item_id) ON DELETE SET NULL,
  expected_retail_value TEXT NOT NULL,
  minimum_bid_amount TEXT NOT NULL,
  buy_it_now_amount TEXT,
  title TEXT NOT NULL,
  description TEXT NOT NULL,
  featured_image_filepath TEXT NOT NULL DEFAULT '',
  image_dir TEXT NOT NULL DEFAULT '',
  tag_list TEXT NOT NULL DEFAULT '[]',
  donated_by_organization_id TEXT REFERENCES organization(organization_id) ON DELETE SET NULL,
  benefits_organization_id TEXT REFERENCES organization(organization_id) ON DELETE SET NULL,
  active_start_date TIMESTAMP NOT NULL,
  active_end_date TIMESTAMP NOT NULL,
  created_at TIMESTAMP NOT NULL,
  updated_at TIMESTAMP NOT NULL,
  etag TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_auction_item_auction ON auction_item(auction_id);
CREATE INDEX IF NOT EXISTS idx_auction_item_created_at ON auction_item(created_at);

CREATE TABLE IF NOT EXISTS auction_item_bid(
  auction_item_bid_id TEXT PRIMARY KEY,
  auction_item_id TEXT NOT NULL REFERENCES auction_item(auction_item_id) ON DELETE CASCADE,
  user_id TEXT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
  amount TEXT NOT NULL,
  max_bid_amount TEXT,
  is_winning_bid INTEGER NOT NULL DEFAULT 0,
  created_at TIMESTAMP NOT NULL,
  updated_at TIMESTAMP NOT NULL,
  etag TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_bid_item ON auction_item_bid(auction_item_id);
CREATE INDEX IF NOT EXISTS idx_bid_created_at ON auction_item_bid(created_at);

CREATE TABLE IF NOT EXISTS auction_item_delivery(
  auction_item_delivery_id TEXT PRIMARY KEY,
  auction_item_bid_id TEXT NOT NULL REFERENCES auction_item_bid(auction_item_bid_id) ON DELETE CASCADE,
  user_id TEXT NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
  shipping_address_id TEXT NOT NULL REFERENCES address(address_id) ON DELETE RESTRICT,
  shipping_fee TEXT,
  shipped_at TIMESTAMP,
  delivered_at TIMESTAMP,
  shipping_exception TEXT,
  sms_updates_number TEXT,
  email_contact TEXT,
  signature_name TEXT,
  signed_for_by TEXT,
  carrier TEXT,
  tracking_number TEXT,
  created_at TIMESTAMP NOT NULL,
  updated_at TIMESTAMP NOT NULL,
  etag TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_delivery_created_at ON auction_item_delivery(created_at);
`
	_, err := db.Exec(schema)
	return err
}
