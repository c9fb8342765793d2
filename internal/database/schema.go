package database

// Schema statements for the sales domain. Table layout mirrors the
// entity model in internal/models; no migration logic beyond
// CREATE TABLE IF NOT EXISTS is in scope.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS persons (
	    business_entity_id BIGINT PRIMARY KEY AUTO_INCREMENT,
	    person_type CHAR(2) NOT NULL,
	    title VARCHAR(8) NULL,
	    first_name VARCHAR(50) NOT NULL,
	    middle_name VARCHAR(50) NULL,
	    last_name VARCHAR(50) NOT NULL,
	    suffix VARCHAR(10) NULL,
	    rowguid CHAR(36) NOT NULL,
	    modified_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	    INDEX idx_person_type (person_type),
	    INDEX idx_last_first (last_name, first_name)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS email_addresses (
	    email_address_id BIGINT PRIMARY KEY AUTO_INCREMENT,
	    business_entity_id BIGINT NOT NULL,
	    email_address VARCHAR(50) NOT NULL,
	    rowguid CHAR(36) NOT NULL,
	    modified_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	    FOREIGN KEY (business_entity_id) REFERENCES persons(business_entity_id),
	    INDEX idx_business_entity (business_entity_id),
	    INDEX idx_email (email_address)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS person_phones (
	    business_entity_id BIGINT NOT NULL,
	    phone_number VARCHAR(25) NOT NULL,
	    phone_number_type_id BIGINT NOT NULL,
	    modified_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	    PRIMARY KEY (business_entity_id, phone_number, phone_number_type_id),
	    FOREIGN KEY (business_entity_id) REFERENCES persons(business_entity_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS addresses (
	    address_id BIGINT PRIMARY KEY AUTO_INCREMENT,
	    address_line1 VARCHAR(60) NOT NULL,
	    address_line2 VARCHAR(60) NULL,
	    city VARCHAR(30) NOT NULL,
	    state_province VARCHAR(50) NOT NULL,
	    postal_code VARCHAR(15) NOT NULL,
	    country_region VARCHAR(50) NOT NULL,
	    rowguid CHAR(36) NOT NULL,
	    modified_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	    INDEX idx_city (city)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS business_entity_addresses (
	    business_entity_id BIGINT NOT NULL,
	    address_id BIGINT NOT NULL,
	    address_type_id BIGINT NOT NULL,
	    rowguid CHAR(36) NOT NULL,
	    modified_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	    PRIMARY KEY (business_entity_id, address_id, address_type_id),
	    FOREIGN KEY (business_entity_id) REFERENCES persons(business_entity_id),
	    FOREIGN KEY (address_id) REFERENCES addresses(address_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS stores (
	    store_id BIGINT PRIMARY KEY AUTO_INCREMENT,
	    name VARCHAR(100) NOT NULL,
	    rowguid CHAR(36) NOT NULL,
	    modified_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	    INDEX idx_name (name)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS sales_territories (
	    territory_id BIGINT PRIMARY KEY AUTO_INCREMENT,
	    name VARCHAR(50) NOT NULL,
	    country_region VARCHAR(50) NOT NULL,
	    territory_group VARCHAR(50) NOT NULL,
	    rowguid CHAR(36) NOT NULL,
	    modified_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS customers (
	    customer_id BIGINT PRIMARY KEY AUTO_INCREMENT,
	    person_id BIGINT NULL,
	    store_id BIGINT NULL,
	    territory_id BIGINT NULL,
	    account_number VARCHAR(10) NOT NULL,
	    rowguid CHAR(36) NOT NULL,
	    modified_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	    FOREIGN KEY (person_id) REFERENCES persons(business_entity_id),
	    FOREIGN KEY (store_id) REFERENCES stores(store_id),
	    FOREIGN KEY (territory_id) REFERENCES sales_territories(territory_id),
	    UNIQUE KEY uk_account_number (account_number),
	    INDEX idx_territory (territory_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS product_categories (
	    product_category_id BIGINT PRIMARY KEY AUTO_INCREMENT,
	    name VARCHAR(50) NOT NULL,
	    rowguid CHAR(36) NOT NULL,
	    modified_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS product_subcategories (
	    product_subcategory_id BIGINT PRIMARY KEY AUTO_INCREMENT,
	    product_category_id BIGINT NOT NULL,
	    name VARCHAR(50) NOT NULL,
	    rowguid CHAR(36) NOT NULL,
	    modified_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	    FOREIGN KEY (product_category_id) REFERENCES product_categories(product_category_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS products (
	    product_id BIGINT PRIMARY KEY AUTO_INCREMENT,
	    name VARCHAR(100) NOT NULL,
	    product_number VARCHAR(25) NOT NULL,
	    make_flag BOOLEAN NOT NULL DEFAULT TRUE,
	    finished_goods_flag BOOLEAN NOT NULL DEFAULT TRUE,
	    color VARCHAR(15) NULL,
	    safety_stock_level INT NOT NULL,
	    reorder_point INT NOT NULL,
	    standard_cost DECIMAL(19,4) NOT NULL,
	    list_price DECIMAL(19,4) NOT NULL,
	    size VARCHAR(5) NULL,
	    weight DECIMAL(8,2) NULL,
	    days_to_manufacture INT NOT NULL DEFAULT 0,
	    product_subcategory_id BIGINT NULL,
	    product_model_id BIGINT NULL,
	    sell_start_date TIMESTAMP NOT NULL,
	    sell_end_date TIMESTAMP NULL,
	    discontinued_date TIMESTAMP NULL,
	    rowguid CHAR(36) NOT NULL,
	    modified_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	    FOREIGN KEY (product_subcategory_id) REFERENCES product_subcategories(product_subcategory_id),
	    UNIQUE KEY uk_product_number (product_number),
	    INDEX idx_name (name),
	    INDEX idx_list_price (list_price)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS product_inventories (
	    product_id BIGINT NOT NULL,
	    location_id BIGINT NOT NULL,
	    quantity INT NOT NULL DEFAULT 0,
	    rowguid CHAR(36) NOT NULL,
	    modified_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	    PRIMARY KEY (product_id, location_id),
	    FOREIGN KEY (product_id) REFERENCES products(product_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS special_offers (
	    special_offer_id BIGINT PRIMARY KEY AUTO_INCREMENT,
	    description VARCHAR(255) NOT NULL,
	    discount_pct DECIMAL(10,4) NOT NULL DEFAULT 0,
	    rowguid CHAR(36) NOT NULL,
	    modified_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS sales_order_headers (
	    sales_order_id BIGINT PRIMARY KEY AUTO_INCREMENT,
	    revision_number INT NOT NULL DEFAULT 1,
	    order_date TIMESTAMP NOT NULL,
	    due_date TIMESTAMP NOT NULL,
	    ship_date TIMESTAMP NULL,
	    status TINYINT NOT NULL DEFAULT 1,
	    online_order_flag BOOLEAN NOT NULL DEFAULT TRUE,
	    sales_order_number VARCHAR(25) NOT NULL,
	    purchase_order_number VARCHAR(25) NULL,
	    account_number VARCHAR(15) NULL,
	    customer_id BIGINT NOT NULL,
	    sales_person_id BIGINT NULL,
	    territory_id BIGINT NULL,
	    bill_to_address_id BIGINT NOT NULL,
	    ship_to_address_id BIGINT NOT NULL,
	    ship_method_id BIGINT NOT NULL,
	    subtotal DECIMAL(19,4) NOT NULL DEFAULT 0,
	    tax_amt DECIMAL(19,4) NOT NULL DEFAULT 0,
	    freight DECIMAL(19,4) NOT NULL DEFAULT 0,
	    total_due DECIMAL(19,4) NOT NULL DEFAULT 0,
	    comment VARCHAR(128) NULL,
	    rowguid CHAR(36) NOT NULL,
	    modified_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	    FOREIGN KEY (customer_id) REFERENCES customers(customer_id),
	    UNIQUE KEY uk_sales_order_number (sales_order_number),
	    INDEX idx_customer (customer_id),
	    INDEX idx_order_date (order_date),
	    INDEX idx_status (status)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS sales_order_details (
	    sales_order_detail_id BIGINT PRIMARY KEY AUTO_INCREMENT,
	    sales_order_id BIGINT NOT NULL,
	    carrier_tracking_number VARCHAR(25) NULL,
	    order_qty INT NOT NULL,
	    product_id BIGINT NOT NULL,
	    special_offer_id BIGINT NOT NULL DEFAULT 1,
	    unit_price DECIMAL(19,4) NOT NULL,
	    unit_price_discount DECIMAL(10,4) NOT NULL DEFAULT 0,
	    line_total DECIMAL(19,4) NOT NULL,
	    rowguid CHAR(36) NOT NULL,
	    modified_date TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	    FOREIGN KEY (sales_order_id) REFERENCES sales_order_headers(sales_order_id),
	    FOREIGN KEY (product_id) REFERENCES products(product_id),
	    INDEX idx_sales_order (sales_order_id),
	    INDEX idx_product (product_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// Tables in dependency order; cleanup and drop walk it backwards.
var tableNames = []string{
	"persons",
	"email_addresses",
	"person_phones",
	"addresses",
	"business_entity_addresses",
	"stores",
	"sales_territories",
	"customers",
	"product_categories",
	"product_subcategories",
	"products",
	"product_inventories",
	"special_offers",
	"sales_order_headers",
	"sales_order_details",
}

// SetupSchema creates all sales domain tables
func (db *DB) SetupSchema() error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	return nil
}

// CleanupData removes all rows (but keeps schema)
func (db *DB) CleanupData() error {
	for i := len(tableNames) - 1; i >= 0; i-- {
		if _, err := db.Exec("DELETE FROM " + tableNames[i]); err != nil {
			return err
		}
	}

	return nil
}

// DropSchema removes all sales domain tables
func (db *DB) DropSchema() error {
	for i := len(tableNames) - 1; i >= 0; i-- {
		if _, err := db.Exec("DROP TABLE IF EXISTS " + tableNames[i]); err != nil {
			return err
		}
	}

	return nil
}
