package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"

	"star-electricals-server/utils"
)

type seedCategory struct {
	Name        string
	Description string
	Icon        string
	SortOrder   int
}

type seedProduct struct {
	ProductCode    string
	Name           string
	Brand          string
	Type           string
	Price          float64
	Discount       float64
	Stock          int
	MinStock       int
	WarrantyMonths int
}

// seedDemoData inserts a small demo catalog plus a default admin account.
// It goes through database/sql directly so it can be re-run safely with
// ON CONFLICT DO NOTHING instead of fighting GORM's upsert semantics.
func seedDemoData() error {
	dbHost := seedEnv("DB_HOST", "localhost")
	dbPort := seedEnv("DB_PORT", "5432")
	dbUser := seedEnv("DB_USER", "postgres")
	dbPassword := seedEnv("DB_PASSWORD", "")
	dbName := seedEnv("DB_NAME", "star_electricals_db")
	dbSSLMode := seedEnv("DB_SSL_MODE", "disable")

	connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		dbHost, dbPort, dbUser, dbPassword, dbName, dbSSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	categories := []seedCategory{
		{Name: "Electrician", Description: "Wiring, repairs and fittings", Icon: "⚡", SortOrder: 1},
		{Name: "Plumber", Description: "Pipes, taps and water systems", Icon: "🔧", SortOrder: 2},
		{Name: "AC Technician", Description: "AC installation and servicing", Icon: "❄️", SortOrder: 3},
		{Name: "Appliance Repair", Description: "Home appliance repairs", Icon: "🔌", SortOrder: 4},
	}

	for _, cat := range categories {
		_, err := db.Exec(`
			INSERT INTO service_categories (name, description, icon, is_active, sort_order, created_at, updated_at)
			VALUES ($1, $2, $3, true, $4, NOW(), NOW())
			ON CONFLICT (name) DO NOTHING`,
			cat.Name, cat.Description, cat.Icon, cat.SortOrder)
		if err != nil {
			return fmt.Errorf("failed to seed category %s: %w", cat.Name, err)
		}
	}
	log.Printf("✅ Seeded %d service categories", len(categories))

	products := []seedProduct{
		{ProductCode: "FAN-CG-1200", Name: "Ceiling Fan 1200mm", Brand: "Crompton", Type: "Fan", Price: 2499, Discount: 10, Stock: 25, MinStock: 5, WarrantyMonths: 24},
		{ProductCode: "WIR-FIN-90M", Name: "FR Wire 1.5sqmm 90m", Brand: "Finolex", Type: "Wiring", Price: 1899, Discount: 5, Stock: 40, MinStock: 10, WarrantyMonths: 0},
		{ProductCode: "SW-ANCH-6A", Name: "Modular Switch 6A", Brand: "Anchor", Type: "Switch", Price: 89, Discount: 0, Stock: 200, MinStock: 20, WarrantyMonths: 12},
		{ProductCode: "GYS-BAJ-15L", Name: "Storage Geyser 15L", Brand: "Bajaj", Type: "Geyser", Price: 7999, Discount: 15, Stock: 8, MinStock: 3, WarrantyMonths: 60},
		{ProductCode: "LED-PHI-9W", Name: "LED Bulb 9W Cool White", Brand: "Philips", Type: "Lighting", Price: 129, Discount: 0, Stock: 150, MinStock: 30, WarrantyMonths: 12},
	}

	for _, p := range products {
		_, err := db.Exec(`
			INSERT INTO products (product_code, name, brand, type, price, discount, stock, min_stock, warranty_months, is_active, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, true, NOW(), NOW())
			ON CONFLICT (product_code) DO NOTHING`,
			p.ProductCode, p.Name, p.Brand, p.Type, p.Price, p.Discount, p.Stock, p.MinStock, p.WarrantyMonths)
		if err != nil {
			return fmt.Errorf("failed to seed product %s: %w", p.ProductCode, err)
		}
	}
	log.Printf("✅ Seeded %d products", len(products))

	adminPhone := seedEnv("ADMIN_PHONE", "+919999900001")
	adminPassword := seedEnv("ADMIN_PASSWORD", "Admin@1234")
	hash, err := utils.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO users (full_name, phone_number, password_hash, role, is_active, created_at, updated_at)
		VALUES ('Store Admin', $1, $2, 'admin', true, NOW(), NOW())
		ON CONFLICT (phone_number) DO NOTHING`,
		adminPhone, hash)
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}
	log.Printf("✅ Seeded admin account (%s)", adminPhone)

	return nil
}

func seedEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
