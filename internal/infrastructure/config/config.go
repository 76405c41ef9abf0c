package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StorageDynamoDB = "dynamodb"
	StorageMemory   = "memory"
)

// Tables holds the DynamoDB table names, one per entity.
type Tables struct {
	WorkOrders     string
	Assignments    string
	WorkLogs       string
	Quotations     string
	Invoices       string
	Payments       string
	PaymentMethods string
	Products       string
}

type DynamoDB struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Endpoint        string
	Tables          Tables
}

type Redis struct {
	Addr     string
	Password string
}

type Locks struct {
	TTL         time.Duration
	WaitTimeout time.Duration
}

type Invoice struct {
	Currency string
	DueDays  int
}

type MercadoPago struct {
	AccessToken     string
	Mock            bool
	TestPayerEmail  string
	TestPayerUserID string
}

// Config is read once at startup from the environment (.env is loaded by
// godotenv/autoload in main).
type Config struct {
	Port          string
	StorageDriver string
	DynamoDB      DynamoDB
	Redis         Redis
	Locks         Locks
	Invoice       Invoice
	MercadoPago   MercadoPago
}

func Load() Config {
	cfg := Config{
		Port:          getenvDefault("PORT", "8080"),
		StorageDriver: strings.ToLower(getenvDefault("STORAGE_DRIVER", StorageDynamoDB)),
		DynamoDB: DynamoDB{
			Region:          getenvDefault("AWS_REGION", "us-east-1"),
			AccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			Endpoint:        strings.TrimSpace(os.Getenv("DYNAMODB_ENDPOINT")),
			Tables: Tables{
				WorkOrders:     getenvDefault("WORK_ORDERS_TABLE", "work_orders"),
				Assignments:    getenvDefault("WORK_ASSIGNMENTS_TABLE", "work_assignments"),
				WorkLogs:       getenvDefault("WORK_LOGS_TABLE", "work_logs"),
				Quotations:     getenvDefault("QUOTATIONS_TABLE", "quotations"),
				Invoices:       getenvDefault("INVOICES_TABLE", "invoices"),
				Payments:       getenvDefault("PAYMENTS_TABLE", "payments"),
				PaymentMethods: getenvDefault("PAYMENT_METHODS_TABLE", "payment_methods"),
				Products:       getenvDefault("PRODUCTS_TABLE", "products"),
			},
		},
		Redis: Redis{
			Addr:     strings.TrimSpace(os.Getenv("REDIS_ADDR")),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		Locks: Locks{
			TTL:         getenvDuration("LOCK_TTL", 10*time.Second),
			WaitTimeout: getenvDuration("LOCK_WAIT_TIMEOUT", 5*time.Second),
		},
		Invoice: Invoice{
			Currency: strings.ToUpper(getenvDefault("INVOICE_CURRENCY", "GTQ")),
			DueDays:  getenvInt("INVOICE_DUE_DAYS", 30),
		},
		MercadoPago: MercadoPago{
			AccessToken:     strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
			Mock:            getenvBool("PAYMENT_GATEWAY_MOCK") || getenvBool("MERCADOPAGO_MOCK"),
			TestPayerEmail:  strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")),
			TestPayerUserID: strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID")),
		},
	}

	if cfg.StorageDriver != StorageDynamoDB && cfg.StorageDriver != StorageMemory {
		log.Printf("[config] unknown STORAGE_DRIVER=%s, falling back to %s", cfg.StorageDriver, StorageDynamoDB)
		cfg.StorageDriver = StorageDynamoDB
	}
	return cfg
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.Printf("[config] invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		log.Printf("[config] invalid %s=%q, using %s", key, v, def)
		return def
	}
	return d
}

func getenvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
