package config

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/luk14236/food-advice-agent/models"
	"github.com/luk14236/food-advice-agent/utils"
)

var DB *gorm.DB

// InitDB opens the Postgres connection and migrates the schema. Credentials
// come from AWS Secrets Manager when PG_CONN_SECRET_ARN is set, from DB_*
// environment variables otherwise.
func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	dsn, err := resolveDSN(context.TODO())
	if err != nil {
		log.Fatalf("Failed to resolve database credentials: %v", err)
	}

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := DB.AutoMigrate(&models.FavoriteFood{}); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

// CloseDB releases the underlying connection pool. Safe to call on every
// exit path, including before InitDB ever ran.
func CloseDB() {
	if DB == nil {
		return
	}
	if sqlDB, err := DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func resolveDSN(ctx context.Context) (string, error) {
	if connARN := os.Getenv("PG_CONN_SECRET_ARN"); connARN != "" {
		return dsnFromSecrets(ctx, connARN, os.Getenv("PG_PASSWORD_SECRET_ARN"))
	}

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	), nil
}

// dsnFromSecrets builds the DSN from two Secrets Manager secrets: the
// connection secret (host/port/dbname/username) and the master password
// secret (username/password).
func dsnFromSecrets(ctx context.Context, connARN, passwordARN string) (string, error) {
	if passwordARN == "" {
		return "", fmt.Errorf("PG_PASSWORD_SECRET_ARN is not set")
	}

	conn, err := utils.GetSecretJSON(ctx, connARN)
	if err != nil {
		return "", err
	}
	for _, k := range []string{"host", "port", "dbname"} {
		if conn[k] == "" {
			return "", fmt.Errorf("connection secret missing key: %s", k)
		}
	}

	creds, err := utils.GetSecretJSON(ctx, passwordARN)
	if err != nil {
		return "", err
	}
	if creds["username"] == "" || creds["password"] == "" {
		return "", fmt.Errorf("password secret missing username/password")
	}

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=require",
		conn["host"], creds["username"], creds["password"], conn["dbname"], conn["port"],
	), nil
}
