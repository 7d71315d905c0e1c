package main

import (
	"log"
	"os"

	"legal-assistant-be/internal/model"
	"legal-assistant-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Starting Authoritative GORM Migration...")

	// 3. Pre-Migration: Extensions (Things GORM AutoMigrate doesn't do)
	color.Yellow("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS vector;`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models
	color.Yellow("Step 2: Running AutoMigrate for 6 Tables...")

	models := []interface{}{
		&model.Decision{},
		&model.DecisionChunk{},
		&model.ConstitutionArticle{},
		&model.PenalCodeArticle{},
		&model.Conversation{},
		&model.Message{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Post-Migration: Indexes GORM tags cannot express
	color.Yellow("Step 3: Creating Search Indexes...")

	postMigrationSQL := []string{
		// ANN index for cosine search over decision chunks
		`CREATE INDEX IF NOT EXISTS idx_decision_chunks_embedding
		 ON decision_chunks USING hnsw (embedding vector_cosine_ops);`,

		// Full-text index matching the lexical search expression
		`CREATE INDEX IF NOT EXISTS idx_decisions_fulltext
		 ON decisions USING gin (to_tsvector('turkish', coalesce(title,'') || ' ' || coalesce(summary,'') || ' ' || coalesce(full_text,'')));`,

		// Daily quota counts scan today's user messages
		`CREATE INDEX IF NOT EXISTS idx_messages_created_at ON messages (created_at);`,
	}

	for _, sql := range postMigrationSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute post-migration SQL: %v", err)
		}
	}

	color.Green("✅ Success: Database migration completed successfully via GORM.")
}
