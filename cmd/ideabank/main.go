// cmd/ideabank/main.go
package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/campusforge/ideabank/internal/auth"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var (
	dbConnString string
	verbose      bool
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&dbConnString, "db", "d", "", "Database connection string")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	seedAdminCmd.Flags().StringVar(&adminName, "name", "Administrator", "Admin display name")
	seedAdminCmd.Flags().StringVar(&adminEmail, "email", "", "Admin email (required)")
	seedAdminCmd.Flags().StringVar(&adminPassword, "password", "", "Admin password (required)")
	seedAdminCmd.MarkFlagRequired("email")
	seedAdminCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedAdminCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "ideabank",
	Short: "Admin tooling for the Idea Bank platform",
	Long:  `ideabank manages the platform schema and bootstrap data: run migrations and seed the first admin account.`,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Run: func(cmd *cobra.Command, args []string) {
		db := connectDB()
		defer db.Close()

		start := time.Now()
		for i, stmt := range schemaStatements {
			if verbose {
				fmt.Printf("applying statement %d/%d\n", i+1, len(schemaStatements))
			}
			if _, err := db.Exec(stmt); err != nil {
				log.Fatalf("migration failed at statement %d: %v", i+1, err)
			}
		}
		fmt.Printf("schema up to date (%s)\n", time.Since(start).Round(time.Millisecond))
	},
}

var (
	adminName     string
	adminEmail    string
	adminPassword string
)

var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Create an admin account",
	Run: func(cmd *cobra.Command, args []string) {
		db := connectDB()
		defer db.Close()

		hash, err := auth.NewPasswordHasher().Hash(adminPassword)
		if err != nil {
			log.Fatalf("hashing password: %v", err)
		}

		result, err := db.Exec(
			`INSERT INTO users (name, email, password_hash, role)
			 VALUES ($1, $2, $3, 'admin')
			 ON CONFLICT (email) DO NOTHING`,
			adminName, adminEmail, hash,
		)
		if err != nil {
			log.Fatalf("seeding admin: %v", err)
		}

		if rows, _ := result.RowsAffected(); rows == 0 {
			fmt.Printf("admin %s already exists, nothing to do\n", adminEmail)
			return
		}
		fmt.Printf("admin %s created\n", adminEmail)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("ideabank v0.1.0")
	},
}

func connectDB() *sql.DB {
	if dbConnString == "" {
		dbConnString = os.Getenv("DATABASE_URL")
	}
	if dbConnString == "" {
		log.Fatal("no database connection string; pass --db or set DATABASE_URL")
	}

	db, err := sql.Open("postgres", dbConnString)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("pinging database: %v", err)
	}
	return db
}

// schemaStatements is the full platform schema. Statements are idempotent so
// migrate can run on every deploy.
var schemaStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS citext`,
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

	`CREATE TABLE IF NOT EXISTS users (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		name text NOT NULL,
		email citext NOT NULL UNIQUE,
		password_hash text NOT NULL,
		role text NOT NULL DEFAULT 'student',
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,

	`CREATE TABLE IF NOT EXISTS ideas (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		title text NOT NULL,
		description text NOT NULL,
		category text,
		tags text[] NOT NULL DEFAULT '{}',
		technologies text[] NOT NULL DEFAULT '{}',
		owner_id uuid NOT NULL REFERENCES users (id),
		status text NOT NULL DEFAULT 'pending',
		average_rating double precision NOT NULL DEFAULT 0,
		ratings_count integer NOT NULL DEFAULT 0,
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_ideas_owner ON ideas (owner_id)`,
	`CREATE INDEX IF NOT EXISTS idx_ideas_status ON ideas (status)`,

	`CREATE TABLE IF NOT EXISTS idea_team_members (
		idea_id uuid NOT NULL REFERENCES ideas (id) ON DELETE CASCADE,
		user_id uuid NOT NULL REFERENCES users (id),
		PRIMARY KEY (idea_id, user_id)
	)`,

	`CREATE TABLE IF NOT EXISTS ratings (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		idea_id uuid NOT NULL REFERENCES ideas (id) ON DELETE CASCADE,
		user_id uuid NOT NULL REFERENCES users (id),
		rating integer NOT NULL CHECK (rating BETWEEN 1 AND 5),
		comment text,
		created_at timestamptz NOT NULL DEFAULT now(),
		CONSTRAINT idx_ratings_idea_user UNIQUE (idea_id, user_id)
	)`,

	`CREATE TABLE IF NOT EXISTS team_requests (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		idea_id uuid NOT NULL REFERENCES ideas (id) ON DELETE CASCADE,
		requester_id uuid NOT NULL REFERENCES users (id),
		status text NOT NULL DEFAULT 'pending',
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_team_requests_idea ON team_requests (idea_id)`,
	`CREATE INDEX IF NOT EXISTS idx_team_requests_requester ON team_requests (requester_id)`,

	`CREATE TABLE IF NOT EXISTS notifications (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id uuid NOT NULL REFERENCES users (id),
		message text NOT NULL,
		type text,
		read boolean NOT NULL DEFAULT false,
		created_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications (user_id)`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
