// cmd/ideabank/stats.go
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"text/tabwriter"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statsCmd)
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print platform counters",
	Long:  `stats reports account, idea, review and team-request counters straight from the database.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		pool := connectPool(ctx)
		defer pool.Close()

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		defer w.Flush()

		fmt.Fprintln(w, "users by role")
		printGrouped(ctx, pool, w, `SELECT role, COUNT(*) FROM users GROUP BY role ORDER BY role`)

		fmt.Fprintln(w, "ideas by status")
		printGrouped(ctx, pool, w, `SELECT status, COUNT(*) FROM ideas GROUP BY status ORDER BY status`)

		var pendingRequests, unread int64
		if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM team_requests WHERE status = 'pending'`).Scan(&pendingRequests); err != nil {
			log.Fatalf("counting pending team requests: %v", err)
		}
		if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE read = false`).Scan(&unread); err != nil {
			log.Fatalf("counting unread notifications: %v", err)
		}
		fmt.Fprintf(w, "pending team requests\t%d\n", pendingRequests)
		fmt.Fprintf(w, "unread notifications\t%d\n", unread)

		fmt.Fprintln(w, "top rated ideas")
		rows, err := pool.Query(ctx, `
			SELECT title, average_rating, ratings_count
			FROM ideas
			WHERE status = 'approved'
			ORDER BY average_rating DESC, created_at DESC
			LIMIT 5`)
		if err != nil {
			log.Fatalf("querying leaderboard: %v", err)
		}
		defer rows.Close()
		for rows.Next() {
			var title string
			var average float64
			var count int
			if err := rows.Scan(&title, &average, &count); err != nil {
				log.Fatalf("scanning leaderboard row: %v", err)
			}
			fmt.Fprintf(w, "  %s\t%.1f (%d)\n", title, average, count)
		}
		if err := rows.Err(); err != nil {
			log.Fatalf("reading leaderboard rows: %v", err)
		}
	},
}

func printGrouped(ctx context.Context, pool *pgxpool.Pool, w *tabwriter.Writer, query string) {
	rows, err := pool.Query(ctx, query)
	if err != nil {
		log.Fatalf("querying counters: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var label string
		var count int64
		if err := rows.Scan(&label, &count); err != nil {
			log.Fatalf("scanning counter row: %v", err)
		}
		fmt.Fprintf(w, "  %s\t%d\n", label, count)
	}
	if err := rows.Err(); err != nil {
		log.Fatalf("reading counter rows: %v", err)
	}
}

func connectPool(ctx context.Context) *pgxpool.Pool {
	if dbConnString == "" {
		dbConnString = os.Getenv("DATABASE_URL")
	}
	if dbConnString == "" {
		log.Fatal("no database connection string; pass --db or set DATABASE_URL")
	}

	pool, err := pgxpool.New(ctx, dbConnString)
	if err != nil {
		log.Fatalf("opening database pool: %v", err)
	}
	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("pinging database: %v", err)
	}
	return pool
}
