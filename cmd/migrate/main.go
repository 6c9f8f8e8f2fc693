// Command migrate applies or rolls back the embedded database migrations.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/dropDatabas3/littlejohn/internal/config"
	migrations "github.com/dropDatabas3/littlejohn/migrations/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to YAML config")
	flag.Parse()

	// Positional arg: [action], default "up".
	action := "up"
	if args := flag.Args(); len(args) >= 1 && args[0] != "" {
		action = strings.ToLower(args[0])
	}

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config load: %v", err)
	}

	db, err := sql.Open("pgx", cfg.Storage.DSN)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("pgx"); err != nil {
		log.Fatalf("goose dialect: %v", err)
	}

	ctx := context.Background()
	switch action {
	case "up":
		err = goose.UpContext(ctx, db, migrations.Dir)
	case "down":
		err = goose.DownContext(ctx, db, migrations.Dir)
	case "status":
		err = goose.StatusContext(ctx, db, migrations.Dir)
	default:
		fmt.Fprintf(os.Stderr, "unknown action %q (want up|down|status)\n", action)
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("migrate %s: %v", action, err)
	}
}
