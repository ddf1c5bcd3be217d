package main

import (
	"context"
	"log"
	"time"

	"mentor-match/internal/app"
	"mentor-match/internal/config"
	"mentor-match/internal/database/migration"
	"mentor-match/internal/database/seeder"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	c, err := app.NewContainer(cfg)
	if err != nil {
		log.Fatalf("failed to init container: %v", err)
	}
	defer func() {
		_ = c.Close()
	}()

	migCtx, migCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer migCancel()
	r := migration.Runner{Dir: cfg.App.MigrationsDir}
	if err := r.Run(migCtx, c.DB.SQLDB()); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	run := seeder.Runner{Seeders: seeder.Defaults()}
	if err := run.Run(ctx, c.DB); err != nil {
		log.Fatalf("seed failed: %v", err)
	}

	log.Printf("seed complete | mentor=mentor@test.com mentee=mentee@test.com")
}
