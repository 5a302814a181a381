// Seeder inserts the exercise catalog. Running it again only adds
// exercises that are missing.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/2beens/gymsplit/internal/config"
	"github.com/2beens/gymsplit/internal/db"
	"github.com/2beens/gymsplit/internal/exercises"
	"github.com/2beens/gymsplit/internal/logging"

	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	migrate := flag.Bool("migrate", true, "run db migrations before seeding")
	flag.Parse()

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogToStdout: true,
		LogLevel:    cfg.LogLevel,
	})

	poolParams := db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBUser:     cfg.PostgresUser,
		DBPassword: os.Getenv("GYMSPLIT_POSTGRES_PASSWORD"),
	}

	if *migrate {
		if err := db.RunMigrations(db.ConnString(poolParams)); err != nil {
			log.Fatalf("run migrations: %s", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	dbPool, err := db.NewDBPool(ctx, poolParams)
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	catalog := exercises.Catalog()
	inserted, err := exercises.NewRepo(dbPool).Seed(ctx, catalog)
	if err != nil {
		log.Fatalf("seed exercises: %s", err)
	}

	log.Infof("seeded %d new exercises (%d in catalog)", inserted, len(catalog))
}
