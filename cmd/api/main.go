package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ccx-marketplace/application"
	"ccx-marketplace/auth"
	"ccx-marketplace/config"
	"ccx-marketplace/handler"
	"ccx-marketplace/migrations"
	"ccx-marketplace/repository"
	"ccx-marketplace/service"
	"ccx-marketplace/util/clock"
	"ccx-marketplace/util/logger"
	"ccx-marketplace/util/storage/sqldb/transactor"

	"github.com/gofiber/fiber/v3"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

const startupTimeout = 10 * time.Second

func main() {
	closeLog, err := logger.Init()
	if err != nil {
		panic(err.Error())
	}
	defer closeLog()

	if err := godotenv.Load(); err != nil {
		logger.Log().Info("No .env file found, using environment variables")
	}

	config, err := config.Load()
	if err != nil {
		log.Panic(err)
	}

	startupCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	db, err := sqlx.ConnectContext(startupCtx, "postgres", config.DSN)
	if err != nil {
		logger.Log().Fatal("Error connecting to database: " + err.Error())
	}
	defer db.Close()

	if err := migrations.Apply(startupCtx, db); err != nil {
		logger.Log().Fatal("Error applying migrations: " + err.Error())
	}
	if err := migrations.SeedIfEmpty(startupCtx, db, config.SeedFile); err != nil {
		logger.Log().Fatal("Error seeding catalog: " + err.Error())
	}

	trans, dbCtx := transactor.New(db)

	creditRepo := repository.NewCreditRepository(dbCtx)
	txRepo := repository.NewTransactionRepository(dbCtx)

	creditSvc := service.NewCreditService(creditRepo)
	purchaseSvc := service.NewPurchaseService(trans, creditRepo, txRepo, clock.NewSystem())
	txSvc := service.NewTransactionService(txRepo, creditRepo)

	tokenStore := auth.NewTokenStore(map[string]auth.Identity{
		config.PublicToken: {Role: auth.RolePublic, SubjectID: "public_user"},
		config.BuyerToken:  {Role: auth.RoleBuyer, SubjectID: "buyer_001"},
		config.AdminToken:  {Role: auth.RoleAdmin, SubjectID: "admin_001"},
	})

	app := application.New(*config)
	registerRoutes(app.Group("/api"), tokenStore, creditSvc, purchaseSvc, txSvc)
	app.Run()

	// Wait for a shutdown signal.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Log().Info("Shutting down...")

	app.Shutdown()

	logger.Log().Info("Shutdown complete.")
}

func registerRoutes(r fiber.Router, store *auth.TokenStore, creditSvc *service.CreditService, purchaseSvc *service.PurchaseService, txSvc *service.TransactionService) {
	handler.RegisterRoutes(r, store,
		handler.NewCreditHandler(creditSvc),
		handler.NewPurchaseHandler(purchaseSvc),
		handler.NewTransactionHandler(txSvc),
	)
}
