package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/shui00cc/watchlist/internal/auth"
	"github.com/shui00cc/watchlist/internal/command"
	"github.com/shui00cc/watchlist/internal/config"
	"github.com/shui00cc/watchlist/internal/database"
	"github.com/shui00cc/watchlist/internal/handler"
	"github.com/shui00cc/watchlist/internal/repository"
)

func main() {
	commandFlag := flag.String("command", "start", "Command to run: start, initdb, admin, forge")
	usernameFlag := flag.String("username", "", "Admin username (admin command)")
	passwordFlag := flag.String("password", "", "Admin password (admin command)")
	dropFlag := flag.Bool("drop", false, "Drop existing tables first (initdb command)")
	flag.Parse()

	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Printf("init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.Open(cfg.DBPath)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	defer db.Close()

	switch *commandFlag {
	case "start":
		if err := database.Migrate(db, false); err != nil {
			logger.Fatal("migrate", zap.Error(err))
		}

		sessions := auth.NewManager(cfg.SessionKey, repository.NewUserRepository(db))
		router := handler.NewRouter(db, sessions, logger)

		logger.Info("server listening", zap.String("port", cfg.Port))
		if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
	case "initdb":
		if err := command.InitDB(db, *dropFlag); err != nil {
			logger.Fatal("initdb", zap.Error(err))
		}
		fmt.Println("Initialized database.")
	case "admin":
		if err := command.Admin(db, *usernameFlag, *passwordFlag); err != nil {
			logger.Fatal("admin", zap.Error(err))
		}
		fmt.Println("Done.")
	case "forge":
		if err := command.Forge(db); err != nil {
			logger.Fatal("forge", zap.Error(err))
		}
		fmt.Println("Done.")
	default:
		fmt.Printf("unknown command %q\n", *commandFlag)
		os.Exit(1)
	}
}
