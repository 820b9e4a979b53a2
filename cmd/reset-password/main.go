package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go-inventory-rfid/internal/config"
	"go-inventory-rfid/internal/model"
	"go-inventory-rfid/internal/repository"
	"go-inventory-rfid/pkg/database"
	"go-inventory-rfid/pkg/logger"

	"github.com/sirupsen/logrus"
)

func main() {
	username := flag.String("username", "", "account to reset")
	password := flag.String("password", "", "new password (min 6 characters)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Invalid configuration")
	}
	log := logger.Setup(cfg.Log.Level, cfg.Log.Format)

	if *username == "" || len(*password) < 6 {
		flag.Usage()
		os.Exit(2)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	resetErr := resetPassword(context.Background(), repository.NewUserRepo(db), *username, *password)
	if err := database.Close(db); err != nil {
		log.WithError(err).Warn("Failed to close database")
	}
	if resetErr != nil {
		log.WithError(resetErr).WithField("username", *username).Error("Password reset failed")
		os.Exit(1)
	}

	log.WithField("username", *username).Info("Password reset")
}

func resetPassword(ctx context.Context, users repository.UserRepository, username, password string) error {
	user, err := users.FindByUsername(ctx, username)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}

	var hashed model.User
	if err := hashed.SetPassword(password); err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := users.UpdatePassword(ctx, user.UserID, hashed.Password); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}
