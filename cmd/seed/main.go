package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/cmlabs-hris/attendance-backend-go/internal/config"
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/attendance-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/attendance-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

// seed creates or refreshes the Admin and HR logins.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel()})))
	ctx := context.Background()

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		slog.Error("Failed to apply schema", "error", err)
		os.Exit(1)
	}

	accounts := postgresql.NewAccountRepository(db)
	seeds := []struct {
		username string
		password string
		name     string
		role     user.Role
	}{
		{cfg.Seed.AdminUsername, cfg.Seed.AdminPassword, "Administrator", user.RoleAdmin},
		{cfg.Seed.HRUsername, cfg.Seed.HRPassword, "HR Manager", user.RoleHR},
	}

	for _, seed := range seeds {
		if seed.password == "" {
			slog.Warn("Skipping account without password", "username", seed.username, "role", seed.role)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcrypt.DefaultCost)
		if err != nil {
			slog.Error("Failed to hash password", "username", seed.username, "error", err)
			os.Exit(1)
		}

		account, err := accounts.Upsert(ctx, user.Account{
			Username:     seed.username,
			Name:         seed.name,
			PasswordHash: string(hash),
			Role:         seed.role,
		})
		if err != nil {
			slog.Error("Failed to seed account", "username", seed.username, "error", err)
			os.Exit(1)
		}
		slog.Info("Account seeded", "id", account.ID, "username", account.Username, "role", account.Role)
	}
}
