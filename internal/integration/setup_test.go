package integration

import (
	"context"
	"os"
	"testing"

	"language_connect/internal/domain"
	"language_connect/internal/migrations"
	"language_connect/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

func connect(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set")
	}

	if err := migrations.Up(dsn); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	db, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(db.Close)
	return db
}

func register(t *testing.T, db *pgxpool.Pool, name string) *domain.User {
	t.Helper()
	u, err := service.NewUserService(db).Register(context.Background(), domain.NewUser{
		Email:            name + "-" + uuid.NewString() + "@example.com",
		Name:             name,
		NativeLanguage:   "Russian",
		LearningLanguage: "English",
		Country:          "Russia",
	})
	if err != nil {
		t.Fatalf("register %s: %v", name, err)
	}
	return u
}

func setCoins(t *testing.T, db *pgxpool.Pool, userID, coins int64) {
	t.Helper()
	if _, err := db.Exec(context.Background(), `UPDATE users SET coins = $1 WHERE id = $2`, coins, userID); err != nil {
		t.Fatalf("set coins: %v", err)
	}
}
