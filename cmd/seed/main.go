// Command seed initialises a booking database for development.
//
// Usage:
//
//	go run ./cmd/seed              # create schema only
//	go run ./cmd/seed -seed       # include sample users and books
//	go run ./cmd/seed -reset      # drop the existing database file first
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/khlug/booking/internal/booking/domain"
	"github.com/khlug/booking/internal/booking/store"
	"github.com/khlug/booking/internal/booking/store/drivers/sqlite"
)

func main() {
	var (
		dbFile = flag.String("db", envOrDefault("BOOKING_DATABASE_FILE", "booking.db"), "path to the SQLite database file")
		seed   = flag.Bool("seed", false, "insert sample users and books")
		reset  = flag.Bool("reset", false, "delete the existing database file first")
	)
	flag.Parse()

	if *reset {
		if err := os.Remove(*dbFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Fatalf("failed to remove %s: %v", *dbFile, err)
		}
	}

	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", *dbFile)
	st, err := sqlite.NewStore(host)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer st.Close()

	if err := st.ApplyMigrations(); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}
	log.Printf("database initialised: %s", *dbFile)

	if !*seed {
		return
	}

	if err := seedData(context.Background(), st); err != nil {
		log.Fatalf("failed to seed data: %v", err)
	}
	log.Print("sample data inserted")
}

func seedData(ctx context.Context, st store.Store) error {
	users := []domain.User{
		{ID: "admin", Name: "관리자", Email: "admin@khlug.org", Role: domain.RoleManager},
		{ID: "user1", Name: "홍길동", Email: "hong@khlug.org", Role: domain.RoleMember},
		{ID: "user2", Name: "김철수", Email: "kim@khlug.org", Role: domain.RoleMember},
	}
	for _, u := range users {
		if err := st.Users().CreateUser(ctx, u); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				continue
			}
			return fmt.Errorf("create user %s: %w", u.ID, err)
		}
	}

	books := []struct {
		book  domain.Book
		total int
	}{
		{domain.Book{ISBN: "9788966262472", Title: "러스트 프로그래밍", Author: "스티브 클라브닉", Publisher: "제이펍", PublishedYear: 2023, Language: "ko", Pages: 520}, 2},
		{domain.Book{ISBN: "9788968482519", Title: "클린 코드", Author: "로버트 C. 마틴", Publisher: "인사이트", PublishedYear: 2013, Language: "ko", Pages: 584}, 1},
		{domain.Book{ISBN: "9788966261178", Title: "자바스크립트 완벽 가이드", Author: "데이비드 플래너건", Publisher: "인사이트", PublishedYear: 2022, Language: "ko", Pages: 1256}, 1},
		{domain.Book{ISBN: "9791162241882", Title: "파이썬 알고리즘 인터뷰", Author: "박상길", Publisher: "책만", PublishedYear: 2020, Language: "ko", Pages: 656}, 3},
	}
	for _, b := range books {
		if err := st.Books().CreateBook(ctx, b.book, b.total); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				continue
			}
			return fmt.Errorf("create book %s: %w", b.book.ISBN, err)
		}
	}

	return nil
}

func envOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
