package network

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Runs against a real Postgres when TEST_DATABASE_URL is set.
func TestSQLSourceRoundTrip(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := sql.Open("pgx", url)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := InitSchema(ctx, db); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	builtin := MustBuiltin()
	if err := SeedNetwork(ctx, db, builtin); err != nil {
		t.Fatalf("seed: %v", err)
	}

	loaded, err := NewSQLSource(db).LoadNetwork(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Fingerprint() != builtin.Fingerprint() {
		t.Fatal("loaded network differs from seeded network")
	}
}

func TestSQLSourceNilDB(t *testing.T) {
	if _, err := NewSQLSource(nil).LoadNetwork(context.Background()); err == nil {
		t.Fatal("expected error, got nil")
	}
}
