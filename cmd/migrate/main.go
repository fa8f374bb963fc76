// Command migrate applies migrations/*.sql to a Cloud Spanner database, in file
// name order, as one UpdateDatabaseDdl operation.
//
// Against the emulator:
//
//	export SPANNER_EMULATOR_HOST=localhost:9010
//	export SPANNER_DATABASE=projects/test-project/instances/emulator-instance/databases/test-db
//	go run ./cmd/migrate
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	databasepb "cloud.google.com/go/spanner/admin/database/apiv1/databasepb"
	"go.uber.org/zap"

	"github.com/murkotick/course-catalog-service/internal/pkg/logging"
)

func main() {
	logger, err := logging.New(true, "info")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db := os.Getenv("SPANNER_DATABASE")
	dir := os.Getenv("MIGRATIONS_DIR")
	if dir == "" {
		dir = "migrations"
	}

	if err := migrate(ctx, db, dir, logger); err != nil {
		logger.Fatal("migration failed", zap.String("database", db), zap.Error(err))
	}
}

func migrate(ctx context.Context, db, dir string, logger *zap.Logger) error {
	if db == "" {
		return fmt.Errorf("SPANNER_DATABASE is required (e.g. projects/test-project/instances/emulator-instance/databases/test-db)")
	}

	stmts, err := loadMigrations(dir)
	if err != nil {
		return err
	}
	if len(stmts) == 0 {
		return fmt.Errorf("no DDL statements in %s", dir)
	}

	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		return fmt.Errorf("database admin client: %w", err)
	}
	defer admin.Close()

	op, err := admin.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
		Database:   db,
		Statements: stmts,
	})
	if err != nil {
		return fmt.Errorf("update ddl: %w", err)
	}
	if err := op.Wait(ctx); err != nil {
		return fmt.Errorf("update ddl wait: %w", err)
	}

	logger.Info("schema applied", zap.String("database", db), zap.Int("statements", len(stmts)))
	return nil
}

// loadMigrations reads every .sql file in dir, sorted by name, into one statement list.
func loadMigrations(dir string) ([]string, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return nil, err
	}
	slices.Sort(files)

	var stmts []string
	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f, err)
		}
		stmts = append(stmts, splitDDL(string(b))...)
	}
	return stmts, nil
}

// splitDDL splits a script on ';', dropping "--" comment lines and blanks.
func splitDDL(sql string) []string {
	var b strings.Builder
	for _, line := range strings.Split(strings.ReplaceAll(sql, "\r\n", "\n"), "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	var out []string
	for _, part := range strings.Split(b.String(), ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}
