package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

// Steps are idempotent: tables are only ever created, never dropped or altered.
var steps = []migrationStep{
	{
		Name: "create_table_file_metadata",
		SQL: `CREATE TABLE IF NOT EXISTS file_metadata (
  id          BIGSERIAL   PRIMARY KEY,
  filename    VARCHAR(255) NOT NULL,
  filesize    BIGINT      NOT NULL CHECK (filesize >= 0),
  filetype    VARCHAR(50) NOT NULL,
  upload_date TIMESTAMPTZ NOT NULL DEFAULT now()
);`,
	},
	{
		Name: "create_index_file_metadata_filename",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_file_metadata_filename ON file_metadata (filename);`,
	},
	{
		Name: "create_table_test_table",
		SQL: `CREATE TABLE IF NOT EXISTS test_table (
  id   BIGSERIAL   PRIMARY KEY,
  name VARCHAR(50) NOT NULL
);`,
	},
}

// EnsureMigrated runs every schema step. The steps are individually
// idempotent, so the whole set executes on each startup: a table that was
// never created (for example after an earlier partial failure that bootstrap
// logged and ignored) is repaired on the next run. Callers decide whether a
// returned error is fatal; by default bootstrap logs it and continues.
func EnsureMigrated(ctx context.Context, db *sql.DB, dbHost string) error {
	start := time.Now()

	logJSON(map[string]any{
		"component": "database",
		"event":     "db_migration_start",
		"status":    "starting",
		"db_host":   dbHost,
	})

	for _, step := range steps {
		stepStart := time.Now()
		_, err := db.ExecContext(ctx, step.SQL)
		if err != nil {
			logJSON(map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	logJSON(map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(data map[string]any) {
	data["ts"] = time.Now().UTC().Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.Println(string(b))
}
