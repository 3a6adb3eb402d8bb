package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
)

// serialize produces the full binary image of the live database. SQLite
// has no incremental export through database/sql, so the image is built
// with VACUUM INTO against a scratch file that is removed afterwards.
func serialize(ctx context.Context, db *sql.DB) ([]byte, error) {
	scratch, err := os.CreateTemp("", "daybook-image-*.db")
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch file: %w", err)
	}
	path := scratch.Name()
	scratch.Close()
	// VACUUM INTO refuses to write over an existing file.
	os.Remove(path)
	defer os.Remove(path)

	if _, err := db.ExecContext(ctx, "VACUUM INTO ?", path); err != nil {
		return nil, fmt.Errorf("failed to serialize database: %w", err)
	}

	image, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read database image: %w", err)
	}
	return image, nil
}

// restore loads a previously serialized image into the live in-memory
// instance by attaching the image as a second database and copying the
// task rows across. A malformed image surfaces as a hard error; there
// is no valid fallback state.
func restore(ctx context.Context, db *sql.DB, image []byte) error {
	scratch, err := os.CreateTemp("", "daybook-image-*.db")
	if err != nil {
		return fmt.Errorf("failed to create scratch file: %w", err)
	}
	path := scratch.Name()
	defer os.Remove(path)

	if _, err := scratch.Write(image); err != nil {
		scratch.Close()
		return fmt.Errorf("failed to write database image: %w", err)
	}
	if err := scratch.Close(); err != nil {
		return fmt.Errorf("failed to close scratch file: %w", err)
	}

	if _, err := db.ExecContext(ctx, "ATTACH DATABASE ? AS snapshot", path); err != nil {
		return fmt.Errorf("failed to attach database image: %w", err)
	}

	copyErr := func() error {
		if err := createSchema(ctx, db); err != nil {
			return err
		}
		if _, err := db.ExecContext(ctx,
			`INSERT INTO task (id, name, complete, sortOrder, period, date)
			 SELECT id, name, complete, sortOrder, period, date FROM snapshot.task`,
		); err != nil {
			return fmt.Errorf("failed to load tasks from image: %w", err)
		}
		return nil
	}()

	if _, err := db.ExecContext(ctx, "DETACH DATABASE snapshot"); err != nil && copyErr == nil {
		return fmt.Errorf("failed to detach database image: %w", err)
	}
	return copyErr
}
