package queue

import (
	"database/sql"
	"errors"
	"time"
)

const itemColumns = "id, source_path, brand, model, status, output_path, button_count, attempts, error_message, created_at, updated_at"

func scanItem(scanner interface{ Scan(dest ...any) error }) (*Item, error) {
	var (
		id           int64
		sourcePath   string
		brand        sql.NullString
		model        sql.NullString
		statusStr    string
		outputPath   sql.NullString
		buttonCount  int
		attempts     int
		errorMessage sql.NullString
		createdRaw   string
		updatedRaw   string
	)

	if err := scanner.Scan(
		&id,
		&sourcePath,
		&brand,
		&model,
		&statusStr,
		&outputPath,
		&buttonCount,
		&attempts,
		&errorMessage,
		&createdRaw,
		&updatedRaw,
	); err != nil {
		return nil, err
	}

	item := &Item{
		ID:           id,
		SourcePath:   sourcePath,
		Brand:        brand.String,
		Model:        model.String,
		Status:       Status(statusStr),
		OutputPath:   outputPath.String,
		ButtonCount:  buttonCount,
		Attempts:     attempts,
		ErrorMessage: errorMessage.String,
	}

	if created, err := parseTimeString(createdRaw); err == nil {
		item.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw); err == nil {
		item.UpdatedAt = updated
	}
	return item, nil
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}
