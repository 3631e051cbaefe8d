package service

import (
	"bytes"
	"context"
	"encoding/csv"

	"github.com/mccmmj/cafe-inventory/internal/model"
	"github.com/mccmmj/cafe-inventory/internal/repository"
)

// ExportService renders sheets as CSV downloads. Column order is canonical
// per sheet so exports are diffable run to run.
type ExportService interface {
	InventoryCSV(ctx context.Context) ([]byte, error)
	ActivityLogCSV(ctx context.Context) ([]byte, error)
}

type exportService struct {
	inventory repository.InventoryRepository
	activity  repository.ActivityLogRepository
}

func NewExportService(inventory repository.InventoryRepository, activity repository.ActivityLogRepository) ExportService {
	return &exportService{inventory: inventory, activity: activity}
}

func (s *exportService) InventoryCSV(ctx context.Context) ([]byte, error) {
	items, err := s.inventory.List(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]map[string]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, it.ToRow())
	}
	return RenderCSV(model.InventoryColumns, rows)
}

func (s *exportService) ActivityLogCSV(ctx context.Context) ([]byte, error) {
	entries, err := s.activity.List(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]map[string]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, e.ToRow())
	}
	return RenderCSV(model.ActivityColumns, rows)
}

// RenderCSV writes a header row followed by one row per record, in header
// order. Fields containing commas, quotes or newlines are quoted with
// embedded quotes doubled (encoding/csv semantics).
func RenderCSV(headers []string, rows []map[string]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(headers); err != nil {
		return nil, err
	}
	record := make([]string, len(headers))
	for _, row := range rows {
		for i, h := range headers {
			record[i] = row[h]
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
