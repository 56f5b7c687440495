package client

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"

	"self-order-agent/internal/config"
	"self-order-agent/internal/model"
)

type bigQueryWarehouse struct {
	client    *bigquery.Client
	projectID string
	dataset   string
}

// NewBigQueryWarehouse opens a single BigQuery client for the process.
// Credentials come from the ambient GCP environment.
func NewBigQueryWarehouse(ctx context.Context, cfg *config.Warehouse) (Warehouse, error) {
	c, err := bigquery.NewClient(ctx, cfg.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("bigquery new client: %w", err)
	}
	c.Location = cfg.Region

	return &bigQueryWarehouse{
		client:    c,
		projectID: cfg.ProjectID,
		dataset:   cfg.Dataset,
	}, nil
}

func (w *bigQueryWarehouse) TableID(table string) string {
	return fmt.Sprintf("`%s.%s.%s`", w.projectID, w.dataset, table)
}

func (w *bigQueryWarehouse) Query(ctx context.Context, query string, params []QueryParam) ([]map[string]any, error) {
	q := w.client.Query(query)
	q.Parameters = make([]bigquery.QueryParameter, 0, len(params))
	for _, p := range params {
		q.Parameters = append(q.Parameters, bigquery.QueryParameter{Name: p.Name, Value: p.Value})
	}

	it, err := q.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("bigquery query: %w", err)
	}

	var rows []map[string]any
	for {
		var row map[string]bigquery.Value
		err := it.Next(&row)
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("bigquery read row: %w", err)
		}
		m := make(map[string]any, len(row))
		for k, v := range row {
			m[k] = v
		}
		rows = append(rows, m)
	}

	return rows, nil
}

func (w *bigQueryWarehouse) Insert(ctx context.Context, table string, rows any) error {
	ins := w.client.Dataset(w.dataset).Table(table).Inserter()

	err := ins.Put(ctx, rows)
	if err == nil {
		return nil
	}

	var pme bigquery.PutMultiError
	if errors.As(err, &pme) {
		rowErrs := make([]model.RowError, 0, len(pme))
		for _, rie := range pme {
			msgs := make([]string, 0, len(rie.Errors))
			for _, e := range rie.Errors {
				msgs = append(msgs, e.Error())
			}
			rowErrs = append(rowErrs, model.RowError{Index: rie.RowIndex, Messages: msgs})
		}
		return &InsertError{Rows: rowErrs}
	}

	return fmt.Errorf("bigquery insert: %w", err)
}
