// Package testutil provides an in-memory stand-in for the Supabase REST API.
package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"content-gateway/pkg/clients/supabase"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// MemoryStore implements supabase.Client over in-process tables. Inserted rows
// get an increasing integer id and created_at, like serial/now() columns.
type MemoryStore struct {
	mu     sync.Mutex
	tables map[string][]map[string]interface{}
	seq    int64

	// Err, when set, is returned by every call
	Err error

	// Calls counts operations by name ("select", "insert", ...)
	Calls map[string]int
}

var _ supabase.Client = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		tables: make(map[string][]map[string]interface{}),
		Calls:  make(map[string]int),
	}
}

// Rows returns a copy of the rows currently in table
func (m *MemoryStore) Rows(table string) []map[string]interface{} {
	m.mu.Lock()
	defer m.mu.Unlock()

	rows := make([]map[string]interface{}, len(m.tables[table]))
	copy(rows, m.tables[table])
	return rows
}

func (m *MemoryStore) Select(ctx context.Context, table string, query supabase.Query, out interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.begin("select"); err != nil {
		return err
	}

	var rows []map[string]interface{}
	for _, row := range m.tables[table] {
		if matches(row, query.Filters) {
			rows = append(rows, project(row, query.Columns))
		}
	}

	if query.OrderBy != "" {
		sort.SliceStable(rows, func(i, j int) bool {
			a, b := fmt.Sprint(rows[i][query.OrderBy]), fmt.Sprint(rows[j][query.OrderBy])
			if query.Desc {
				return a > b
			}
			return a < b
		})
	}
	if rows == nil {
		rows = []map[string]interface{}{}
	}

	data, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

func (m *MemoryStore) Insert(ctx context.Context, table string, row interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.begin("insert"); err != nil {
		return err
	}

	r, err := toRow(row)
	if err != nil {
		return err
	}
	m.tables[table] = append(m.tables[table], m.assign(r))
	return nil
}

func (m *MemoryStore) Update(ctx context.Context, table string, filters []supabase.Filter, values interface{}) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.begin("update"); err != nil {
		return 0, err
	}

	v, err := toRow(values)
	if err != nil {
		return 0, err
	}

	n := 0
	for _, row := range m.tables[table] {
		if !matches(row, filters) {
			continue
		}
		for k, val := range v {
			row[k] = val
		}
		n++
	}
	return n, nil
}

func (m *MemoryStore) Upsert(ctx context.Context, table string, row interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.begin("upsert"); err != nil {
		return err
	}

	r, err := toRow(row)
	if err != nil {
		return err
	}

	if id, ok := r["id"]; ok {
		for i, existing := range m.tables[table] {
			if fmt.Sprint(existing["id"]) == fmt.Sprint(id) {
				for k, val := range r {
					existing[k] = val
				}
				m.tables[table][i] = existing
				return nil
			}
		}
	}
	m.tables[table] = append(m.tables[table], m.assign(r))
	return nil
}

func (m *MemoryStore) begin(op string) error {
	m.Calls[op]++
	return m.Err
}

func (m *MemoryStore) assign(row map[string]interface{}) map[string]interface{} {
	m.seq++
	if _, ok := row["id"]; !ok {
		row["id"] = m.seq
	}
	if _, ok := row["created_at"]; !ok {
		// Fixed-width timestamps keep string order equal to time order
		row["created_at"] = epoch.Add(time.Duration(m.seq) * time.Second).Format("2006-01-02T15:04:05.000000Z07:00")
	}
	return row
}

func toRow(v interface{}) (map[string]interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	row := map[string]interface{}{}
	if err := json.Unmarshal(data, &row); err != nil {
		return nil, err
	}
	return row, nil
}

func matches(row map[string]interface{}, filters []supabase.Filter) bool {
	for _, f := range filters {
		if fmt.Sprint(row[f.Column]) != f.Value {
			return false
		}
	}
	return true
}

func project(row map[string]interface{}, columns string) map[string]interface{} {
	if columns == "" || columns == "*" {
		out := make(map[string]interface{}, len(row))
		for k, v := range row {
			out[k] = v
		}
		return out
	}

	out := map[string]interface{}{}
	for _, col := range strings.Split(columns, ",") {
		col = strings.TrimSpace(col)
		if v, ok := row[col]; ok {
			out[col] = v
		}
	}
	return out
}
