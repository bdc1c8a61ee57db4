package gateway

import (
	"fmt"
	"sort"
)

// Direction selects the ordering direction for a fetch.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Filter is a single equality predicate applied server-side.
type Filter struct {
	Field string
	Value any
}

// Query describes the read shape of a FetchCollection call: equality
// filters, one ordering key, and an optional result limit. The zero value
// selects everything in backend order.
type Query struct {
	Filters   []Filter
	OrderBy   string
	Direction Direction
	Limit     int
}

// Where appends an equality filter. The receiver is a value so queries can
// be built fluently without sharing state.
func (q Query) Where(field string, value any) Query {
	q.Filters = append(q.Filters[:len(q.Filters):len(q.Filters)], Filter{Field: field, Value: value})
	return q
}

// Order sets the ordering key and direction.
func (q Query) Order(field string, dir Direction) Query {
	q.OrderBy = field
	q.Direction = dir
	return q
}

// Take caps the number of returned records. Zero or negative means no limit.
func (q Query) Take(n int) Query {
	q.Limit = n
	return q
}

// Apply evaluates the query client-side over an already-loaded record set.
// Implementations without a server-side query engine (memory, local store)
// use it so all gateways expose identical semantics.
func (q Query) Apply(records []Record) []Record {
	matched := make([]Record, 0, len(records))
	for _, record := range records {
		if matchesFilters(record, q.Filters) {
			matched = append(matched, record)
		}
	}
	if q.OrderBy != "" {
		orderRecords(matched, q.OrderBy, q.Direction)
	}
	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}
	return matched
}

func matchesFilters(record Record, filters []Filter) bool {
	for _, filter := range filters {
		if !filterEqual(record, filter.Field, filter.Value) {
			return false
		}
	}
	return true
}

func filterEqual(record Record, field string, value any) bool {
	if field == "id" {
		return record.ID == fmt.Sprint(value)
	}
	stored, ok := record.Fields[field]
	if !ok {
		return false
	}
	return fmt.Sprint(stored) == fmt.Sprint(value)
}

func orderRecords(records []Record, field string, dir Direction) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i].Fields[field], records[j].Fields[field]
		if dir == Descending {
			return compareFieldValues(b, a)
		}
		return compareFieldValues(a, b)
	})
}

func compareFieldValues(a, b any) bool {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		return af < bf
	}
	return fmt.Sprint(a) < fmt.Sprint(b)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
