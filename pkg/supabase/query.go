package supabase

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Record is an opaque JSON object forwarded verbatim to and from the platform.
type Record = map[string]any

type filter struct {
	column string
	op     string
	value  string
}

type order struct {
	column    string
	ascending bool
}

// Query describes a PostgREST table query. It carries no connection;
// pass it to a Database to execute it.
type Query struct {
	table   string
	columns string
	filters []filter
	orders  []order
	limit   int
}

// From starts a query against table selecting all columns.
func From(table string) *Query {
	return &Query{table: table, columns: "*"}
}

// Table returns the queried table name.
func (q *Query) Table() string {
	return q.table
}

// Select sets the column list.
func (q *Query) Select(columns string) *Query {
	q.columns = columns
	return q
}

// Eq adds an equality filter.
func (q *Query) Eq(column string, value any) *Query {
	q.filters = append(q.filters, filter{column: column, op: "eq", value: fmt.Sprint(value)})
	return q
}

// WhereEq adds an equality filter when value is set. Nil or empty values are ignored.
func (q *Query) WhereEq(column string, value *string) *Query {
	if value == nil || *value == "" {
		return q
	}
	return q.Eq(column, *value)
}

// Order adds an ordering clause.
func (q *Query) Order(column string, ascending bool) *Query {
	q.orders = append(q.orders, order{column: column, ascending: ascending})
	return q
}

// Limit caps the number of returned rows. Values below one clear the limit.
func (q *Query) Limit(n int) *Query {
	if n < 1 {
		n = 0
	}
	q.limit = n
	return q
}

// Encode returns the PostgREST query parameters for a read.
func (q *Query) Encode() url.Values {
	params := q.filterValues()
	if q.columns != "" {
		params.Set("select", q.columns)
	}
	if len(q.orders) > 0 {
		parts := make([]string, len(q.orders))
		for i, o := range q.orders {
			dir := "asc"
			if !o.ascending {
				dir = "desc"
			}
			parts[i] = o.column + "." + dir
		}
		params.Set("order", strings.Join(parts, ","))
	}
	if q.limit > 0 {
		params.Set("limit", strconv.Itoa(q.limit))
	}
	return params
}

func (q *Query) filterValues() url.Values {
	params := url.Values{}
	for _, f := range q.filters {
		params.Add(f.column, f.op+"."+f.value)
	}
	return params
}
