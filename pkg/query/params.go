package query

import "github.com/JaimeStill/antique-feed/pkg/openapi"

// Params documents the list options read by OptionsFromQuery.
func Params(filters ...*openapi.Parameter) []*openapi.Parameter {
	return append(filters,
		openapi.QueryParam("order_by", "string", "Column to order by"),
		&openapi.Parameter{
			Name:   "order_direction",
			In:     "query",
			Schema: &openapi.Schema{Type: "string", Enum: []string{"asc", "desc"}},
		},
		openapi.QueryParam("limit", "integer", "Maximum rows returned"),
	)
}
