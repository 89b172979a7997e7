package products

import (
	"github.com/JaimeStill/antique-feed/pkg/openapi"
	"github.com/JaimeStill/antique-feed/pkg/query"
)

type spec struct {
	Create       *openapi.Operation
	List         *openapi.Operation
	Reserve      *openapi.Operation
	UpdateStatus *openapi.Operation
}

var Spec = spec{
	Create: &openapi.Operation{
		Summary:     "Create product",
		RequestBody: openapi.RequestBodyObject("Product columns"),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Created product", "Record"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	List: &openapi.Operation{
		Summary:     "List products",
		Description: "Equality filters apply only when non-empty",
		Parameters: query.Params(
			openapi.QueryParam("id", "string", "Filter by product ID"),
			openapi.QueryParam("session_id", "string", "Filter by live session"),
			openapi.QueryParam("seller_id", "string", "Filter by seller"),
			openapi.QueryParam("status", "string", "Filter by status"),
		),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseArray("Products", "Record"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Reserve: &openapi.Operation{
		Summary:     "Reserve product",
		Description: "Invokes reserve_product and returns its result",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Product ID"),
		},
		Responses: map[int]*openapi.Response{
			200: {Description: "Procedure result"},
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	UpdateStatus: &openapi.Operation{
		Summary:     "Update product status",
		Description: "Invokes update_product_status and returns its result",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Product ID"),
		},
		RequestBody: openapi.RequestBodyJSON("ProductStatus", true),
		Responses: map[int]*openapi.Response{
			200: {Description: "Procedure result"},
			400: openapi.ResponseRef("BadRequest"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"ProductStatus": {
			Type:     "object",
			Required: []string{"status"},
			Properties: map[string]*openapi.Schema{
				"status": {Type: "string", Example: "sold"},
			},
		},
	}
}
