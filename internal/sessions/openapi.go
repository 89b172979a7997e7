package sessions

import (
	"github.com/JaimeStill/antique-feed/pkg/openapi"
	"github.com/JaimeStill/antique-feed/pkg/query"
)

type spec struct {
	Create *openapi.Operation
	List   *openapi.Operation
	End    *openapi.Operation
}

var Spec = spec{
	Create: &openapi.Operation{
		Summary:     "Create live session",
		RequestBody: openapi.RequestBodyObject("Live session columns"),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Created live session", "Record"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	List: &openapi.Operation{
		Summary:     "List live sessions",
		Description: "Equality filters apply only when non-empty",
		Parameters: query.Params(
			openapi.QueryParam("id", "string", "Filter by session ID"),
			openapi.QueryParam("status", "string", "Filter by status"),
			openapi.QueryParam("seller_id", "string", "Filter by seller"),
		),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseArray("Live sessions", "Record"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	End: &openapi.Operation{
		Summary:     "End live session",
		Description: "Invokes end_live_session and returns its result",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "Session ID"),
		},
		Responses: map[int]*openapi.Response{
			200: {Description: "Procedure result"},
			400: openapi.ResponseRef("BadRequest"),
		},
	},
}
