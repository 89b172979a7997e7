package messages

import (
	"github.com/JaimeStill/antique-feed/pkg/openapi"
	"github.com/JaimeStill/antique-feed/pkg/query"
)

type spec struct {
	List *openapi.Operation
	Send *openapi.Operation
}

var Spec = spec{
	List: &openapi.Operation{
		Summary: "List session messages",
		Parameters: query.Params(
			openapi.PathParam("session_id", "Live session ID"),
		),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseArray("Messages", "Record"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Send: &openapi.Operation{
		Summary:     "Send message",
		RequestBody: openapi.RequestBodyObject("Message columns"),
		Responses: map[int]*openapi.Response{
			201: openapi.ResponseJSON("Created message", "Record"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
}
