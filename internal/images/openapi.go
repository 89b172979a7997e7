package images

import "github.com/JaimeStill/antique-feed/pkg/openapi"

type spec struct {
	Upload *openapi.Operation
}

var Spec = spec{
	Upload: &openapi.Operation{
		Summary:     "Upload image",
		Description: "Store a product image in the configured bucket",
		RequestBody: &openapi.RequestBody{
			Required: true,
			Content: map[string]*openapi.MediaType{
				"multipart/form-data": {
					Schema: &openapi.Schema{
						Type:     "object",
						Required: []string{"file"},
						Properties: map[string]*openapi.Schema{
							"file": {Type: "string", Format: "binary", Description: "Image file"},
						},
					},
				},
			},
		},
		Responses: map[int]*openapi.Response{
			200: {
				Description: "Image stored",
				Content: map[string]*openapi.MediaType{
					"application/json": {
						Schema: &openapi.Schema{
							Type: "object",
							Properties: map[string]*openapi.Schema{
								"message": {Type: "string"},
								"path":    {Type: "string"},
							},
						},
					},
				},
			},
			400: openapi.ResponseRef("BadRequest"),
			413: {Description: "Upload exceeds the configured size limit"},
		},
	},
}
