package openapi

var anyProperties = true

// NewComponents creates the shared schemas and responses every resource references.
func NewComponents() *Components {
	return &Components{
		Schemas: map[string]*Schema{
			"Record": {
				Type:                 "object",
				Description:          "Platform row forwarded verbatim",
				AdditionalProperties: &anyProperties,
			},
			"Error": {
				Type:     "object",
				Required: []string{"error"},
				Properties: map[string]*Schema{
					"error": {Type: "string", Description: "Error message"},
				},
			},
			"Message": {
				Type:     "object",
				Required: []string{"message"},
				Properties: map[string]*Schema{
					"message": {Type: "string"},
				},
			},
		},
		Responses: map[string]*Response{
			"BadRequest": {
				Description: "Invalid request or platform error",
				Content:     jsonContent(SchemaRef("Error")),
			},
			"NotFound": {
				Description: "Resource not found",
				Content:     jsonContent(SchemaRef("Message")),
			},
		},
	}
}

// AddSchemas merges schemas into the component set, replacing existing names.
func (c *Components) AddSchemas(schemas map[string]*Schema) {
	for name, schema := range schemas {
		c.Schemas[name] = schema
	}
}
