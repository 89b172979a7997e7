package openapi

const mediaJSON = "application/json"

func ref(section, name string) string {
	return "#/components/" + section + "/" + name
}

func jsonContent(s *Schema) map[string]*MediaType {
	return map[string]*MediaType{mediaJSON: {Schema: s}}
}

// SchemaRef points at a named schema in components.
func SchemaRef(name string) *Schema {
	return &Schema{Ref: ref("schemas", name)}
}

// ResponseRef points at a named response in components.
func ResponseRef(name string) *Response {
	return &Response{Ref: ref("responses", name)}
}

// RequestBodyJSON declares a JSON body shaped by the named schema.
func RequestBodyJSON(schemaName string, required bool) *RequestBody {
	return &RequestBody{
		Required: required,
		Content:  jsonContent(SchemaRef(schemaName)),
	}
}

// RequestBodyObject declares a required JSON object body forwarded as a Record.
func RequestBodyObject(description string) *RequestBody {
	body := RequestBodyJSON("Record", true)
	body.Description = description
	return body
}

func ResponseJSON(description, schemaName string) *Response {
	return &Response{
		Description: description,
		Content:     jsonContent(SchemaRef(schemaName)),
	}
}

func ResponseArray(description, schemaName string) *Response {
	return &Response{
		Description: description,
		Content:     jsonContent(&Schema{Type: "array", Items: SchemaRef(schemaName)}),
	}
}

// PathParam declares a required path segment. Identifiers are forwarded
// to the platform as strings.
func PathParam(name, description string) *Parameter {
	return &Parameter{
		Name:        name,
		In:          "path",
		Required:    true,
		Description: description,
		Schema:      &Schema{Type: "string"},
	}
}

// QueryParam declares an optional query string parameter of type typ.
func QueryParam(name, typ, description string) *Parameter {
	return &Parameter{
		Name:        name,
		In:          "query",
		Description: description,
		Schema:      &Schema{Type: typ},
	}
}
