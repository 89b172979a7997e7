package auth

import "github.com/JaimeStill/antique-feed/pkg/openapi"

type spec struct {
	SignUp         *openapi.Operation
	Login          *openapi.Operation
	Logout         *openapi.Operation
	GetProfile     *openapi.Operation
	UpdateProfile  *openapi.Operation
	FixAuthDomains *openapi.Operation
}

var Spec = spec{
	SignUp: &openapi.Operation{
		Summary:     "Sign up",
		Description: "Register a new account with email and password",
		RequestBody: openapi.RequestBodyJSON("Credentials", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Registered user", "Record"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Login: &openapi.Operation{
		Summary:     "Log in",
		Description: "Authenticate with email and password",
		RequestBody: openapi.RequestBodyJSON("Credentials", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Authenticated user", "Record"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Logout: &openapi.Operation{
		Summary:     "Log out",
		Description: "Revoke the session identified by the bearer token, if any",
		Parameters: []*openapi.Parameter{
			{Name: "Authorization", In: "header", Description: "Bearer access token", Schema: &openapi.Schema{Type: "string"}},
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Logged out", "Message"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	GetProfile: &openapi.Operation{
		Summary:     "Get profile",
		Description: "Find the profile belonging to a user",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "User ID"),
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Profile", "Record"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	UpdateProfile: &openapi.Operation{
		Summary:     "Update profile",
		Description: "Apply the body fields to the profile belonging to a user",
		Parameters: []*openapi.Parameter{
			openapi.PathParam("id", "User ID"),
		},
		RequestBody: openapi.RequestBodyObject("Profile fields to update"),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Updated profile", "Record"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	FixAuthDomains: &openapi.Operation{
		Summary:     "Fix auth domains",
		Description: "Reserved endpoint; currently performs no action",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Placeholder acknowledgement", "Message"),
		},
	},
}

func (spec) Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Credentials": {
			Type:     "object",
			Required: []string{"email", "password"},
			Properties: map[string]*openapi.Schema{
				"email":    {Type: "string", Format: "email"},
				"password": {Type: "string", Format: "password"},
			},
		},
	}
}
