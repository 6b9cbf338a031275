package api

import (
	"github.com/regulaai/regula/internal/config"
	"github.com/regulaai/regula/pkg/openapi"
)

func buildSpec(cfg *config.Config) *openapi.Spec {
	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.SetDescription(cfg.API.OpenAPI.Description)
	spec.AddServer(cfg.API.BasePath)

	spec.Components.AddSchemas(map[string]*openapi.Schema{
		"LoginRequest": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"username": {Type: "string"},
				"password": {Type: "string"},
			},
			Required: []string{"username", "password"},
		},
		"ContractSummary": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"filename":   {Type: "string"},
				"pages":      {Type: "integer"},
				"characters": {Type: "integer"},
			},
		},
		"Finding": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"clause":  {Type: "string", Example: "Termination"},
				"present": {Type: "boolean"},
				"detail":  {Type: "string", Example: "Termination clause present"},
			},
		},
		"Dashboard": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"score":    {Type: "integer", Description: "Sum of triggered rule weights"},
				"safe":     {Type: "integer", Description: "Remainder of the 100-point scale"},
				"findings": {Type: "array", Items: openapi.SchemaRef("Finding")},
			},
		},
		"SendRequest": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"recipient": {Type: "string", Format: "email"},
			},
			Required: []string{"recipient"},
		},
		"ChatRequest": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"question": {Type: "string"},
			},
			Required: []string{"question"},
		},
		"Exchange": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"question": {Type: "string"},
				"answer":   {Type: "string"},
				"asked_at": {Type: "string", Format: "date-time"},
			},
		},
		"ImprovedContract": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"improved": {Type: "string", Description: "Rewritten contract text, empty until improve has run"},
			},
		},
	})

	spec.Paths["/auth/login"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Authenticate with the configured credential pair",
			Tags:        []string{"auth"},
			RequestBody: openapi.RequestBodyJSON("LoginRequest", true),
			Responses: map[int]*openapi.Response{
				200: {Description: "Session cookie issued"},
				401: openapi.ResponseRef("Unauthorized"),
			},
		},
	}

	spec.Paths["/auth/logout"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary: "Revoke the current session",
			Tags:    []string{"auth"},
			Responses: map[int]*openapi.Response{
				200: {Description: "Session revoked and cookie cleared"},
			},
		},
	}

	spec.Paths["/contracts"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Upload a contract PDF",
			Description: "Extracts plain text page by page and replaces the session's contract.",
			Tags:        []string{"contracts"},
			Responses: map[int]*openapi.Response{
				201: openapi.ResponseJSON("Contract extracted and stored", "ContractSummary"),
				400: openapi.ResponseRef("BadRequest"),
				401: openapi.ResponseRef("Unauthorized"),
			},
		},
	}

	spec.Paths["/contracts/current"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Summarize the session's loaded contract",
			Tags:    []string{"contracts"},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Current contract summary", "ContractSummary"),
				401: openapi.ResponseRef("Unauthorized"),
			},
		},
	}

	spec.Paths["/analysis"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Score the session's contract against the clause rule table",
			Tags:    []string{"analysis"},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Risk dashboard payload", "Dashboard"),
				401: openapi.ResponseRef("Unauthorized"),
				409: openapi.ResponseRef("Conflict"),
			},
		},
	}

	spec.Paths["/analysis/report"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Download the compliance report PDF",
			Tags:    []string{"analysis"},
			Responses: map[int]*openapi.Response{
				200: {Description: "PDF attachment"},
				401: openapi.ResponseRef("Unauthorized"),
				409: openapi.ResponseRef("Conflict"),
			},
		},
	}

	spec.Paths["/analysis/report/send"] = &openapi.PathItem{
		Post: &openapi.Operation{
			Summary:     "Email the compliance report",
			Tags:        []string{"analysis"},
			RequestBody: openapi.RequestBodyJSON("SendRequest", true),
			Responses: map[int]*openapi.Response{
				200: {Description: "Report transmitted"},
				400: openapi.ResponseRef("BadRequest"),
				401: openapi.ResponseRef("Unauthorized"),
				409: openapi.ResponseRef("Conflict"),
				502: openapi.ResponseRef("BadGateway"),
			},
		},
	}

	spec.Paths["/assistant/chat"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "List the session's chat history, newest first",
			Tags:    []string{"assistant"},
			Responses: map[int]*openapi.Response{
				200: {
					Description: "Chat history",
					Content: map[string]*openapi.MediaType{
						"application/json": {Schema: &openapi.Schema{
							Type:  "array",
							Items: openapi.SchemaRef("Exchange"),
						}},
					},
				},
				401: openapi.ResponseRef("Unauthorized"),
			},
		},
		Post: &openapi.Operation{
			Summary:     "Ask a question about the session's contract",
			Tags:        []string{"assistant"},
			RequestBody: openapi.RequestBodyJSON("ChatRequest", true),
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("The completed exchange", "Exchange"),
				400: openapi.ResponseRef("BadRequest"),
				401: openapi.ResponseRef("Unauthorized"),
				502: openapi.ResponseRef("BadGateway"),
			},
		},
	}

	spec.Paths["/assistant/improve"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary: "Fetch the session's last improved contract text",
			Tags:    []string{"assistant"},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Improved contract text", "ImprovedContract"),
				401: openapi.ResponseRef("Unauthorized"),
			},
		},
		Post: &openapi.Operation{
			Summary:     "Generate an improved, compliant version of the contract",
			Tags:        []string{"assistant"},
			Responses: map[int]*openapi.Response{
				200: openapi.ResponseJSON("Improved text stored on the session", "ImprovedContract"),
				401: openapi.ResponseRef("Unauthorized"),
				502: openapi.ResponseRef("BadGateway"),
			},
		},
	}

	return spec
}
