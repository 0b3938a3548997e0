// Package docs holds the Swagger document served under /swagger/ when the
// binary is built with -tags=swagger. Regenerate with
// `swag init -g cmd/houseprice/docs.go -o docs` after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "houseprice maintainers"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/estimate": {
            "get": {
                "description": "Missing parameters fall back to the dashboard defaults. With Accept: text/html the price card fragment is returned.",
                "produces": ["application/json", "text/html"],
                "tags": ["estimate"],
                "summary": "Estimate a price from query parameters",
                "parameters": [
                    {"type": "string", "description": "Location name", "name": "location", "in": "query"},
                    {"type": "integer", "description": "Bedrooms (alias bhk)", "name": "bedrooms", "in": "query"},
                    {"type": "integer", "description": "Bathrooms (alias bath)", "name": "bathrooms", "in": "query"},
                    {"type": "number", "description": "Area in square feet (alias sqft)", "name": "square_feet", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.EstimateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["estimate"],
                "summary": "Estimate a price",
                "parameters": [
                    {"description": "Selections", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.EstimateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.EstimateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/options": {
            "get": {
                "produces": ["application/json"],
                "tags": ["dashboard"],
                "summary": "List dashboard choices",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.OptionsResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ops"],
                "summary": "Report artifact and counter status",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.StatusResponse"}}
                }
            }
        }
    },
    "definitions": {
        "types.DatasetSummary": {
            "type": "object",
            "properties": {
                "bathrooms": {"type": "array", "items": {"type": "integer"}},
                "bedrooms": {"type": "array", "items": {"type": "integer"}},
                "max_square_feet": {"type": "integer", "example": 52272},
                "min_square_feet": {"type": "integer", "example": 400},
                "rows": {"type": "integer", "example": 7251},
                "square_feet": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "types.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer", "example": 400},
                "error": {"type": "string", "example": "bedrooms must be an integer"}
            }
        },
        "types.EstimateRequest": {
            "type": "object",
            "properties": {
                "bathrooms": {"type": "integer", "example": 2},
                "bedrooms": {"type": "integer", "example": 3},
                "location": {"type": "string", "example": "Indiranagar"},
                "square_feet": {"type": "number", "example": 2000}
            }
        },
        "types.EstimateResponse": {
            "type": "object",
            "properties": {
                "formatted": {"type": "string", "example": "1.95 Crore Rupees"},
                "location": {"type": "string", "example": "indiranagar"},
                "location_index": {"type": "integer", "example": 3},
                "location_matched": {"type": "boolean", "example": true},
                "price": {"type": "number", "example": 1.95},
                "raw_prediction": {"type": "number", "example": 195.2},
                "unit": {"type": "string", "example": "Crore Rupees"}
            }
        },
        "types.OptionsResponse": {
            "type": "object",
            "properties": {
                "bathrooms": {"type": "array", "items": {"type": "integer"}},
                "bedrooms": {"type": "array", "items": {"type": "integer"}},
                "dataset": {"$ref": "#/definitions/types.DatasetSummary"},
                "defaults": {"$ref": "#/definitions/types.Selection"},
                "locations": {"type": "array", "items": {"type": "string"}},
                "square_feet": {"type": "array", "items": {"type": "integer"}},
                "square_feet_range": {"$ref": "#/definitions/types.Range"},
                "unit": {"type": "string", "example": "Crore Rupees"}
            }
        },
        "types.Range": {
            "type": "object",
            "properties": {
                "max": {"type": "integer", "example": 52272},
                "min": {"type": "integer", "example": 400},
                "step": {"type": "integer", "example": 100}
            }
        },
        "types.Selection": {
            "type": "object",
            "properties": {
                "bathrooms": {"type": "integer", "example": 3},
                "bedrooms": {"type": "integer", "example": 2},
                "location": {"type": "string", "example": "indiranagar"},
                "square_feet": {"type": "integer", "example": 2000}
            }
        },
        "types.StatusResponse": {
            "type": "object",
            "properties": {
                "background_source": {"type": "string"},
                "dataset_rows": {"type": "integer", "example": 7251},
                "dataset_source": {"type": "string"},
                "error": {"type": "string"},
                "estimates_total": {"type": "integer", "example": 42},
                "features": {"type": "integer", "example": 244},
                "loaded_at_unix": {"type": "integer", "example": 1700000000},
                "locations": {"type": "integer", "example": 241},
                "manifest_source": {"type": "string"},
                "model_source": {"type": "string"},
                "server_time_unix": {"type": "integer", "example": 1700000000},
                "state": {"type": "string", "example": "ready"},
                "unmatched_location_total": {"type": "integer", "example": 1},
                "uptime_seconds": {"type": "integer", "example": 3600}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "houseprice API",
	Description:      "Bengaluru house price estimates from a linear model over one-hot location features.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
