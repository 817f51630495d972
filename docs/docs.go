// Package docs holds the OpenAPI description served at /swagger/doc.json.
// Regenerate with `swag init -g cmd/api/main.go` after changing handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support Team"
        },
        "license": {
            "name": "MIT License",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/healthz": {
            "get": {
                "description": "Check if the API is running",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health Check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/api/v1/countries": {
            "get": {
                "description": "Search countries by name and page through the matches, ten per page",
                "produces": ["application/json"],
                "tags": ["countries"],
                "summary": "List countries",
                "parameters": [
                    {"type": "string", "description": "Case-insensitive name filter", "name": "search", "in": "query"},
                    {"type": "integer", "description": "Page number, clamped into range", "name": "page", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.Response"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.Response"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/api.Response"}}
                }
            }
        },
        "/api/v1/countries/{code}": {
            "get": {
                "description": "Get a single country by its two letter code",
                "produces": ["application/json"],
                "tags": ["countries"],
                "summary": "Get country by code",
                "parameters": [
                    {"type": "string", "description": "Country code", "name": "code", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.Response"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/api.Response"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/api.Response"}}
                }
            }
        },
        "/api/v1/bookings": {
            "post": {
                "description": "Validates the booking and simulates its submission; poll the booking until it is confirmed",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Submit a booking",
                "parameters": [
                    {"description": "Booking form", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/bookings.BookingRequest"}}
                ],
                "responses": {
                    "202": {"description": "Accepted", "schema": {"$ref": "#/definitions/api.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.Response"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/api.Response"}}
                }
            }
        },
        "/api/v1/bookings/validate": {
            "post": {
                "description": "Returns the errors of the touched fields, or of every field once a submit was attempted",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Validate a booking form",
                "parameters": [
                    {"description": "Form values and touched fields", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/bookings.ValidateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.Response"}}
                }
            }
        },
        "/api/v1/bookings/{id}": {
            "get": {
                "description": "Returns the current status of a submitted booking",
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Get a booking",
                "parameters": [
                    {"type": "string", "description": "Booking ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/api.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/api.Response"}}
                }
            }
        },
        "/api/v1/theme": {
            "get": {
                "description": "Returns the theme mode of the current session",
                "produces": ["application/json"],
                "tags": ["theme"],
                "summary": "Get the theme",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Response"}}
                }
            }
        },
        "/api/v1/theme/toggle": {
            "post": {
                "description": "Switches the current session between light and dark mode",
                "produces": ["application/json"],
                "tags": ["theme"],
                "summary": "Toggle the theme",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/api.Response"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/api.Response"}}
                }
            }
        }
    },
    "definitions": {
        "api.ErrorInfo": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {},
                "message": {"type": "string"}
            }
        },
        "api.Response": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/api.ErrorInfo"},
                "message": {"type": "string"},
                "meta": {},
                "success": {"type": "boolean"}
            }
        },
        "bookings.BookingRequest": {
            "type": "object",
            "required": ["destination"],
            "properties": {
                "departure_date": {"type": "string", "example": "2030-06-02"},
                "destination": {"type": "string", "maxLength": 100},
                "email": {"type": "string", "maxLength": 254},
                "first_name": {"type": "string", "maxLength": 100},
                "last_name": {"type": "string", "maxLength": 100},
                "return_date": {"type": "string", "example": "2030-06-09"},
                "travelers": {"type": "integer"}
            }
        },
        "bookings.ValidateRequest": {
            "type": "object",
            "required": ["destination"],
            "properties": {
                "departure_date": {"type": "string"},
                "destination": {"type": "string"},
                "email": {"type": "string"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "return_date": {"type": "string"},
                "submit_attempted": {"type": "boolean"},
                "touched": {"type": "array", "items": {"type": "string"}},
                "travelers": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Travel Explorer API",
	Description:      "Browse countries, simulate trip bookings and switch the UI theme.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
