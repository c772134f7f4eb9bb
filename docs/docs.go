// Package docs registers the API description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {"200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}}
            }
        },
        "/auth/sign-up": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register an operator",
                "description": "Creates an operator whose tokens may only reach the listed configs. An empty list grants every loaded config.",
                "parameters": [{"description": "Credentials and config scope", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.signUpRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Unknown config in scope"}}
            }
        },
        "/auth/sign-in": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Issue a bearer token",
                "parameters": [{"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.authCredentials"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/v1/configs": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["configs"],
                "summary": "List configs",
                "responses": {"200": {"description": "count, configs"}, "401": {"description": "Unauthorized"}}
            }
        },
        "/api/v1/configs/{name}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["configs"],
                "summary": "Get config",
                "parameters": [{"type": "string", "description": "Config name", "name": "name", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}, "401": {"description": "Unauthorized"}, "403": {"description": "Outside token scope"}, "404": {"description": "Not Found"}}
            }
        },
        "/api/v1/configs/{name}/send": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["configs"],
                "summary": "Send a learned code",
                "parameters": [
                    {"type": "string", "description": "Config name", "name": "name", "in": "path", "required": true},
                    {"description": "Cell to replay", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.SendRequest"}}
                ],
                "responses": {
                    "200": {"description": "status, state"},
                    "400": {"description": "Bad Request"},
                    "401": {"description": "Unauthorized"},
                    "403": {"description": "Outside token scope"},
                    "404": {"description": "Not Found"},
                    "409": {"description": "Command not learned"},
                    "503": {"description": "No IR device"}
                }
            }
        },
        "/api/v1/state": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["state"],
                "summary": "Get last replayed state",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ACState"}}, "401": {"description": "Unauthorized"}, "403": {"description": "Outside token scope"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/ws": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["state"],
                "summary": "Stream the last replayed state",
                "parameters": [{"type": "string", "description": "Bearer token when no Authorization header can be set", "name": "access_token", "in": "query"}],
                "responses": {"401": {"description": "Unauthorized"}}
            }
        },
        "/api/v1/logs": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["logs"],
                "summary": "List learning journal",
                "parameters": [
                    {"type": "string", "example": "2025-08-01", "name": "from", "in": "query"},
                    {"type": "string", "example": "2025-08-31", "name": "to", "in": "query"},
                    {"enum": ["CAPTURE", "CLONE", "FILL", "CREATE", "SAVE", "SEND"], "type": "string", "name": "type", "in": "query"}
                ],
                "responses": {"200": {"description": "count, events"}, "400": {"description": "Bad Request"}, "401": {"description": "Unauthorized"}, "500": {"description": "Internal Server Error"}}
            }
        }
    },
    "definitions": {
        "handlers.authCredentials": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {"password": {"type": "string"}, "username": {"type": "string"}}
        },
        "handlers.signUpRequest": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"},
                "configs": {"type": "array", "items": {"type": "string"}, "example": ["bedroom", "office"]}
            }
        },
        "handlers.SendRequest": {
            "type": "object",
            "properties": {
                "operation_mode": {"type": "string", "example": "cool"},
                "fan_mode": {"type": "string", "example": "auto"},
                "swing_mode": {"type": "string", "example": "stop"},
                "temperature": {"type": "string", "example": "24"}
            }
        },
        "models.ACState": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "config": {"type": "string"},
                "operation_mode": {"type": "string"},
                "fan_mode": {"type": "string"},
                "swing_mode": {"type": "string"},
                "temperature": {"type": "string"},
                "device": {"type": "string"},
                "sent": {"type": "boolean"},
                "updated_at": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo is the registered API description.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "AC learner API",
	Description:      "Replay learned air-conditioner IR codes and inspect the learning journal.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
