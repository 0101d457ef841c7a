// Package swagger provides API documentation
// Regenerate with 'swag init -g cmd/server/server.go -o docs/swagger'.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/v1/chat/message": {
            "post": {
                "description": "Stores the message, generates an agent reply and returns it with the session id. Provider failures still return 200 with a canned reply and the error kind.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Send a customer message",
                "parameters": [
                    {
                        "description": "Message",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/requests.PostMessageRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.PostMessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            }
        },
        "/v1/chat/history": {
            "get": {
                "description": "Returns the ordered transcript for a session",
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Get conversation history",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "sessionId", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.HistoryResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            }
        },
        "/v1/faq": {
            "get": {
                "description": "Returns the knowledge base used to ground replies",
                "produces": ["application/json"],
                "tags": ["FAQ"],
                "summary": "List FAQ entries",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/responses.FAQListResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/responses.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "requests.PostMessageRequest": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "sessionId": {"type": "string"}
            }
        },
        "responses.PostMessageResponse": {
            "type": "object",
            "properties": {
                "reply": {"type": "string", "example": "Standard shipping takes 3-5 business days."},
                "sessionId": {"type": "string", "example": "7b1e4c52-3f0a-4d8e-9c21-5a6b7c8d9e0f"},
                "error": {"type": "string", "example": "RATE_LIMIT_ERROR"}
            }
        },
        "responses.HistoryMessage": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "sender": {"type": "string", "example": "user"},
                "text": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "responses.HistoryResponse": {
            "type": "object",
            "properties": {
                "sessionId": {"type": "string"},
                "messages": {"type": "array", "items": {"$ref": "#/definitions/responses.HistoryMessage"}}
            }
        },
        "responses.FAQEntryResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "category": {"type": "string", "example": "shipping"},
                "question": {"type": "string"},
                "answer": {"type": "string"}
            }
        },
        "responses.FAQListResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "array", "items": {"$ref": "#/definitions/responses.FAQEntryResponse"}}
            }
        },
        "responses.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "error": {"type": "string"},
                "message": {"type": "string"},
                "request_id": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Support API",
	Description:      "Customer support chat service",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
