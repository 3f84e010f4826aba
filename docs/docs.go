// Package docs registers the OpenAPI description served on /swagger/*.
// Regenerate with: swag init -g cmd/contentapi/main.go
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
        "/api/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request"},
                    "409": {"description": "Conflict"}
                }
            }
        },
        "/api/auth/register-admin": {
            "post": {
                "tags": ["auth"],
                "summary": "Register an administrator",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "201": {"description": "Created"},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/api/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Unauthorized"}
                }
            }
        },
        "/api/articles": {
            "get": {
                "tags": ["articles"],
                "summary": "List published articles",
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["articles"],
                "summary": "Create an article",
                "responses": {
                    "201": {"description": "Created"},
                    "401": {"description": "Unauthorized"},
                    "403": {"description": "Forbidden"}
                }
            }
        },
        "/api/articles/{id}": {
            "get": {
                "tags": ["articles"],
                "summary": "Get an article",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["articles"],
                "summary": "Edit an article",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Forbidden"},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["articles"],
                "summary": "Delete an article",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/articles/{id}/publish": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["articles"],
                "summary": "Publish an article",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Forbidden"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/articles/{id}/comments": {
            "get": {
                "tags": ["comments"],
                "summary": "List the comments of an article",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["comments"],
                "summary": "Comment on an article",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "201": {"description": "Created"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/comments/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["comments"],
                "summary": "Edit a comment",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Forbidden"},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["comments"],
                "summary": "Delete a comment",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/users/{id}": {
            "get": {
                "tags": ["users"],
                "summary": "Get a user profile",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Edit a user profile",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "403": {"description": "Forbidden"},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "tags": ["users"],
                "summary": "Delete a user",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "204": {"description": "No Content"},
                    "403": {"description": "Forbidden"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/users/{id}/articles": {
            "get": {
                "tags": ["users"],
                "summary": "List a user's articles",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Content API",
	Description:      "Users, articles and comments behind bearer-token authentication and ownership authorization.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
