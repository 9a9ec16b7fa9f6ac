// Package docs holds the OpenAPI description served under /swagger.
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
		"/auth/register": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Register a user",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Bad Request"
					},
					"409": {
						"description": "Conflict"
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/api.RegisterRequest"
						}
					}
				]
			}
		},
		"/auth/login": {
			"post": {
				"tags": [
					"auth"
				],
				"summary": "Log in and get a token",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"403": {
						"description": "Forbidden"
					},
					"404": {
						"description": "Not Found"
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/api.LoginRequest"
						}
					}
				]
			}
		},
		"/sessions": {
			"get": {
				"tags": [
					"sessions"
				],
				"summary": "List sessions, optionally for one date",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "query",
						"name": "date",
						"type": "string",
						"format": "date"
					}
				]
			},
			"post": {
				"tags": [
					"sessions"
				],
				"summary": "Create a session and its repeats",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Bad Request"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/api.CreateSessionRequest"
						}
					}
				]
			}
		},
		"/sessions/reorder": {
			"post": {
				"tags": [
					"sessions"
				],
				"summary": "Move a session within a day",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					},
					"409": {
						"description": "Batch failed, restore previous priorities"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/api.ReorderSessionsRequest"
						}
					}
				]
			}
		},
		"/sessions/{id}/completed": {
			"patch": {
				"tags": [
					"sessions"
				],
				"summary": "Toggle completion",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "string",
						"format": "uuid",
						"required": true
					},
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/api.SetCompletedRequest"
						}
					}
				]
			}
		},
		"/sessions/{id}": {
			"delete": {
				"tags": [
					"sessions"
				],
				"summary": "Delete a session with its group",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "string",
						"format": "uuid",
						"required": true
					}
				]
			}
		},
		"/badges": {
			"get": {
				"tags": [
					"badges"
				],
				"summary": "Badge catalog with earned flags",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/badges/check": {
			"post": {
				"tags": [
					"badges"
				],
				"summary": "Award at most one new badge",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/slogans": {
			"get": {
				"tags": [
					"slogans"
				],
				"summary": "List slogans",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			},
			"post": {
				"tags": [
					"slogans"
				],
				"summary": "Create a slogan",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created"
					},
					"400": {
						"description": "Bad Request"
					},
					"409": {
						"description": "Limit reached"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/api.CreateSloganRequest"
						}
					}
				]
			}
		},
		"/slogans/reorder": {
			"post": {
				"tags": [
					"slogans"
				],
				"summary": "Move a slogan",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/api.ReorderSlogansRequest"
						}
					}
				]
			}
		},
		"/slogans/{id}": {
			"delete": {
				"tags": [
					"slogans"
				],
				"summary": "Delete a slogan",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					},
					"404": {
						"description": "Not Found"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "string",
						"format": "uuid",
						"required": true
					}
				]
			}
		},
		"/feedback/{date}": {
			"get": {
				"tags": [
					"feedback"
				],
				"summary": "Feedback for a date",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"404": {
						"description": "Not Found"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "path",
						"name": "date",
						"type": "string",
						"format": "date",
						"required": true
					}
				]
			},
			"put": {
				"tags": [
					"feedback"
				],
				"summary": "Save feedback for a date",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"400": {
						"description": "Bad Request"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "path",
						"name": "date",
						"type": "string",
						"format": "date",
						"required": true
					},
					{
						"in": "body",
						"name": "request",
						"required": true,
						"schema": {
							"$ref": "#/definitions/api.SaveFeedbackRequest"
						}
					}
				]
			}
		},
		"/dashboard": {
			"get": {
				"tags": [
					"dashboard"
				],
				"summary": "Everything for the home screen",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		}
	},
	"definitions": {
		"api.RegisterRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"api.LoginRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"api.CreateSessionRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"content": {
					"type": "string"
				},
				"date": {
					"type": "string"
				},
				"duration": {
					"type": "integer"
				},
				"repeat_type": {
					"type": "string"
				}
			}
		},
		"api.ReorderSessionsRequest": {
			"type": "object",
			"properties": {
				"date": {
					"type": "string"
				},
				"from": {
					"type": "integer"
				},
				"to": {
					"type": "integer"
				}
			}
		},
		"api.SetCompletedRequest": {
			"type": "object",
			"properties": {
				"completed": {
					"type": "boolean"
				}
			}
		},
		"api.CreateSloganRequest": {
			"type": "object",
			"properties": {
				"content": {
					"type": "string"
				}
			}
		},
		"api.ReorderSlogansRequest": {
			"type": "object",
			"properties": {
				"from": {
					"type": "integer"
				},
				"to": {
					"type": "integer"
				}
			}
		},
		"api.SaveFeedbackRequest": {
			"type": "object",
			"properties": {
				"content": {
					"type": "string"
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
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "Grindlog API",
	Description:      "API for the training tracker \"Grindlog\"",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
