// Package docs holds the OpenAPI description served under /docs. It follows the
// layout swag init emits so the file can be regenerated in place.
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
		"/feed": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"feed"
				],
				"summary": "List the ranked feed",
				"parameters": [
					{
						"type": "boolean",
						"description": "Include non-active posts (moderators)",
						"name": "all",
						"in": "query"
					},
					{
						"type": "integer",
						"description": "Page size (default 20, max 100)",
						"name": "limit",
						"in": "query"
					},
					{
						"type": "string",
						"description": "Cursor from the previous page",
						"name": "cursor",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ListPage-model_Post"
						}
					},
					"400": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					},
					"403": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			},
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"feed"
				],
				"summary": "Publish a post",
				"parameters": [
					{
						"type": "boolean",
						"description": "Moderation override",
						"name": "override",
						"in": "query"
					},
					{
						"description": "body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.CreatePostRequest"
						}
					}
				],
				"responses": {
					"201": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PostResult"
						}
					},
					"400": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Result"
						}
					},
					"403": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Result"
						}
					},
					"409": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Result"
						}
					}
				}
			}
		},
		"/feed/search": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"feed"
				],
				"summary": "Search the feed",
				"parameters": [
					{
						"type": "string",
						"description": "Query",
						"name": "q",
						"in": "query",
						"required": true
					},
					{
						"type": "boolean",
						"description": "Include non-active posts (moderators)",
						"name": "all",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"type": "array",
							"items": {
								"$ref": "#/definitions/model.Post"
							}
						}
					},
					"403": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/feed/quota": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"feed"
				],
				"summary": "Remaining quota for a plan",
				"parameters": [
					{
						"type": "string",
						"description": "WELCOME, ENTRY, BASIC or PRO",
						"name": "plan",
						"in": "query",
						"required": true
					},
					{
						"type": "string",
						"description": "Owner id (moderators)",
						"name": "owner",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/feed.QuotaInfo"
						}
					},
					"400": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Result"
						}
					},
					"403": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/feed/maintenance/expire": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"maintenance"
				],
				"summary": "Persist due expiries",
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.SweepResponse"
						}
					},
					"403": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.ErrorResponse"
						}
					}
				}
			}
		},
		"/feed/{post_id}": {
			"get": {
				"produces": [
					"application/json"
				],
				"tags": [
					"feed"
				],
				"summary": "Get one post",
				"parameters": [
					{
						"type": "string",
						"description": "Post ID",
						"name": "post_id",
						"in": "path",
						"required": true
					},
					{
						"type": "boolean",
						"description": "Also find non-active posts (moderators)",
						"name": "all",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/model.Post"
						}
					},
					"404": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Result"
						}
					}
				}
			},
			"patch": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"consumes": [
					"application/json"
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"feed"
				],
				"summary": "Update a post",
				"parameters": [
					{
						"type": "string",
						"description": "Post ID",
						"name": "post_id",
						"in": "path",
						"required": true
					},
					{
						"type": "boolean",
						"description": "Moderation override",
						"name": "override",
						"in": "query"
					},
					{
						"description": "body",
						"name": "body",
						"in": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/dto.UpdatePostRequest"
						}
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PostResult"
						}
					},
					"400": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Result"
						}
					},
					"403": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Result"
						}
					},
					"404": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Result"
						}
					}
				}
			},
			"delete": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"feed"
				],
				"summary": "Delete a post",
				"parameters": [
					{
						"type": "string",
						"description": "Post ID",
						"name": "post_id",
						"in": "path",
						"required": true
					},
					{
						"type": "boolean",
						"description": "Moderation override",
						"name": "override",
						"in": "query"
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Result"
						}
					},
					"403": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Result"
						}
					},
					"404": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Result"
						}
					}
				}
			}
		},
		"/feed/{post_id}/soft-delete": {
			"post": {
				"security": [
					{
						"BearerAuth": []
					}
				],
				"produces": [
					"application/json"
				],
				"tags": [
					"feed"
				],
				"summary": "Soft delete a post",
				"parameters": [
					{
						"type": "string",
						"description": "Post ID",
						"name": "post_id",
						"in": "path",
						"required": true
					},
					{
						"type": "boolean",
						"description": "Moderation override",
						"name": "override",
						"in": "query",
						"required": true
					}
				],
				"responses": {
					"200": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.PostResult"
						}
					},
					"403": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Result"
						}
					},
					"404": {
						"description": "OK",
						"schema": {
							"$ref": "#/definitions/dto.Result"
						}
					}
				}
			}
		}
	},
	"definitions": {
		"dto.CreatePostRequest": {
			"type": "object",
			"properties": {
				"planType": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"keywords": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"images": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/model.Image"
					}
				},
				"location": {
					"$ref": "#/definitions/model.Location"
				},
				"expiresAt": {
					"type": "integer"
				},
				"isPermanent": {
					"type": "boolean"
				},
				"ownerBusinessName": {
					"type": "string"
				},
				"ownerCategory": {
					"type": "string"
				},
				"rankingScore": {
					"type": "number"
				},
				"pinnedRank": {
					"type": "integer"
				},
				"moderationTags": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"ownerUserId": {
					"type": "string"
				}
			}
		},
		"dto.ErrorResponse": {
			"type": "object",
			"properties": {
				"error": {
					"type": "string"
				}
			}
		},
		"dto.ListPage-model_Post": {
			"type": "object",
			"properties": {
				"items": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/model.Post"
					}
				},
				"next_cursor": {
					"type": "string"
				},
				"has_more": {
					"type": "boolean"
				}
			}
		},
		"dto.PostResult": {
			"type": "object",
			"properties": {
				"ok": {
					"type": "boolean"
				},
				"post": {
					"$ref": "#/definitions/model.Post"
				}
			}
		},
		"dto.Result": {
			"type": "object",
			"properties": {
				"ok": {
					"type": "boolean"
				},
				"reason": {
					"type": "string"
				}
			}
		},
		"dto.SweepResponse": {
			"type": "object",
			"properties": {
				"changed": {
					"type": "integer"
				}
			}
		},
		"dto.UpdatePostRequest": {
			"type": "object",
			"properties": {
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"keywords": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"images": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/model.Image"
					}
				},
				"location": {
					"$ref": "#/definitions/model.Location"
				},
				"moderation": {
					"$ref": "#/definitions/feed.ModerationPatch"
				}
			}
		},
		"feed.ModerationPatch": {
			"type": "object",
			"properties": {
				"rankingScore": {
					"type": "number"
				},
				"planType": {
					"type": "string"
				},
				"visibilityStatus": {
					"type": "string"
				},
				"expiresAt": {
					"type": "integer"
				},
				"isPermanent": {
					"type": "boolean"
				},
				"ownerBusinessName": {
					"type": "string"
				},
				"ownerCategory": {
					"type": "string"
				},
				"ownerUserId": {
					"type": "string"
				},
				"pinnedRank": {
					"type": "integer"
				},
				"moderationTags": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"lastModeratedByUserId": {
					"type": "string"
				},
				"lastModeratedAt": {
					"type": "integer"
				},
				"authorRole": {
					"type": "string"
				}
			}
		},
		"feed.QuotaInfo": {
			"type": "object",
			"properties": {
				"plan": {
					"type": "string"
				},
				"limit": {
					"type": "integer"
				},
				"used": {
					"type": "integer"
				},
				"remaining": {
					"type": "integer"
				},
				"window": {
					"type": "string"
				},
				"windowStart": {
					"type": "integer"
				}
			}
		},
		"model.Image": {
			"type": "object",
			"properties": {
				"uri": {
					"type": "string"
				},
				"caption": {
					"type": "string"
				}
			}
		},
		"model.Location": {
			"type": "object",
			"properties": {
				"city": {
					"type": "string"
				},
				"region": {
					"type": "string"
				}
			}
		},
		"model.Post": {
			"type": "object",
			"properties": {
				"postId": {
					"type": "string"
				},
				"ownerUserId": {
					"type": "string"
				},
				"ownerBusinessName": {
					"type": "string"
				},
				"ownerCategory": {
					"type": "string"
				},
				"title": {
					"type": "string"
				},
				"description": {
					"type": "string"
				},
				"keywords": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"images": {
					"type": "array",
					"items": {
						"$ref": "#/definitions/model.Image"
					}
				},
				"location": {
					"$ref": "#/definitions/model.Location"
				},
				"createdAt": {
					"type": "integer"
				},
				"updatedAt": {
					"type": "integer"
				},
				"expiresAt": {
					"type": "integer"
				},
				"isPermanent": {
					"type": "boolean"
				},
				"planType": {
					"type": "string"
				},
				"visibilityStatus": {
					"type": "string"
				},
				"rankingScore": {
					"type": "number"
				},
				"pinnedRank": {
					"type": "integer"
				},
				"moderationTags": {
					"type": "array",
					"items": {
						"type": "string"
					}
				},
				"lastModeratedByUserId": {
					"type": "string"
				},
				"lastModeratedAt": {
					"type": "integer"
				},
				"authorRole": {
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
	Host:             "localhost:3000",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Business Feed API",
	Description:      "Posting, quota and ranking engine for the public business directory.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
