// Package docs registers the OpenAPI description of the fake backend with swag.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{.Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "Bearer": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/register": {
            "post": {"tags": ["auth"], "summary": "Create an account", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/Registration"}}], "responses": {"200": {"description": "Created user"}, "400": {"description": "Username already registered"}, "422": {"description": "Validation error"}}}
        },
        "/login": {
            "post": {"tags": ["auth"], "summary": "Exchange credentials for a bearer token", "consumes": ["application/json", "application/x-www-form-urlencoded"], "responses": {"200": {"description": "Token"}, "401": {"description": "Incorrect username or password"}}}
        },
        "/users/me": {
            "get": {"tags": ["auth"], "summary": "Current user", "security": [{"Bearer": []}], "responses": {"200": {"description": "User"}, "401": {"description": "Could not validate credentials"}}}
        },
        "/wardrobe/items/": {
            "get": {"tags": ["items"], "summary": "List items", "security": [{"Bearer": []}], "responses": {"200": {"description": "Items"}}},
            "post": {"tags": ["items"], "summary": "Create an item from the multipart part item and an optional image", "consumes": ["multipart/form-data"], "security": [{"Bearer": []}], "responses": {"200": {"description": "Item"}, "422": {"description": "Validation error"}}}
        },
        "/wardrobe/items/{id}": {
            "get": {"tags": ["items"], "summary": "Get an item", "security": [{"Bearer": []}], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"200": {"description": "Item"}, "404": {"description": "Not found"}}},
            "put": {"tags": ["items"], "summary": "Update an item from the multipart part item_update", "consumes": ["multipart/form-data"], "security": [{"Bearer": []}], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"200": {"description": "Item"}, "404": {"description": "Not found"}}},
            "delete": {"tags": ["items"], "summary": "Delete an item", "security": [{"Bearer": []}], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found"}}}
        },
        "/outfits/": {
            "get": {"tags": ["outfits"], "summary": "List outfits", "security": [{"Bearer": []}], "responses": {"200": {"description": "Outfits"}}},
            "post": {"tags": ["outfits"], "summary": "Create an outfit", "security": [{"Bearer": []}], "responses": {"200": {"description": "Outfit"}, "400": {"description": "Unknown item"}, "415": {"description": "Body is not JSON"}}}
        },
        "/outfits/{id}": {
            "put": {"tags": ["outfits"], "summary": "Update an outfit", "security": [{"Bearer": []}], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"200": {"description": "Outfit"}, "404": {"description": "Not found"}}},
            "delete": {"tags": ["outfits"], "summary": "Delete an outfit", "security": [{"Bearer": []}], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found"}}}
        },
        "/community/outfits/{id}/feedback": {
            "get": {"tags": ["community"], "summary": "List feedback on an outfit", "security": [{"Bearer": []}], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"200": {"description": "Feedback"}}},
            "post": {"tags": ["community"], "summary": "Rate an outfit", "security": [{"Bearer": []}], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"200": {"description": "Feedback"}, "422": {"description": "Rating out of range"}}}
        },
        "/community/feedback/{id}": {
            "delete": {"tags": ["community"], "summary": "Delete own feedback", "security": [{"Bearer": []}], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"204": {"description": "Deleted"}, "403": {"description": "Not the author"}}}
        },
        "/profile/me": {
            "get": {"tags": ["profile"], "summary": "Current profile", "security": [{"Bearer": []}], "responses": {"200": {"description": "Profile"}}},
            "put": {"tags": ["profile"], "summary": "Update profile fields", "security": [{"Bearer": []}], "responses": {"200": {"description": "Profile"}, "415": {"description": "Body is not JSON"}}}
        },
        "/recommendations/wardrobe/": {
            "get": {"tags": ["profile"], "summary": "Outfit ideas and items to acquire", "security": [{"Bearer": []}], "parameters": [{"in": "query", "name": "lat", "type": "number"}, {"in": "query", "name": "lon", "type": "number"}], "responses": {"200": {"description": "Suggestions"}}}
        },
        "/style-history/": {
            "get": {"tags": ["history"], "summary": "List logged wears", "security": [{"Bearer": []}], "parameters": [{"in": "query", "name": "item_id", "type": "string"}, {"in": "query", "name": "outfit_id", "type": "string"}, {"in": "query", "name": "skip", "type": "integer"}, {"in": "query", "name": "limit", "type": "integer"}], "responses": {"200": {"description": "Wear entries"}}},
            "post": {"tags": ["history"], "summary": "Log a wear of an item or outfit", "security": [{"Bearer": []}], "responses": {"201": {"description": "Wear entry"}, "403": {"description": "Not the owner"}, "422": {"description": "Set exactly one of item_id and outfit_id"}}}
        },
        "/style-history/{id}": {
            "delete": {"tags": ["history"], "summary": "Delete a wear entry", "security": [{"Bearer": []}], "parameters": [{"in": "path", "name": "id", "required": true, "type": "string"}], "responses": {"204": {"description": "Deleted"}, "404": {"description": "Not found"}}}
        },
        "/statistics/summary": {
            "get": {"tags": ["profile"], "summary": "Wardrobe statistics", "security": [{"Bearer": []}], "responses": {"200": {"description": "Statistics"}}}
        },
        "/statistics/item-wear-frequency": {
            "get": {"tags": ["profile"], "summary": "Items by wear count", "security": [{"Bearer": []}], "responses": {"200": {"description": "Wear frequency"}}}
        },
        "/statistics/category-usage": {
            "get": {"tags": ["profile"], "summary": "Share of items per category", "security": [{"Bearer": []}], "responses": {"200": {"description": "Category usage"}}}
        }
    },
    "definitions": {
        "Registration": {
            "type": "object",
            "required": ["username", "email", "password"],
            "properties": {
                "username": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Wardrobe fake backend",
	Description:      "In-memory emulation of the wardrobe REST API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
