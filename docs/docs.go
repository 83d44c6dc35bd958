// Package docs registers the OpenAPI document of the API with swag.
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
    "securityDefinitions": {
        "AdminAuth": {
            "type": "basic"
        }
    },
    "paths": {
        "/health": {
            "get": {"tags": ["public"], "summary": "Health check", "responses": {"200": {"description": "OK"}}}
        },
        "/jobs": {
            "get": {"tags": ["public"], "summary": "List open job postings", "responses": {"200": {"description": "OK"}}}
        },
        "/applications": {
            "post": {
                "tags": ["public"],
                "summary": "Apply for a job",
                "consumes": ["application/json"],
                "parameters": [{"in": "body", "name": "application", "required": true, "schema": {"$ref": "#/definitions/catalog.ApplicationInput"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/applications/cv": {
            "post": {
                "tags": ["public"],
                "summary": "Upload a CV",
                "consumes": ["multipart/form-data"],
                "parameters": [{"type": "file", "in": "formData", "name": "file", "required": true}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/orders": {
            "post": {
                "tags": ["public"],
                "summary": "Place a custom order",
                "consumes": ["application/json"],
                "parameters": [{"in": "body", "name": "order", "required": true, "schema": {"$ref": "#/definitions/models.OrderRequest"}}],
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/products": {
            "get": {"tags": ["public"], "summary": "List products shown on the site", "responses": {"200": {"description": "OK"}}}
        },
        "/hero-images": {
            "get": {"tags": ["public"], "summary": "List hero images", "responses": {"200": {"description": "OK"}}}
        },
        "/carousel-images": {
            "get": {"tags": ["public"], "summary": "List carousel images", "responses": {"200": {"description": "OK"}}}
        },
        "/admin/status": {
            "get": {"tags": ["admin"], "security": [{"AdminAuth": []}], "summary": "Backend status", "responses": {"200": {"description": "OK"}}}
        },
        "/admin/reset": {
            "post": {"tags": ["admin"], "security": [{"AdminAuth": []}], "summary": "Delete every job and application", "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}
        },
        "/admin/jobs": {
            "get": {"tags": ["admin"], "security": [{"AdminAuth": []}], "summary": "List jobs for the admin", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["admin"], "security": [{"AdminAuth": []}], "summary": "Create a job posting", "parameters": [{"in": "body", "name": "job", "required": true, "schema": {"$ref": "#/definitions/models.Job"}}], "responses": {"201": {"description": "Created"}}},
            "delete": {"tags": ["admin"], "security": [{"AdminAuth": []}], "summary": "Delete every stored job", "responses": {"200": {"description": "OK"}}}
        },
        "/admin/jobs/activate-all": {
            "post": {"tags": ["admin"], "security": [{"AdminAuth": []}], "summary": "Activate every job", "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}
        },
        "/admin/jobs/deactivate-all": {
            "post": {"tags": ["admin"], "security": [{"AdminAuth": []}], "summary": "Deactivate every job", "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable"}}}
        },
        "/admin/jobs/{id}": {
            "patch": {"tags": ["admin"], "security": [{"AdminAuth": []}], "summary": "Update a stored job posting", "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}, {"in": "body", "name": "job", "required": true, "schema": {"$ref": "#/definitions/catalog.JobInput"}}], "responses": {"200": {"description": "OK"}, "409": {"description": "Default job; activate all first"}}},
            "delete": {"tags": ["admin"], "security": [{"AdminAuth": []}], "summary": "Delete a stored job posting", "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}], "responses": {"200": {"description": "OK"}, "409": {"description": "Default job; activate all first"}}}
        },
        "/admin/jobs/{id}/toggle": {
            "post": {"tags": ["admin"], "security": [{"AdminAuth": []}], "summary": "Toggle a job's active flag", "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ToggleRequest"}}], "responses": {"200": {"description": "OK"}}}
        },
        "/admin/applications": {
            "get": {"tags": ["admin"], "security": [{"AdminAuth": []}], "summary": "List job applications", "responses": {"200": {"description": "OK"}}}
        },
        "/admin/applications/{id}": {
            "delete": {"tags": ["admin"], "security": [{"AdminAuth": []}], "summary": "Permanently delete an application and its CV", "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}, {"type": "string", "in": "query", "name": "cv_url"}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}}
        },
        "/admin/applications/{id}/status": {
            "patch": {"tags": ["admin"], "security": [{"AdminAuth": []}], "summary": "Change an application's status", "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.StatusRequest"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/admin/products": {
            "get": {"tags": ["admin"], "security": [{"AdminAuth": []}], "summary": "List all products", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["admin"], "security": [{"AdminAuth": []}], "summary": "Create a product at the end of the display order", "parameters": [{"in": "body", "name": "product", "required": true, "schema": {"$ref": "#/definitions/catalog.ProductInput"}}], "responses": {"201": {"description": "Created"}}}
        },
        "/admin/products/order": {
            "put": {"tags": ["admin"], "security": [{"AdminAuth": []}], "summary": "Rewrite the product display order", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ReorderRequest"}}], "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}}
        },
        "/admin/products/image": {
            "post": {"tags": ["admin"], "security": [{"AdminAuth": []}], "summary": "Upload a product image", "consumes": ["multipart/form-data"], "parameters": [{"type": "file", "in": "formData", "name": "file", "required": true}], "responses": {"201": {"description": "Created"}}}
        },
        "/admin/products/{id}": {
            "patch": {"tags": ["admin"], "security": [{"AdminAuth": []}], "summary": "Update a product", "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}, {"in": "body", "name": "product", "required": true, "schema": {"$ref": "#/definitions/catalog.ProductInput"}}], "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}},
            "delete": {"tags": ["admin"], "security": [{"AdminAuth": []}], "summary": "Delete a product", "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/admin/products/{id}/toggle": {
            "post": {"tags": ["admin"], "security": [{"AdminAuth": []}], "summary": "Show or hide a product", "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ToggleRequest"}}], "responses": {"200": {"description": "OK"}}}
        },
        "/admin/hero-images": {
            "get": {"tags": ["admin"], "security": [{"AdminAuth": []}], "summary": "List hero images", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["admin"], "security": [{"AdminAuth": []}], "summary": "Upload and append a hero image", "consumes": ["multipart/form-data"], "parameters": [{"type": "file", "in": "formData", "name": "file", "required": true}, {"type": "string", "in": "formData", "name": "alt_text"}], "responses": {"201": {"description": "Created"}}}
        },
        "/admin/hero-images/order": {
            "put": {"tags": ["admin"], "security": [{"AdminAuth": []}], "summary": "Rewrite the hero image order", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ReorderRequest"}}], "responses": {"200": {"description": "OK"}}}
        },
        "/admin/hero-images/{id}": {
            "delete": {"tags": ["admin"], "security": [{"AdminAuth": []}], "summary": "Delete a hero image", "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/admin/carousel-images": {
            "get": {"tags": ["admin"], "security": [{"AdminAuth": []}], "summary": "List carousel images", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["admin"], "security": [{"AdminAuth": []}], "summary": "Upload and append a carousel image", "consumes": ["multipart/form-data"], "parameters": [{"type": "file", "in": "formData", "name": "file", "required": true}, {"type": "string", "in": "formData", "name": "alt_text"}], "responses": {"201": {"description": "Created"}}}
        },
        "/admin/carousel-images/order": {
            "put": {"tags": ["admin"], "security": [{"AdminAuth": []}], "summary": "Rewrite the carousel image order", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.ReorderRequest"}}], "responses": {"200": {"description": "OK"}}}
        },
        "/admin/carousel-images/{id}": {
            "delete": {"tags": ["admin"], "security": [{"AdminAuth": []}], "summary": "Delete a carousel image", "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/admin/orders": {
            "get": {"tags": ["admin"], "security": [{"AdminAuth": []}], "summary": "List custom orders, newest first", "responses": {"200": {"description": "OK"}}}
        },
        "/admin/orders/{id}": {
            "delete": {"tags": ["admin"], "security": [{"AdminAuth": []}], "summary": "Delete an order", "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/admin/orders/{id}/status": {
            "patch": {"tags": ["admin"], "security": [{"AdminAuth": []}], "summary": "Change an order's status", "parameters": [{"type": "string", "in": "path", "name": "id", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.StatusRequest"}}], "responses": {"200": {"description": "OK"}}}
        }
    },
    "definitions": {
        "catalog.ApplicationInput": {
            "type": "object",
            "required": ["applicant_name", "job_id", "phone"],
            "properties": {
                "applicant_name": {"type": "string"},
                "cv_file_name": {"type": "string"},
                "cv_url": {"type": "string"},
                "email": {"type": "string"},
                "job_id": {"type": "string"},
                "job_title": {"type": "string"},
                "message": {"type": "string"},
                "phone": {"type": "string"},
                "preferred_location": {"type": "string"}
            }
        },
        "catalog.JobInput": {
            "type": "object",
            "required": ["location", "title", "type"],
            "properties": {
                "active": {"type": "boolean"},
                "date_posted": {"type": "string"},
                "description": {"type": "string"},
                "location": {"type": "string"},
                "title": {"type": "string"},
                "type": {"type": "string", "enum": ["Full-time", "Part-time"]}
            }
        },
        "catalog.ProductInput": {
            "type": "object",
            "required": ["image_url", "name"],
            "properties": {
                "active": {"type": "boolean"},
                "description": {"type": "string"},
                "image_url": {"type": "string"},
                "name": {"type": "string"},
                "tag": {"type": "string"}
            }
        },
        "handlers.ReorderRequest": {
            "type": "object",
            "properties": {"ids": {"type": "array", "items": {"type": "string"}}}
        },
        "handlers.StatusRequest": {
            "type": "object",
            "required": ["status"],
            "properties": {"status": {"type": "string"}}
        },
        "handlers.ToggleRequest": {
            "type": "object",
            "required": ["current_active"],
            "properties": {"current_active": {"type": "boolean"}}
        },
        "models.Job": {
            "type": "object",
            "required": ["location", "title", "type"],
            "properties": {
                "active": {"type": "boolean"},
                "date_posted": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "string"},
                "location": {"type": "string"},
                "title": {"type": "string"},
                "type": {"type": "string", "enum": ["Full-time", "Part-time"]}
            }
        },
        "models.OrderItem": {
            "type": "object",
            "required": ["name", "type"],
            "properties": {
                "id": {"type": "string"},
                "image_url": {"type": "string"},
                "name": {"type": "string"},
                "quantity": {"type": "integer", "minimum": 1},
                "type": {"type": "string", "enum": ["product", "custom"]}
            }
        },
        "models.OrderRequest": {
            "type": "object",
            "required": ["customer_name", "delivery_type", "items", "needed_by", "phone_number"],
            "properties": {
                "customer_name": {"type": "string"},
                "delivery_address": {"type": "string"},
                "delivery_type": {"type": "string", "enum": ["pickup", "delivery"]},
                "items": {"type": "array", "items": {"$ref": "#/definitions/models.OrderItem"}},
                "needed_by": {"type": "string"},
                "notes": {"type": "string"},
                "phone_number": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Bakery API Gateway",
	Description:      "Jobs, applications, products, site imagery and custom orders for the bakery website and admin console.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
