// Package docs registers the Swagger document served at /swagger.
package docs

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
        "/orders": {
            "get": {
                "produces": ["application/json"],
                "summary": "List orders in one fulfillment status",
                "parameters": [
                    {
                        "type": "string",
                        "description": "canonical status or a legacy spelling of it",
                        "name": "status",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/http.OrderResponse"}
                        }
                    }
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Register a new order",
                "parameters": [
                    {
                        "description": "order to create",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.CreateOrderRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"$ref": "#/definitions/http.CreateOrderResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    }
                }
            }
        },
        "/orders/{id}": {
            "get": {
                "produces": ["application/json"],
                "summary": "Get one order",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/http.OrderResponse"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    }
                }
            }
        },
        "/orders/{id}/fulfillment": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Edit fulfillment status and shipping metadata atomically",
                "parameters": [
                    {
                        "type": "string",
                        "format": "uuid",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "fields to change; empty strings clear a field",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.UpdateFulfillmentRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/http.OrderResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    }
                }
            }
        },
        "/orders/{id}/evidence/{slot}": {
            "get": {
                "produces": ["image/jpeg"],
                "summary": "Download an evidence photo",
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "slot", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    }
                }
            },
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "summary": "Upload an evidence photo and advance the order when the transition is legal",
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "slot", "in": "path", "required": true},
                    {"type": "file", "name": "image", "in": "formData", "required": true}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/http.OrderResponse"}
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    }
                }
            },
            "delete": {
                "produces": ["application/json"],
                "summary": "Remove an evidence photo; the status never rolls back",
                "parameters": [
                    {"type": "string", "format": "uuid", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "slot", "in": "path", "required": true}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/http.ErrorResponse"}
                    }
                }
            }
        },
        "/statuses": {
            "get": {
                "produces": ["application/json"],
                "summary": "Get the status catalog",
                "parameters": [
                    {
                        "type": "string",
                        "description": "narrow the catalog to one shipping area",
                        "name": "area",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "array",
                            "items": {"$ref": "#/definitions/http.StatusCatalogResponse"}
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "http.CreateOrderRequest": {
            "type": "object",
            "properties": {
                "customer_name": {"type": "string"},
                "shipping_area": {"type": "string"},
                "order_type": {"type": "string"}
            }
        },
        "http.CreateOrderResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"}
            }
        },
        "http.UpdateFulfillmentRequest": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "shipping_area": {"type": "string"},
                "order_type": {"type": "string"},
                "pickup_method": {"type": "string"},
                "courier_service": {"type": "string"},
                "tracking_number": {"type": "string"},
                "delivery_location": {"type": "string"},
                "pickup_location": {"type": "string"},
                "admin_note": {"type": "string"}
            }
        },
        "http.OrderResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "customer_name": {"type": "string"},
                "status": {"type": "string"},
                "status_label": {"type": "string"},
                "status_color": {"type": "string"},
                "shipping_area": {"type": "string"},
                "order_type": {"type": "string"},
                "pickup_method": {"type": "string"},
                "courier_service": {"type": "string"},
                "tracking_number": {"type": "string"},
                "delivery_location": {"type": "string"},
                "pickup_location": {"type": "string"},
                "admin_note": {"type": "string"},
                "required_fields": {"type": "array", "items": {"type": "string"}},
                "evidence": {"type": "object", "additionalProperties": {"type": "string"}},
                "version": {"type": "integer"}
            }
        },
        "http.StatusCatalogResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "label": {"type": "string"},
                "color": {"type": "string"}
            }
        },
        "http.FieldErrorResponse": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "reason": {"type": "string"}
            }
        },
        "http.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"},
                "fields": {"type": "array", "items": {"$ref": "#/definitions/http.FieldErrorResponse"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Order Fulfillment API",
	Description:      "Fulfillment status tracking for orders, with evidence photos and shipping metadata.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
