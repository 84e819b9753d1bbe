// Package docs holds the OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {
            "name": "API Support",
            "url": "https://github.com/guttosm/mvr-resolver",
            "email": "support@example.com"
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
        "/api/v1/resolve/package": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Resolve"],
                "summary": "Resolve a package name",
                "parameters": [
                    {"type": "string", "description": "Package name, e.g. @suifrens/core", "name": "name", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResolutionResponse"}},
                    "400": {"description": "Invalid name", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Not registered", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "429": {"description": "Registry rate limit", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "502": {"description": "Registry failure", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "503": {"description": "Too many concurrent requests", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "504": {"description": "Registry timeout", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/v1/resolve/type": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Resolve"],
                "summary": "Resolve a type name",
                "parameters": [
                    {"type": "string", "description": "Type name, e.g. @suifrens/core::suifren::SuiFren", "name": "name", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResolutionResponse"}},
                    "400": {"description": "Invalid name", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Not registered", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/v1/resolve/packages": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Resolve"],
                "summary": "Resolve package names in one batch",
                "parameters": [
                    {"description": "Names", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ResolveNamesRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/BatchResolutionResponse"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/v1/resolve/types": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Resolve"],
                "summary": "Resolve type names in one batch",
                "parameters": [
                    {"description": "Names", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ResolveNamesRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/BatchResolutionResponse"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/v1/resolve/target": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Resolve"],
                "summary": "Resolve a move-call target",
                "parameters": [
                    {"description": "Target", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ResolveTargetRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/TargetResponse"}},
                    "400": {"description": "Invalid target", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Not registered", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/v1/cache/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Cache"],
                "summary": "Cache statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CacheStatsResponse"}}
                }
            }
        },
        "/api/v1/cache/cleanup": {
            "post": {
                "security": [{"BearerAuth": []}, {"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Cache"],
                "summary": "Remove expired cache entries",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CleanupResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/v1/cache": {
            "delete": {
                "security": [{"BearerAuth": []}, {"ApiKeyAuth": []}],
                "tags": ["Cache"],
                "summary": "Clear the cache",
                "responses": {
                    "204": {"description": "Cleared"},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/v1/config": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Resolve"],
                "summary": "Effective resolver configuration",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ConfigResponse"}}
                }
            }
        },
        "/api/v1/audit": {
            "get": {
                "security": [{"BearerAuth": []}, {"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Audit"],
                "summary": "Query the audit log",
                "parameters": [
                    {"type": "string", "name": "request_id", "in": "query"},
                    {"type": "string", "name": "action", "in": "query"},
                    {"type": "string", "name": "subject", "in": "query"},
                    {"type": "string", "name": "name", "in": "query"},
                    {"type": "string", "name": "level", "in": "query"},
                    {"type": "string", "name": "start", "in": "query"},
                    {"type": "string", "name": "end", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"},
                    {"type": "integer", "name": "skip", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/AuditListResponse"}},
                    "400": {"description": "Invalid query", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "503": {"description": "Audit log disabled", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/v1/auth/token": {
            "post": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Exchange an API key for a bearer token",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/TokenResponse"}},
                    "401": {"description": "Invalid API key", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "Service is alive"}}
            }
        },
        "/readyz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "Service is ready"},
                    "503": {"description": "Service is not ready"}
                }
            }
        }
    },
    "definitions": {
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "not_found"},
                "message": {"type": "string", "example": "Package not found"},
                "details": {"type": "object", "additionalProperties": {"type": "string"}},
                "request_id": {"type": "string"},
                "timestamp": {"type": "string"}
            }
        },
        "ResolutionResponse": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "@suifrens/core"},
                "value": {"type": "string", "example": "0x00000000000000000000000000000000000000000000000000000000000000c0"},
                "kind": {"type": "string", "example": "package"}
            }
        },
        "BatchResolutionResponse": {
            "type": "object",
            "properties": {
                "kind": {"type": "string", "example": "package"},
                "results": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "ResolveNamesRequest": {
            "type": "object",
            "required": ["names"],
            "properties": {
                "names": {"type": "array", "items": {"type": "string"}}
            }
        },
        "ResolveTargetRequest": {
            "type": "object",
            "required": ["target"],
            "properties": {
                "target": {"type": "string", "example": "@suifrens/core::suifren::mint"}
            }
        },
        "TargetResponse": {
            "type": "object",
            "properties": {
                "target": {"type": "string"},
                "resolved": {"type": "string"}
            }
        },
        "CacheStatsResponse": {
            "type": "object",
            "properties": {
                "total_entries": {"type": "integer"},
                "valid_entries": {"type": "integer"},
                "expired_entries": {"type": "integer"},
                "total_hits": {"type": "integer"},
                "max_size": {"type": "integer"},
                "utilization": {"type": "number"},
                "hit_rate": {"type": "number"},
                "in_flight": {"type": "integer"}
            }
        },
        "CleanupResponse": {
            "type": "object",
            "properties": {
                "removed": {"type": "integer"}
            }
        },
        "ConfigResponse": {
            "type": "object",
            "properties": {
                "endpoint_url": {"type": "string"},
                "cache_ttl_seconds": {"type": "number"},
                "cache_size": {"type": "integer"},
                "timeout_seconds": {"type": "number"},
                "max_concurrent_requests": {"type": "integer"},
                "package_overrides": {"type": "object", "additionalProperties": {"type": "string"}},
                "type_overrides": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "AuditListResponse": {
            "type": "object",
            "properties": {
                "entries": {"type": "array", "items": {"type": "object"}},
                "total": {"type": "integer"},
                "limit": {"type": "integer"},
                "skip": {"type": "integer"}
            }
        },
        "TokenResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "token_type": {"type": "string", "example": "Bearer"},
                "expires_in": {"type": "integer", "example": 900}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {"type": "apiKey", "name": "X-API-Key", "in": "header"},
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "MVR Resolver API",
	Description:      "Resolves Move Registry names to on-chain package addresses and type signatures.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
