// Package docs holds the OpenAPI document served by the gateway at /swagger/*.
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
        "/actors/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Get actor profile",
                "parameters": [
                    {"type": "string", "description": "Actor ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.ActorProfile"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Update actor profile",
                "parameters": [
                    {"type": "string", "description": "Actor ID", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.ActorProfileUpdate"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.ActorProfile"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "403": {"description": "Forbidden", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/castings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["castings"],
                "summary": "List castings",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.CastingSummary"}}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/castings/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["castings"],
                "summary": "Get casting",
                "parameters": [
                    {"type": "string", "description": "Casting ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.CastingDetail"}},
                    "404": {"description": "Not Found", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.readinessResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/handler.readinessResponse"}}
                }
            }
        },
        "/me": {
            "get": {
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.UserSummary"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/me/profile": {
            "get": {
                "produces": ["application/json"],
                "tags": ["profile"],
                "summary": "Current actor profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.myProfileResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/session": {
            "get": {
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Current session",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.sessionInfoResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            },
            "delete": {
                "tags": ["session"],
                "summary": "Logout",
                "responses": {
                    "204": {"description": "No Content"}
                }
            }
        },
        "/session/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Login",
                "parameters": [
                    {"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.sessionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "502": {"description": "Bad Gateway", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/session/signup/actor": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Actor signup",
                "parameters": [
                    {"description": "Actor signup draft", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.ActorSignUpDraft"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.sessionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "409": {"description": "Conflict", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/session/signup/agency": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["session"],
                "summary": "Agency signup",
                "parameters": [
                    {"description": "Agency signup draft", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.AgencySignUpDraft"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.sessionResponse"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "409": {"description": "Conflict", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "auth.TokenInfo": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "expires_at": {"type": "string"},
                "issued_at": {"type": "string"},
                "role": {"type": "string"},
                "subject": {"type": "string"}
            }
        },
        "domain.ActorProfile": {
            "type": "object",
            "properties": {
                "age": {"type": "integer"},
                "centresInteret": {"type": "array", "items": {"type": "string"}},
                "cvPdf": {"type": "string"},
                "email": {"type": "string"},
                "experience": {"type": "integer"},
                "gouvernorat": {"type": "string"},
                "id": {"type": "string"},
                "nom": {"type": "string"},
                "photoProfil": {"type": "string"},
                "prenom": {"type": "string"},
                "socialLinks": {"$ref": "#/definitions/domain.SocialLinks"},
                "tel": {"type": "string"}
            }
        },
        "domain.ActorProfileUpdate": {
            "type": "object",
            "properties": {
                "age": {"type": "integer"},
                "centresInteret": {"type": "array", "items": {"type": "string"}},
                "cvPdf": {"type": "string"},
                "email": {"type": "string"},
                "experience": {"type": "integer"},
                "gouvernorat": {"type": "string"},
                "nom": {"type": "string"},
                "photoProfil": {"type": "string"},
                "prenom": {"type": "string"},
                "socialLinks": {"$ref": "#/definitions/domain.SocialLinks"},
                "tel": {"type": "string"}
            }
        },
        "domain.ActorSignUpDraft": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "age": {"type": "string"},
                "cvURL": {"type": "string"},
                "email": {"type": "string"},
                "firstName": {"type": "string"},
                "government": {"type": "string"},
                "instagram": {"type": "string"},
                "interests": {"type": "array", "items": {"type": "string"}},
                "lastName": {"type": "string"},
                "password": {"type": "string"},
                "phone": {"type": "string"},
                "profileImageBase64": {"type": "string"},
                "tiktok": {"type": "string"},
                "yearsOfExperience": {"type": "string"},
                "youtube": {"type": "string"}
            }
        },
        "domain.AgencySignUpDraft": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "adminDocumentURL": {"type": "string"},
                "agencyName": {"type": "string"},
                "description": {"type": "string"},
                "email": {"type": "string"},
                "government": {"type": "string"},
                "logoBase64": {"type": "string"},
                "password": {"type": "string"},
                "phone": {"type": "string"},
                "responsibleName": {"type": "string"},
                "website": {"type": "string"}
            }
        },
        "domain.CastingDetail": {
            "type": "object",
            "properties": {
                "conditions": {"type": "string"},
                "dateDebut": {"type": "string"},
                "dateFin": {"type": "string"},
                "descriptionRole": {"type": "string"},
                "id": {"type": "string"},
                "lieu": {"type": "string"},
                "remuneration": {"type": "string"},
                "synopsis": {"type": "string"},
                "titre": {"type": "string"}
            }
        },
        "domain.CastingSummary": {
            "type": "object",
            "properties": {
                "ageMaximum": {"type": "integer"},
                "ageMinimum": {"type": "integer"},
                "dateDebut": {"type": "string"},
                "dateFin": {"type": "string"},
                "descriptionRole": {"type": "string"},
                "id": {"type": "string"},
                "lieu": {"type": "string"},
                "remuneration": {"type": "string"},
                "role": {"type": "string"},
                "synopsis": {"type": "string"},
                "titre": {"type": "string"}
            }
        },
        "domain.SocialLinks": {
            "type": "object",
            "properties": {
                "instagram": {"type": "string"},
                "tiktok": {"type": "string"},
                "youtube": {"type": "string"}
            }
        },
        "domain.UserSummary": {
            "type": "object",
            "properties": {
                "acteurId": {"type": "string"},
                "agenceId": {"type": "string"},
                "email": {"type": "string"},
                "id": {"type": "string"},
                "role": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "handler.dependencyStatus": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "handler.loginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "handler.myProfileResponse": {
            "type": "object",
            "properties": {
                "profile": {"$ref": "#/definitions/domain.ActorProfile"},
                "user": {"$ref": "#/definitions/domain.UserSummary"}
            }
        },
        "handler.readinessResponse": {
            "type": "object",
            "properties": {
                "dependencies": {"type": "object", "additionalProperties": {"$ref": "#/definitions/handler.dependencyStatus"}},
                "status": {"type": "string"}
            }
        },
        "handler.sessionInfoResponse": {
            "type": "object",
            "properties": {
                "authenticated": {"type": "boolean"},
                "claims": {"$ref": "#/definitions/auth.TokenInfo"},
                "expired": {"type": "boolean"}
            }
        },
        "handler.sessionResponse": {
            "type": "object",
            "properties": {
                "access_token": {"type": "string"},
                "user": {"$ref": "#/definitions/domain.UserSummary"}
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
	Title:            "CastMate Gateway API",
	Description:      "Local gateway exposing the CastMate backend session, profile and casting operations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
