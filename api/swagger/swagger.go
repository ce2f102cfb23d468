package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "CSLAS API",
        "description": "Online office hours for CS Learning Assistant Scheduling",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "tags": [
        {"name": "Online Office Hours", "description": "Remote tutoring windows per tutor assignment"}
    ],
    "paths": {
        "/health": {
            "get": {
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/ready": {
            "get": {
                "summary": "Readiness check",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Database unavailable", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/api/public/officeHours": {
            "get": {
                "tags": ["Online Office Hours"],
                "summary": "List online office hours",
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/OnlineOfficeHour"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/api/public/officeHours/export": {
            "get": {
                "tags": ["Online Office Hours"],
                "summary": "Export the office hour schedule",
                "security": [{"BearerAuth": []}],
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"], "default": "csv"}
                ],
                "responses": {
                    "200": {"description": "Attachment", "schema": {"type": "file"}},
                    "400": {"description": "Unsupported format", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/api/public/officeHours/{id}": {
            "get": {
                "tags": ["Online Office Hours"],
                "summary": "Get an online office hour",
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer", "format": "int64"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/OnlineOfficeHour"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Online Office Hours"],
                "summary": "Delete an online office hour",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer", "format": "int64"}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "401": {"description": "Admin role required", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        },
        "/api/admin/officeHours": {
            "post": {
                "tags": ["Online Office Hours"],
                "summary": "Create an online office hour",
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/OnlineOfficeHour"}}
                ],
                "responses": {
                    "200": {"description": "Stored", "schema": {"$ref": "#/definitions/OnlineOfficeHour"}},
                    "400": {"description": "Malformed body", "schema": {"$ref": "#/definitions/ErrorEnvelope"}},
                    "401": {"description": "Admin role required", "schema": {"$ref": "#/definitions/ErrorEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "Course": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "format": "int64"},
                "name": {"type": "string"},
                "quarter": {"type": "string"},
                "instructorFirstName": {"type": "string"},
                "instructorLastName": {"type": "string"},
                "instructorEmail": {"type": "string"}
            }
        },
        "Tutor": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "format": "int64"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "TutorAssignment": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "format": "int64"},
                "course": {"$ref": "#/definitions/Course"},
                "tutor": {"$ref": "#/definitions/Tutor"},
                "assignmentType": {"type": "string"}
            }
        },
        "OnlineOfficeHour": {
            "type": "object",
            "properties": {
                "id": {"type": "integer", "format": "int64"},
                "tutorAssignment": {"$ref": "#/definitions/TutorAssignment"},
                "dayOfWeek": {"type": "string"},
                "startTime": {"type": "string"},
                "endTime": {"type": "string"},
                "zoomRoomLink": {"type": "string"},
                "notes": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ErrorEnvelope": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/APIError"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
