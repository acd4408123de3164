package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "LMS Content API",
        "description": "Authoring backend for lesson content, media library and timing-synchronized line editing",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Login and session"},
        {"name": "Content", "description": "Content document authoring"},
        {"name": "Comments", "description": "Lesson comments and replies"},
        {"name": "Reactions", "description": "Lesson reactions"},
        {"name": "Uploads", "description": "Media uploads"},
        {"name": "Library", "description": "Uploaded media library"}
    ],
    "paths": {
        "/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate user",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/auth/me": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Current user profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/content": {
            "get": {
                "tags": ["Content"],
                "summary": "List content documents",
                "parameters": [
                    {"name": "topicId", "in": "query", "type": "string"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Content"],
                "summary": "Create content document",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateContentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/content/{id}": {
            "get": {
                "tags": ["Content"],
                "summary": "Get content document",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found"}
                }
            },
            "delete": {
                "tags": ["Content"],
                "summary": "Delete content document",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Deleted"}
                }
            }
        },
        "/content/update/{id}": {
            "put": {
                "tags": ["Content"],
                "summary": "Replace content document",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateContentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation failure"}
                }
            }
        },
        "/content/{id}/reorder": {
            "post": {
                "tags": ["Content"],
                "summary": "Move a lesson to a new position",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ReorderRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/content/{id}/lesson/{index}/reorder": {
            "post": {
                "tags": ["Content"],
                "summary": "Move a sub-heading within a lesson",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "index", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ReorderRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/content/{id}/lesson/{index}/subheading/{subIndex}/detect-lines": {
            "post": {
                "tags": ["Content"],
                "summary": "Re-detect display lines and realign timings",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "index", "in": "path", "required": true, "type": "integer"},
                    {"name": "subIndex", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/content/{id}/export": {
            "get": {
                "tags": ["Content"],
                "summary": "Export document as CSV or PDF",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File"}
                }
            }
        },
        "/content/{id}/lesson/{index}/comment": {
            "get": {
                "tags": ["Comments"],
                "summary": "List lesson comments",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "index", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Comments"],
                "summary": "Add lesson comment",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "index", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddCommentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/content/{id}/lesson/{index}/comment/{commentIndex}": {
            "delete": {
                "tags": ["Comments"],
                "summary": "Delete lesson comment",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "index", "in": "path", "required": true, "type": "integer"},
                    {"name": "commentIndex", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/content/{id}/lesson/{index}/comment/{commentIndex}/reply": {
            "post": {
                "tags": ["Comments"],
                "summary": "Reply to a lesson comment",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "index", "in": "path", "required": true, "type": "integer"},
                    {"name": "commentIndex", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddReplyRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/content/{id}/lesson/{index}/reaction": {
            "get": {
                "tags": ["Reactions"],
                "summary": "List lesson reactions",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "index", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Reactions"],
                "summary": "Add lesson reaction",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "index", "in": "path", "required": true, "type": "integer"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddReactionRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/content/{id}/lesson/{index}/reaction/{reactionIndex}": {
            "delete": {
                "tags": ["Reactions"],
                "summary": "Delete lesson reaction",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "index", "in": "path", "required": true, "type": "integer"},
                    {"name": "reactionIndex", "in": "path", "required": true, "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/uploads": {
            "post": {
                "tags": ["Uploads"],
                "summary": "Upload a media file",
                "consumes": ["multipart/form-data"],
                "parameters": [
                    {"name": "kind", "in": "formData", "required": true, "type": "string", "enum": ["audio", "video", "image", "document"]},
                    {"name": "title", "in": "formData", "type": "string"},
                    {"name": "file", "in": "formData", "required": true, "type": "file"}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "413": {"description": "File too large"},
                    "415": {"description": "Unsupported media type"}
                }
            }
        },
        "/library": {
            "get": {
                "tags": ["Library"],
                "summary": "List library items",
                "parameters": [
                    {"name": "kind", "in": "query", "type": "string"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "page", "in": "query", "type": "integer"},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/library/{id}": {
            "delete": {
                "tags": ["Library"],
                "summary": "Delete a library item",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Deleted"}
                }
            }
        },
        "/library/{id}/download-url": {
            "get": {
                "tags": ["Library"],
                "summary": "Issue a signed download URL",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/library/download": {
            "get": {
                "tags": ["Library"],
                "summary": "Redeem a signed download token",
                "parameters": [
                    {"name": "token", "in": "query", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File"},
                    "401": {"description": "Invalid or expired token"}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "CreateContentRequest": {
            "type": "object",
            "required": ["topicId", "title", "description"],
            "properties": {
                "topicId": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "fileType": {"type": "string"},
                "filePaths": {"type": "array", "items": {"type": "string"}},
                "lessons": {"type": "array", "items": {"$ref": "#/definitions/LessonPayload"}}
            }
        },
        "UpdateContentRequest": {
            "type": "object",
            "required": ["title", "description", "lessons"],
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "fileType": {"type": "string"},
                "filePaths": {"type": "array", "items": {"type": "string"}},
                "lessons": {"type": "array", "items": {"$ref": "#/definitions/LessonPayload"}}
            }
        },
        "LessonPayload": {
            "type": "object",
            "properties": {
                "title": {"type": "string"},
                "audioUrl": {"type": "string"},
                "videoUrl": {"type": "string"},
                "imageUrl": {"type": "string"},
                "subHeadings": {"type": "array", "items": {"$ref": "#/definitions/SubHeadingPayload"}}
            }
        },
        "SubHeadingPayload": {
            "type": "object",
            "properties": {
                "dragKey": {"type": "string"},
                "text": {"type": "string"},
                "question": {"type": "string"},
                "expectedAnswer": {"type": "string"},
                "hint": {"type": "string"},
                "comment": {"type": "string"},
                "attachmentUrl": {"type": "string"},
                "mcqQuestions": {"type": "array", "items": {"type": "object"}},
                "timingArray": {"type": "array", "items": {"type": "number"}}
            }
        },
        "ReorderRequest": {
            "type": "object",
            "properties": {
                "from": {"type": "integer"},
                "to": {"type": "integer"},
                "activeIndex": {"type": "integer"}
            }
        },
        "AddCommentRequest": {
            "type": "object",
            "required": ["userId", "userType", "text"],
            "properties": {
                "userId": {"type": "string"},
                "userType": {"type": "string"},
                "text": {"type": "string"}
            }
        },
        "AddReplyRequest": {
            "type": "object",
            "required": ["userId", "userType", "text"],
            "properties": {
                "userId": {"type": "string"},
                "userType": {"type": "string"},
                "text": {"type": "string"}
            }
        },
        "AddReactionRequest": {
            "type": "object",
            "required": ["userId", "userType", "emoji"],
            "properties": {
                "userId": {"type": "string"},
                "userType": {"type": "string"},
                "emoji": {"type": "string"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
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
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
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
