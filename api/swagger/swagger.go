package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Calview API",
        "description": "Single-user in-memory calendar state service",
        "version": "0.1.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Calendar", "description": "State store, navigation and grid queries"},
        {"name": "Events", "description": "Event CRUD, selection and modal state"},
        {"name": "Export", "description": "Agenda downloads (ICS/CSV/PDF)"}
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
                    "200": {"description": "Ready"}
                }
            }
        },
        "/api/v1/calendar/state": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Current calendar state",
                "responses": {
                    "200": {"description": "State snapshot", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/calendar/view": {
            "put": {
                "tags": ["Calendar"],
                "summary": "Switch the active view",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {
                        "type": "object",
                        "properties": {"view": {"type": "string", "enum": ["month", "week", "day"]}}
                    }}
                ],
                "responses": {
                    "200": {"description": "Updated state", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Unknown view", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/calendar/date": {
            "put": {
                "tags": ["Calendar"],
                "summary": "Anchor the visible period to a date",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {
                        "type": "object",
                        "properties": {"date": {"type": "string", "format": "date-time"}}
                    }}
                ],
                "responses": {
                    "200": {"description": "Updated state", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/calendar/navigate": {
            "post": {
                "tags": ["Calendar"],
                "summary": "Move to the previous/next period, or jump to today",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {
                        "type": "object",
                        "properties": {"direction": {"type": "string", "enum": ["prev", "next", "today"]}}
                    }}
                ],
                "responses": {
                    "200": {"description": "Updated state", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/calendar/grid/month": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Days of the month grid containing a date",
                "parameters": [
                    {"name": "date", "in": "query", "type": "string", "description": "Reference date (YYYY-MM-DD)"}
                ],
                "responses": {
                    "200": {"description": "Grid days", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/calendar/grid/week": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Days of the week grid containing a date",
                "parameters": [
                    {"name": "date", "in": "query", "type": "string", "description": "Reference date (YYYY-MM-DD)"}
                ],
                "responses": {
                    "200": {"description": "Grid days", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/calendar/days/{date}/events": {
            "get": {
                "tags": ["Calendar"],
                "summary": "Events on a day with time-grid placement",
                "parameters": [
                    {"name": "date", "in": "path", "required": true, "type": "string"},
                    {"name": "hour_height", "in": "query", "type": "number", "description": "Pixel height of one hour"}
                ],
                "responses": {
                    "200": {"description": "Placed events", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/events": {
            "post": {
                "tags": ["Events"],
                "summary": "Create an event",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EventForm"}}
                ],
                "responses": {
                    "201": {"description": "Created event", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Invalid payload", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/events/{id}": {
            "put": {
                "tags": ["Events"],
                "summary": "Update an event",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/EventForm"}}
                ],
                "responses": {
                    "200": {"description": "Updated event", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown event", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "delete": {
                "tags": ["Events"],
                "summary": "Delete an event",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Deleted (idempotent)"}
                }
            }
        },
        "/api/v1/calendar/selection": {
            "post": {
                "tags": ["Events"],
                "summary": "Select an event for editing, or clear the selection",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {
                        "type": "object",
                        "properties": {"event_id": {"type": "string", "x-nullable": true}}
                    }}
                ],
                "responses": {
                    "200": {"description": "Updated state", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/calendar/modal": {
            "put": {
                "tags": ["Events"],
                "summary": "Open or close the event modal",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {
                        "type": "object",
                        "properties": {"open": {"type": "boolean"}}
                    }}
                ],
                "responses": {
                    "200": {"description": "Updated state", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/api/v1/export/ics": {
            "get": {
                "tags": ["Export"],
                "summary": "Export events as iCalendar",
                "parameters": [
                    {"name": "month", "in": "query", "type": "string", "description": "Month filter (YYYY-MM)"}
                ],
                "responses": {
                    "200": {"description": "ICS download"}
                }
            }
        },
        "/api/v1/export/csv": {
            "get": {
                "tags": ["Export"],
                "summary": "Export events as CSV",
                "parameters": [
                    {"name": "month", "in": "query", "type": "string", "description": "Month filter (YYYY-MM)"}
                ],
                "responses": {
                    "200": {"description": "CSV download"}
                }
            }
        },
        "/api/v1/export/pdf": {
            "get": {
                "tags": ["Export"],
                "summary": "Export events as a PDF agenda",
                "parameters": [
                    {"name": "month", "in": "query", "type": "string", "description": "Month filter (YYYY-MM)"}
                ],
                "responses": {
                    "200": {"description": "PDF download"}
                }
            }
        }
    },
    "definitions": {
        "EventForm": {
            "type": "object",
            "required": ["title", "start_date", "end_date"],
            "properties": {
                "title": {"type": "string"},
                "start_date": {"type": "string", "format": "date-time"},
                "end_date": {"type": "string", "format": "date-time"},
                "description": {"type": "string"}
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
