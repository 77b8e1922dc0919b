// Package docs registers the Swagger document served at /swagger.
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
        "/api/cron/{job}": {
            "post": {
                "description": "Run a scheduled notification job. Without wait=true the job runs in the background.",
                "produces": ["application/json"],
                "tags": ["Scheduler"],
                "summary": "Run scheduled job",
                "parameters": [
                    {"type": "string", "description": "morning, evening or supervisor", "name": "job", "in": "path", "required": true},
                    {"type": "string", "description": "Cron key", "name": "key", "in": "query", "required": true},
                    {"type": "boolean", "description": "Run synchronously and return the report", "name": "wait", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Accepted or finished"},
                    "400": {"description": "Unknown job"},
                    "403": {"description": "Bad cron key"},
                    "500": {"description": "Job failed"}
                }
            }
        },
        "/api/tasks/export": {
            "get": {
                "description": "Export tasks as CSV, optionally filtered by assignee and deadline range.",
                "produces": ["text/csv"],
                "tags": ["Tasks"],
                "summary": "Export tasks",
                "parameters": [
                    {"type": "string", "description": "Cron key", "name": "k", "in": "query", "required": true},
                    {"type": "string", "description": "Assignee user id", "name": "assignee_id", "in": "query"},
                    {"type": "string", "description": "Assignee name", "name": "assignee_name", "in": "query"},
                    {"type": "string", "description": "Deadline lower bound (RFC3339)", "name": "from", "in": "query"},
                    {"type": "string", "description": "Deadline upper bound (RFC3339)", "name": "to", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "CSV file"},
                    "403": {"description": "Bad key"},
                    "500": {"description": "Store failure"}
                }
            }
        },
        "/webhook/line": {
            "post": {
                "description": "Receive LINE Messaging API events. Events are processed in the background.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["LINE"],
                "summary": "LINE webhook",
                "parameters": [
                    {"type": "string", "description": "HMAC-SHA256 of the body", "name": "X-Line-Signature", "in": "header", "required": true}
                ],
                "responses": {
                    "200": {"description": "Accepted"},
                    "400": {"description": "Malformed body"},
                    "401": {"description": "Bad signature"}
                }
            }
        },
        "/health": {"get": {"tags": ["Health"], "summary": "Health Check", "responses": {"200": {"description": "API is healthy"}}}},
        "/ready": {"get": {"tags": ["Health"], "summary": "Readiness Check", "responses": {"200": {"description": "API is ready"}}}},
        "/live": {"get": {"tags": ["Health"], "summary": "Liveness Check", "responses": {"200": {"description": "API is alive"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http", "https"},
	Title:            "LINE Task Tracker API",
	Description:      "Task assignment and follow-up over LINE, stored in a Google Sheet through Apps Script.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
