// Package docs registers the OpenAPI description served at /swagger.
// It mirrors the @Router and @Success annotations on the handlers; the router
// tests fail when a route or response type is missing here.
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
        "/auth/register": {
            "post": {
                "tags": ["auth"],
                "summary": "Register a new user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.RegisterRequest"}}],
                "responses": {
                    "201": {"description": "User registered and token generated", "schema": {"$ref": "#/definitions/handlers.AuthResponse"}},
                    "400": {"description": "Invalid input or email already registered", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "tags": ["auth"],
                "summary": "Login user",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.LoginRequest"}}],
                "responses": {
                    "200": {"description": "User authenticated and token generated", "schema": {"$ref": "#/definitions/handlers.AuthResponse"}},
                    "400": {"description": "Invalid input or credentials", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/auth/upload-image": {
            "post": {
                "tags": ["auth"],
                "summary": "Upload profile image",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "parameters": [{"in": "formData", "name": "image", "type": "file", "required": true}],
                "responses": {
                    "200": {"description": "Image stored", "schema": {"$ref": "#/definitions/handlers.UploadResponse"}},
                    "400": {"description": "Missing, oversized or unsupported file", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/auth/getUser": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Get user profile",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "User profile", "schema": {"$ref": "#/definitions/models.User"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/auth/update-profile": {
            "put": {
                "security": [{"BearerAuth": []}],
                "tags": ["auth"],
                "summary": "Update user profile",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.UpdateProfileRequest"}}],
                "responses": {
                    "200": {"description": "Profile updated", "schema": {"$ref": "#/definitions/handlers.ProfileResponse"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/income/add": {"post": {"security": [{"BearerAuth": []}], "tags": ["records"], "summary": "Add an income record", "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.RecordRequest"}}], "responses": {"201": {"description": "Created record", "schema": {"$ref": "#/definitions/models.Transaction"}}, "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}},
        "/expense/add": {"post": {"security": [{"BearerAuth": []}], "tags": ["records"], "summary": "Add an expense record", "parameters": [{"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.RecordRequest"}}], "responses": {"201": {"description": "Created record", "schema": {"$ref": "#/definitions/models.Transaction"}}, "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}},
        "/income/get": {"get": {"security": [{"BearerAuth": []}], "tags": ["records"], "summary": "List income records", "parameters": [{"$ref": "#/parameters/fromDate"}, {"$ref": "#/parameters/toDate"}, {"$ref": "#/parameters/category"}, {"$ref": "#/parameters/page"}, {"$ref": "#/parameters/pageSize"}], "responses": {"200": {"description": "Records", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Transaction"}}}}}},
        "/expense/get": {"get": {"security": [{"BearerAuth": []}], "tags": ["records"], "summary": "List expense records", "parameters": [{"$ref": "#/parameters/fromDate"}, {"$ref": "#/parameters/toDate"}, {"$ref": "#/parameters/category"}, {"$ref": "#/parameters/page"}, {"$ref": "#/parameters/pageSize"}], "responses": {"200": {"description": "Records", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Transaction"}}}}}},
        "/income/breakdown": {"get": {"security": [{"BearerAuth": []}], "tags": ["records"], "summary": "Income totals per source", "responses": {"200": {"description": "Category totals", "schema": {"type": "array", "items": {"$ref": "#/definitions/services.CategoryTotal"}}}}}},
        "/expense/breakdown": {"get": {"security": [{"BearerAuth": []}], "tags": ["records"], "summary": "Expense totals per category", "responses": {"200": {"description": "Category totals", "schema": {"type": "array", "items": {"$ref": "#/definitions/services.CategoryTotal"}}}}}},
        "/income/{id}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["records"], "summary": "Update an income record", "parameters": [{"$ref": "#/parameters/id"}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.RecordRequest"}}], "responses": {"200": {"description": "Updated record", "schema": {"$ref": "#/definitions/models.Transaction"}}, "403": {"description": "Record belongs to another user", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}, "404": {"description": "Record not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["records"], "summary": "Delete an income record", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "Record deleted", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}, "403": {"description": "Record belongs to another user", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}, "404": {"description": "Record not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}
        },
        "/expense/{id}": {
            "put": {"security": [{"BearerAuth": []}], "tags": ["records"], "summary": "Update an expense record", "parameters": [{"$ref": "#/parameters/id"}, {"in": "body", "name": "request", "required": true, "schema": {"$ref": "#/definitions/handlers.RecordRequest"}}], "responses": {"200": {"description": "Updated record", "schema": {"$ref": "#/definitions/models.Transaction"}}, "403": {"description": "Record belongs to another user", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}, "404": {"description": "Record not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}},
            "delete": {"security": [{"BearerAuth": []}], "tags": ["records"], "summary": "Delete an expense record", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "Record deleted", "schema": {"$ref": "#/definitions/handlers.MessageResponse"}}, "403": {"description": "Record belongs to another user", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}, "404": {"description": "Record not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}}}
        },
        "/income/downloadexcel": {"get": {"security": [{"BearerAuth": []}], "tags": ["records"], "summary": "Download income as Excel", "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"], "responses": {"200": {"description": "Workbook", "schema": {"type": "file"}}}}},
        "/expense/downloadexcel": {"get": {"security": [{"BearerAuth": []}], "tags": ["records"], "summary": "Download expenses as Excel", "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"], "responses": {"200": {"description": "Workbook", "schema": {"type": "file"}}}}},
        "/income/downloadpdf": {"get": {"security": [{"BearerAuth": []}], "tags": ["records"], "summary": "Download income as PDF", "produces": ["application/pdf"], "responses": {"200": {"description": "Statement", "schema": {"type": "file"}}}}},
        "/expense/downloadpdf": {"get": {"security": [{"BearerAuth": []}], "tags": ["records"], "summary": "Download expenses as PDF", "produces": ["application/pdf"], "responses": {"200": {"description": "Statement", "schema": {"type": "file"}}}}},
        "/dashboard": {"get": {"security": [{"BearerAuth": []}], "tags": ["dashboard"], "summary": "Dashboard summary", "produces": ["application/json"], "responses": {"200": {"description": "Summary", "schema": {"$ref": "#/definitions/services.DashboardSummary"}}}}},
        "/dashboard/analytics": {"get": {"security": [{"BearerAuth": []}], "tags": ["dashboard"], "summary": "Dashboard analytics", "produces": ["application/json"], "responses": {"200": {"description": "Analytics", "schema": {"$ref": "#/definitions/services.DashboardAnalytics"}}}}}
    },
    "parameters": {
        "id": {"in": "path", "name": "id", "type": "string", "required": true, "description": "Record ID"},
        "fromDate": {"in": "query", "name": "from_date", "type": "string", "description": "Earliest date (YYYY-MM-DD)"},
        "toDate": {"in": "query", "name": "to_date", "type": "string", "description": "Latest date (YYYY-MM-DD)"},
        "category": {"in": "query", "name": "category", "type": "string", "description": "Exact category or source"},
        "page": {"in": "query", "name": "page", "type": "integer", "description": "Page number"},
        "pageSize": {"in": "query", "name": "page_size", "type": "integer", "description": "Page size"}
    },
    "definitions": {
        "handlers.RegisterRequest": {
            "type": "object",
            "required": ["email", "fullName", "password"],
            "properties": {
                "fullName": {"type": "string", "maxLength": 100},
                "email": {"type": "string"},
                "password": {"type": "string", "minLength": 8, "maxLength": 128},
                "profileImageUrl": {"type": "string"}
            }
        },
        "handlers.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {"email": {"type": "string"}, "password": {"type": "string"}}
        },
        "handlers.UpdateProfileRequest": {
            "type": "object",
            "properties": {"fullName": {"type": "string"}, "profileImageUrl": {"type": "string"}}
        },
        "handlers.AuthResponse": {
            "type": "object",
            "properties": {"id": {"type": "string"}, "token": {"type": "string"}, "user": {"$ref": "#/definitions/models.User"}}
        },
        "handlers.ProfileResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "user": {"$ref": "#/definitions/models.User"}}
        },
        "handlers.UploadResponse": {
            "type": "object",
            "properties": {"imageUrl": {"type": "string"}}
        },
        "handlers.RecordRequest": {
            "type": "object",
            "required": ["amount", "date"],
            "properties": {
                "icon": {"type": "string"},
                "source": {"type": "string"},
                "category": {"type": "string"},
                "amount": {"type": "number"},
                "date": {"type": "string", "example": "2024-06-15"}
            }
        },
        "handlers.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "error": {"type": "string"}}
        },
        "models.User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "fullName": {"type": "string"},
                "email": {"type": "string"},
                "profileImageUrl": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "models.Transaction": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "user_id": {"type": "string"},
                "icon": {"type": "string"},
                "category": {"type": "string"},
                "amount": {"type": "number"},
                "date": {"type": "string"},
                "type": {"type": "string", "enum": ["income", "expense"]},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "services.CategoryTotal": {
            "type": "object",
            "properties": {"category": {"type": "string"}, "total": {"type": "number"}, "count": {"type": "integer"}}
        },
        "services.WindowedRecords": {
            "type": "object",
            "properties": {
                "total": {"type": "number"},
                "transactions": {"type": "array", "items": {"$ref": "#/definitions/models.Transaction"}}
            }
        },
        "services.DashboardSummary": {
            "type": "object",
            "properties": {
                "totalBalance": {"type": "number"},
                "totalIncome": {"type": "number"},
                "totalExpenses": {"type": "number"},
                "last30DaysExpenses": {"$ref": "#/definitions/services.WindowedRecords"},
                "last60DaysIncome": {"$ref": "#/definitions/services.WindowedRecords"},
                "recentTransactions": {"type": "array", "items": {"$ref": "#/definitions/models.Transaction"}}
            }
        },
        "analytics.CategoryBucket": {
            "type": "object",
            "properties": {"category": {"type": "string"}, "amount": {"type": "number"}, "count": {"type": "integer"}, "percentage": {"type": "number"}}
        },
        "analytics.PeriodBucket": {
            "type": "object",
            "properties": {"period": {"type": "string"}, "year": {"type": "integer"}, "month": {"type": "integer"}, "totalAmount": {"type": "number"}, "transactionCount": {"type": "integer"}}
        },
        "analytics.PeriodOverview": {
            "type": "object",
            "properties": {
                "granularity": {"type": "string", "enum": ["monthly", "yearly"]},
                "buckets": {"type": "array", "items": {"$ref": "#/definitions/analytics.PeriodBucket"}},
                "currentPeriod": {"type": "number"},
                "previousPeriod": {"type": "number"},
                "change": {"type": "number"},
                "changePercent": {"type": "number"},
                "direction": {"type": "string", "enum": ["increase", "decrease"]}
            }
        },
        "analytics.TrendSummary": {
            "type": "object",
            "properties": {"totalIncome": {"type": "number"}, "totalExpenses": {"type": "number"}, "netSavings": {"type": "number"}, "savingsRatePercent": {"type": "number"}, "trendDirection": {"type": "string"}}
        },
        "analytics.NetPoint": {
            "type": "object",
            "properties": {"period": {"type": "string"}, "income": {"type": "number"}, "expenses": {"type": "number"}, "net": {"type": "number"}}
        },
        "services.MonthlyTrend": {
            "type": "object",
            "properties": {"period": {"type": "string"}, "year": {"type": "integer"}, "month": {"type": "integer"}, "totalExpenses": {"type": "number"}, "transactionCount": {"type": "integer"}}
        },
        "services.SpendingOverview": {
            "type": "object",
            "properties": {"monthly": {"$ref": "#/definitions/analytics.PeriodOverview"}, "yearly": {"$ref": "#/definitions/analytics.PeriodOverview"}}
        },
        "services.IncomeVsExpense": {
            "type": "object",
            "properties": {"summary": {"$ref": "#/definitions/analytics.TrendSummary"}, "series": {"type": "array", "items": {"$ref": "#/definitions/analytics.NetPoint"}}}
        },
        "services.DashboardAnalytics": {
            "type": "object",
            "properties": {
                "allIncome": {"type": "array", "items": {"$ref": "#/definitions/models.Transaction"}},
                "allExpenses": {"type": "array", "items": {"$ref": "#/definitions/models.Transaction"}},
                "last12MonthsIncome": {"type": "array", "items": {"$ref": "#/definitions/models.Transaction"}},
                "last12MonthsExpenses": {"type": "array", "items": {"$ref": "#/definitions/models.Transaction"}},
                "categoryBreakdown": {"type": "array", "items": {"$ref": "#/definitions/analytics.CategoryBucket"}},
                "incomeBreakdown": {"type": "array", "items": {"$ref": "#/definitions/analytics.CategoryBucket"}},
                "monthlyTrends": {"type": "array", "items": {"$ref": "#/definitions/services.MonthlyTrend"}},
                "spendingOverview": {"$ref": "#/definitions/services.SpendingOverview"},
                "incomeVsExpense": {"$ref": "#/definitions/services.IncomeVsExpense"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Spendwise API",
	Description:      "Spendwise tracks personal income and expenses and reports balances, trends and category breakdowns.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
