// Package docs registra en swag la especificación OpenAPI que sirve /swagger.
// Se mantiene a mano a partir de los comentarios godoc de los handlers.
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
        "/animals": {
            "get": {
                "tags": ["animals"],
                "summary": "Listar animales (o buscar por nombre)",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "Nombre a buscar (case-insensitive)", "name": "name", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/animals.RecordList"}},
                    "404": {"description": "animal not found", "schema": {"type": "string"}}
                }
            },
            "post": {
                "tags": ["animals"],
                "summary": "Registrar un animal",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"description": "kind + atributos", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/animals.Record"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/animals.Record"}},
                    "400": {"description": "invalid json / kind inválido", "schema": {"type": "string"}}
                }
            }
        },
        "/animals/{animalID}": {
            "get": {
                "tags": ["animals"],
                "summary": "Obtener animal por id",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "animalID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/animals.Record"}},
                    "404": {"description": "animal not found", "schema": {"type": "string"}}
                }
            }
        },
        "/health-updates": {
            "post": {
                "tags": ["animals"],
                "summary": "Actualizar estado de salud por nombre",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/shelter.healthUpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/animals.Record"}},
                    "404": {"description": "animal not found", "schema": {"type": "string"}}
                }
            }
        },
        "/adopters": {
            "post": {
                "tags": ["adopters"],
                "summary": "Registrar adoptante",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/adopters.createAdopterRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/adopters.AdopterResponse"}}
                }
            }
        },
        "/adopters/{adopterID}/animals": {
            "get": {
                "tags": ["adopters"],
                "summary": "Animales adoptados por un adoptante",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "adopterID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/animals.RecordList"}},
                    "404": {"description": "adopter not found", "schema": {"type": "string"}}
                }
            }
        },
        "/adoptions": {
            "post": {
                "tags": ["adoptions"],
                "summary": "Adoptar un animal por nombre",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/shelter.adoptionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/animals.Record"}},
                    "404": {"description": "animal not found / adopter not found", "schema": {"type": "string"}},
                    "409": {"description": "animal already adopted", "schema": {"type": "string"}}
                }
            }
        },
        "/staff/{staffID}/tasks": {
            "post": {
                "tags": ["staff"],
                "summary": "Asignar tarea",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "name": "staffID", "in": "path", "required": true},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/staff.assignTaskRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/staff.MemberResponse"}},
                    "404": {"description": "staff member not found", "schema": {"type": "string"}}
                }
            }
        }
    },
    "definitions": {
        "animals.Record": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "kind": {"type": "string", "enum": ["Dog", "Cat", "Bird"]},
                "name": {"type": "string"},
                "age": {"type": "integer"},
                "health_status": {"type": "string"},
                "adopted": {"type": "boolean"},
                "status": {"type": "string", "enum": ["Available", "Adopted"]},
                "summary": {"type": "string"},
                "breed": {"type": "string"},
                "trained": {"type": "boolean"},
                "color": {"type": "string"},
                "indoor": {"type": "boolean"},
                "wing_span": {"type": "number"},
                "can_fly": {"type": "boolean"}
            }
        },
        "animals.RecordList": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/animals.Record"}},
                "empty": {"type": "boolean"}
            }
        },
        "adopters.createAdopterRequest": {
            "type": "object",
            "properties": {
                "adopter_id": {"type": "integer"},
                "name": {"type": "string"},
                "contact_info": {"type": "string"}
            }
        },
        "adopters.AdopterResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "adopter_id": {"type": "integer"},
                "name": {"type": "string"},
                "contact_info": {"type": "string"},
                "animal_ids": {"type": "array", "items": {"type": "string"}},
                "created_at": {"type": "string"}
            }
        },
        "shelter.adoptionRequest": {
            "type": "object",
            "properties": {
                "adopter": {"type": "string"},
                "animal_name": {"type": "string"}
            }
        },
        "shelter.healthUpdateRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "health_status": {"type": "string"}
            }
        },
        "staff.assignTaskRequest": {
            "type": "object",
            "properties": {
                "task": {"type": "string"}
            }
        },
        "staff.MemberResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "staff_id": {"type": "integer"},
                "name": {"type": "string"},
                "role": {"type": "string"},
                "tasks": {"type": "array", "items": {"type": "string"}},
                "created_at": {"type": "string"}
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
	Title:            "Animal Shelter API",
	Description:      "Registro de animales, adopciones y tareas del personal del refugio.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
