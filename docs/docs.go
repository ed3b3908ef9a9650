// Package docs registers the OpenAPI document with swag so that
// http-swagger can serve it next to the Swagger UI.
package docs

import (
	"encoding/json"

	"github.com/emzola/bookstore/api"
	"github.com/swaggo/swag"
	"gopkg.in/yaml.v3"
)

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Title:            "Bookstore API",
	Description:      "Catalog of books, authors and categories.",
	InfoInstanceName: swag.Name,
	SwaggerTemplate:  mustJSON(api.Spec),
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}

// mustJSON converts the YAML document to the JSON text swag hands out.
func mustJSON(spec []byte) string {
	var doc map[string]any
	if err := yaml.Unmarshal(spec, &doc); err != nil {
		panic("docs: " + err.Error())
	}
	b, err := json.Marshal(doc)
	if err != nil {
		panic("docs: " + err.Error())
	}
	return string(b)
}
