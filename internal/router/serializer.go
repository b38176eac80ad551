package router

import (
	"encoding/json"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// Serializer encodes responses with jsoniter. Request bodies go through
// encoding/json so type mismatches surface as *json.UnmarshalTypeError
// carrying the field path.
type Serializer struct{}

// Serialize implements echo.JSONSerializer.
func (Serializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := jsonAPI.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

// Deserialize implements echo.JSONSerializer.
func (Serializer) Deserialize(c echo.Context, i interface{}) error {
	return json.NewDecoder(c.Request().Body).Decode(i)
}
