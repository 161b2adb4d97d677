package content

import "github.com/iancoleman/strcase"

// Field keys travel in two casings: the repository API describes fields by
// snake_case api key, while record payloads (and the portable file) key
// values by camelCase. camelCase is canonical on the wire; snake_case exists
// only to match field definitions.

// CamelKey converts a field api key to the camelCase record key.
func CamelKey(apiKey string) string {
	return strcase.ToLowerCamel(apiKey)
}

// SnakeKey converts a camelCase record key back to the snake_case api key.
func SnakeKey(fieldKey string) string {
	return strcase.ToSnake(fieldKey)
}
