package utils

import (
	"fmt"
	"reflect"
	"strings"
)

func GetFields(t any) []reflect.StructField {
	typeOf := reflect.TypeOf(t)
	if typeOf.Kind() == reflect.Pointer {
		typeOf = typeOf.Elem()
	}
	result := make([]reflect.StructField, 0, typeOf.NumField())
	for i := 0; i < typeOf.NumField(); i++ {
		result = append(result, typeOf.Field(i))
	}
	return result
}

// ParquetTagToKeyValue splits "name=id, type=INT32" into its properties.
func ParquetTagToKeyValue(tag string) (map[string]string, error) {
	result := make(map[string]string)
	if strings.TrimSpace(tag) == "" {
		return result, nil
	}
	for _, entry := range strings.Split(tag, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(entry), "=")
		if !ok {
			return nil, fmt.Errorf("malformed parquet tag entry %q", entry)
		}
		result[key] = value
	}
	return result, nil
}

// ParquetColumnNames lists the parquet column name of every field of t, in
// declaration order.
func ParquetColumnNames(t any) ([]string, error) {
	var names []string
	for _, field := range GetFields(t) {
		properties, err := ParquetTagToKeyValue(field.Tag.Get("parquet"))
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
		name, ok := properties["name"]
		if !ok {
			return nil, fmt.Errorf("field %s has no parquet name", field.Name)
		}
		names = append(names, name)
	}
	return names, nil
}
