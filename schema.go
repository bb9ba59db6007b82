package seogap

import "strings"

// LocalBusinessTypes are the schema.org types treated as local-business
// signals for the technical gap check. The list includes the generic
// LocalBusiness type plus the service subtypes this tool targets.
var LocalBusinessTypes = []string{"LocalBusiness", "Dentist", "Plumber", "ProfessionalService"}

// SchemaHasType reports whether a parsed JSON-LD value declares the given
// schema.org @type. Matching is case-insensitive, handles @type given as a
// string or a list, and recurses into @graph containers and nested arrays.
func SchemaHasType(schema any, typeName string) bool {
	switch v := schema.(type) {
	case map[string]any:
		switch t := v["@type"].(type) {
		case string:
			if strings.EqualFold(t, typeName) {
				return true
			}
		case []any:
			for _, item := range t {
				if s, ok := item.(string); ok && strings.EqualFold(s, typeName) {
					return true
				}
			}
		}
		if graph, ok := v["@graph"].([]any); ok {
			for _, item := range graph {
				if SchemaHasType(item, typeName) {
					return true
				}
			}
		}
	case []any:
		for _, item := range v {
			if SchemaHasType(item, typeName) {
				return true
			}
		}
	}
	return false
}

// SchemaHasAnyType reports whether the value declares any of the given types.
func SchemaHasAnyType(schema any, typeNames []string) bool {
	for _, t := range typeNames {
		if SchemaHasType(schema, t) {
			return true
		}
	}
	return false
}

// schemasHaveType reports whether any block in the slice declares the type.
func schemasHaveType(schemas []any, typeName string) bool {
	for _, s := range schemas {
		if SchemaHasType(s, typeName) {
			return true
		}
	}
	return false
}

// schemasHaveAnyType reports whether any block declares any of the types.
func schemasHaveAnyType(schemas []any, typeNames []string) bool {
	for _, s := range schemas {
		if SchemaHasAnyType(s, typeNames) {
			return true
		}
	}
	return false
}
