package gmsaas

// Unknown is the placeholder rendered for any descriptive field missing from
// a gmsaas payload. A missing field never fails an operation; it renders as
// this placeholder instead.
const Unknown = "Unknown"

// Object is a loosely-shaped gmsaas JSON object. gmsaas does not guarantee a
// stable output shape across versions, so fields are read through tolerant
// accessors rather than decoded into rigid structs.
type Object map[string]any

// Field returns the string value of key, or Unknown when the key is absent
// or not a string. A present-but-empty string is returned as-is.
func (o Object) Field(key string) string {
	return o.FieldOr(key, Unknown)
}

// FieldOr returns the string value of key, or def when the key is absent or
// not a string.
func (o Object) FieldOr(key, def string) string {
	if s, ok := o[key].(string); ok {
		return s
	}
	return def
}

// Child returns the nested object stored under key, if any.
func (o Object) Child(key string) (Object, bool) {
	m, ok := o[key].(map[string]any)
	if !ok {
		return nil, false
	}
	return Object(m), true
}

// AsObject converts a decoded payload to an Object.
func AsObject(v any) (Object, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return Object(m), true
}

// AsList converts a decoded payload to a list of Objects. Non-object
// elements are skipped.
func AsList(v any) ([]Object, bool) {
	items, ok := v.([]any)
	if !ok {
		return nil, false
	}
	objects := make([]Object, 0, len(items))
	for _, item := range items {
		if obj, ok := AsObject(item); ok {
			objects = append(objects, obj)
		}
	}
	return objects, true
}
