package loader

import "strings"

// DeepMerge recursively merges src into dst.
// Values in src override values in dst.
// Maps are merged recursively; other types, including arrays, are replaced.
func DeepMerge(dst, src map[string]any) map[string]any {
	if dst == nil {
		dst = make(map[string]any)
	}

	for key, srcVal := range src {
		srcMap, srcIsMap := srcVal.(map[string]any)
		dstMap, dstIsMap := dst[key].(map[string]any)
		if srcIsMap && dstIsMap {
			dst[key] = DeepMerge(dstMap, srcMap)
		} else {
			dst[key] = srcVal
		}
	}

	return dst
}

// SetPath sets a value in a nested document using a dot-separated path,
// creating intermediate maps as needed.
func SetPath(doc map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := doc

	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}

	current[parts[len(parts)-1]] = value
}

// GetPath returns the value at a dot-separated path.
func GetPath(doc map[string]any, path string) (any, bool) {
	parts := strings.Split(path, ".")
	var current any = doc

	for _, part := range parts {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[part]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Walk calls fn for every leaf value in doc with its dot-separated path.
// Arrays are leaves.
func Walk(doc map[string]any, fn func(path string, value any)) {
	walk("", doc, fn)
}

func walk(prefix string, doc map[string]any, fn func(string, any)) {
	for key, val := range doc {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		if m, ok := val.(map[string]any); ok {
			walk(path, m, fn)
			continue
		}
		fn(path, val)
	}
}
