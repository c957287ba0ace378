package maputil

// GetField returns the value of the given key, or the default value if the key
// is absent or maps to the empty string.
func GetField(data map[string]string, key string, defaultValue string) string {
	if data == nil {
		return defaultValue
	}

	if value, ok := data[key]; ok && value != "" {
		return value
	}

	return defaultValue
}

// MergeMap merges the given maps into a new one, later maps win on conflicts.
func MergeMap(maps ...map[string]string) map[string]string {
	res := map[string]string{}
	for _, m := range maps {
		for k, v := range m {
			res[k] = v
		}
	}

	return res
}
