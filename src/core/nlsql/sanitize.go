package nlsql

import "strings"

var sqlKeywords = []string{"SELECT", "INSERT", "UPDATE", "DELETE", "CREATE"}

// SanitizeSQL strips the markdown code fences and language tags models wrap
// around generated queries.
func SanitizeSQL(response string) string {
	cleaned := strings.TrimSpace(response)
	cleaned = strings.ReplaceAll(cleaned, "```sql", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	// Models sometimes prefix the bare query with a language tag.
	cleaned = strings.TrimPrefix(cleaned, "sql")
	cleaned = strings.TrimPrefix(cleaned, "SQL")

	return strings.TrimSpace(cleaned)
}

// ValidateSQL reports whether the string contains at least one SQL statement
// keyword. This is a sanity check on model output, not an injection guard.
func ValidateSQL(query string) bool {
	upper := strings.ToUpper(query)
	for _, keyword := range sqlKeywords {
		if strings.Contains(upper, keyword) {
			return true
		}
	}
	return false
}
