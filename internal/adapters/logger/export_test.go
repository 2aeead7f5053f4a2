package logger

var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)

func Messages(entries []errorEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.message
	}
	return out
}

func Metadata(entries []errorEntry) []map[string]any {
	out := make([]map[string]any, len(entries))
	for i, e := range entries {
		out[i] = e.metadata
	}
	return out
}
