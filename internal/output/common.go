// internal/output/common.go
package output

import "strings"

// TSVHeader builds the canonical header row for text/TSV outputs from the
// report's tracked alphabet. Keep all writers on this single source of truth.
func TSVHeader(symbols []string) string {
	return "index\toffset\twidth\t" + strings.Join(symbols, "\t") + "\ttotal"
}
