package export

import "strings"

const FilePrefix = "Colcal_Quotation_"

// FileName is the download name for a quotation. Slashes in the number are
// replaced so the result is a single path segment.
func FileName(number string) string {
	name := strings.NewReplacer("/", "-", "\\", "-").Replace(strings.TrimSpace(number))
	if name == "" {
		name = "draft"
	}
	return FilePrefix + name + ".pdf"
}
