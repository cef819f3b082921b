package ingest

import (
	"path"
	"regexp"
	"strings"
)

// uuidPattern matches a canonical 8-4-4-4-12 hex identifier embedded in a
// filename, as produced by ObjectKey.
var uuidPattern = regexp.MustCompile(`[a-fA-F0-9]{8}-[a-fA-F0-9]{4}-[a-fA-F0-9]{4}-[a-fA-F0-9]{4}-[a-fA-F0-9]{12}`)

// DeriveTitle turns a raw object key or filename into a display title:
// directory components and extension are dropped, embedded unique
// identifiers are stripped, and separator characters become spaces.
func DeriveTitle(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	name = strings.TrimSuffix(name, path.Ext(name))
	name = uuidPattern.ReplaceAllString(name, "")
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	return strings.Join(strings.Fields(name), " ")
}
