package tx

import (
	"fmt"
	"regexp"
	"strings"
)

var dirtyChars = regexp.MustCompile(`-|;|\\|\s|\.`)

//SanitizeTableName returns a sanitized and lower cased string for creating a table
func SanitizeTableName(dirty string) string {
	return strings.ToLower(dirtyChars.ReplaceAllString(dirty, ""))
}

//TableNameTemplate returns the templated cbridge table name for the table type and service
func TableNameTemplate(svcName, table string) string {
	return strings.ToLower(fmt.Sprintf("cbridge_%s_%s", SanitizeTableName(svcName), table))
}
