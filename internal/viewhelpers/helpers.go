// internal/viewhelpers/helpers.go
//
// Template helpers.  Installed by internal/view before templates are
// parsed, so every page can call:
//
//	{{ date .PublishedAt }}  {{ isoDate .PublishedAt }}
//	{{ device .Info }}       {{ if isBot .Info }}crawler{{ end }}
package viewhelpers

import (
	"html/template"
	"time"

	"github.com/yanizio/singlecat/internal/requestinfo"
)

// FuncMap returns date and UA helpers.  The UA helpers accept a nil
// *RequestInfo.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"date":    func(t time.Time) string { return t.Format("January 2, 2006") },
		"isoDate": func(t time.Time) string { return t.UTC().Format(time.RFC3339) },
		"device": func(i *requestinfo.RequestInfo) string {
			if i == nil {
				return ""
			}
			return i.UA.Device
		},
		"isBot": func(i *requestinfo.RequestInfo) bool { return i != nil && i.UA.IsBot },
	}
}
