package webserve

import (
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"sort"

	"github.com/dustin/go-humanize"
)

var listingTemplate = template.Must(template.New("listing").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Index of /{{.Name}}</title></head>
<body>
<h1>Index of /{{.Name}}</h1>
<table>
<tr><th align="left">Name</th><th align="right">Size</th><th align="right">Modified</th></tr>
{{range .Entries}}<tr><td><a href="{{.Href}}">{{.Label}}</a></td><td align="right">{{.Size}}</td><td align="right">{{.Modified}}</td></tr>
{{end}}</table>
</body>
</html>
`))

type listingEntry struct {
	Href     string
	Label    string
	Size     string
	Modified string
}

// serveListing renders a directory that has no index.html. name is a
// cleaned fs path with a trailing-slash request URL.
func (h *Handler) serveListing(res http.ResponseWriter, name string) {
	entries, err := fs.ReadDir(h.fs, name)
	if err != nil {
		slog.Error("read dir failed", "path", name, "error", err)
		http.Error(res, "500 internal server error", http.StatusInternalServerError)
		return
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	rows := make([]listingEntry, 0, len(entries))
	for _, e := range entries {
		row := listingEntry{Href: e.Name(), Label: e.Name(), Size: "-"}
		if e.IsDir() {
			row.Href += "/"
			row.Label += "/"
		}
		if info, err := e.Info(); err == nil {
			row.Modified = info.ModTime().Format("2006-01-02 15:04")
			if !e.IsDir() {
				row.Size = humanize.IBytes(uint64(info.Size()))
			}
		}
		rows = append(rows, row)
	}
	dir := name
	if dir == "." {
		dir = ""
	}
	res.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := listingTemplate.Execute(res, struct {
		Name    string
		Entries []listingEntry
	}{Name: dir, Entries: rows}); err != nil {
		slog.Error("render listing failed", "path", name, "error", err)
	}
}
