// Package gen renders a Wwise ID table as Go source.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strings"
	"text/template"
	"unicode"

	"github.com/morrilet/GMTK-2022/internal/catalog"
	"github.com/morrilet/GMTK-2022/wwise"
)

const wwisePath = "github.com/morrilet/GMTK-2022/wwise"

type Options struct {
	// Package of the generated file. Outside of package wwise the types are
	// qualified and the entry table is exported as Entries.
	Package string
	// Source names the input in the generated header comment.
	Source string
}

type category struct {
	Comment string
	Type    string
	Consts  []constant
}

type constant struct {
	Category string
	GoName   string
	Name     string
	ID       wwise.UniqueID
}

type data struct {
	Source     string
	Package    string
	Import     bool
	Q          string
	TableVar   string
	Categories []category
	Entries    []constant
}

var tmpl = template.Must(template.New("ids").Parse(`// Code generated by akid from {{.Source}}. DO NOT EDIT.

package {{.Package}}
{{if .Import}}
import "` + wwisePath + `"
{{end}}
{{- range .Categories}}
// {{.Comment}}
const (
{{- range .Consts}}
	{{.GoName}} {{$.Q}}{{.Category}} = {{.ID}}
{{- end}}
)
{{end}}
var {{.TableVar}} = []{{.Q}}Entry{
{{- range .Entries}}
	{Category: {{$.Q}}{{.Category}}, Name: {{printf "%q" .Name}}, ID: {{$.Q}}UniqueID({{.GoName}})},
{{- end}}
}
`))

var (
	typeNames  = map[wwise.Category]string{wwise.Events: "EventID", wwise.Banks: "BankID", wwise.Busses: "BusID", wwise.AudioDevices: "AudioDeviceID"}
	prefixes   = map[wwise.Category]string{wwise.Events: "Event", wwise.Banks: "Bank", wwise.Busses: "Bus", wwise.AudioDevices: "AudioDevice"}
	constNames = map[wwise.Category]string{wwise.Events: "Events", wwise.Banks: "Banks", wwise.Busses: "Busses", wwise.AudioDevices: "AudioDevices"}
)

// declared are the exported names of package wwise outside ids.go.
var declared = map[string]bool{
	"UniqueID": true, "EventID": true, "BankID": true, "BusID": true, "AudioDeviceID": true,
	"Category": true, "Events": true, "Banks": true, "Busses": true, "AudioDevices": true,
	"Entry": true, "Categories": true, "ParseCategory": true,
	"Entries": true, "Lookup": true, "NameOf": true,
	"Event": true, "Bank": true, "Bus": true, "AudioDevice": true,
}

// Go writes t as a gofmt-ed Go file.
func Go(w io.Writer, t *catalog.Table, opts Options) error {
	if opts.Package == "" {
		opts.Package = "wwise"
	}
	if opts.Source == "" {
		opts.Source = "Wwise_IDs.h"
	}

	d := data{Source: opts.Source, Package: opts.Package, TableVar: "entries"}
	if opts.Package != "wwise" {
		d.Import, d.Q, d.TableVar = true, "wwise.", "Entries"
	}

	goNames := make(map[string]string)
	for _, c := range wwise.Categories() {
		entries := t.Entries(c)
		if len(entries) == 0 {
			continue
		}
		cat := category{Comment: c.String(), Type: typeNames[c]}
		for _, e := range entries {
			name := GoName(c, e.Name)
			if opts.Package == "wwise" && declared[name] {
				return fmt.Errorf("%s %s maps to Go name %s, which package wwise already declares", c, e.Name, name)
			}
			if other, ok := goNames[name]; ok {
				return fmt.Errorf("%s and %s both map to Go name %s", other, e.Name, name)
			}
			goNames[name] = e.Name
			cat.Consts = append(cat.Consts, constant{Category: cat.Type, GoName: name, Name: e.Name, ID: e.ID})
			d.Entries = append(d.Entries, constant{Category: constNames[c], GoName: name, Name: e.Name, ID: e.ID})
		}
		d.Categories = append(d.Categories, cat)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, d); err != nil {
		return fmt.Errorf("template error: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("error formatting generated source: %w", err)
	}
	if _, err := w.Write(src); err != nil {
		return fmt.Errorf("error writing generated source: %w", err)
	}
	return nil
}

// GoName turns a header identifier into a category-prefixed exported name,
// PLAY_DICE_TO_MEET_YOU becoming EventPlayDiceToMeetYou.
func GoName(c wwise.Category, ident string) string {
	var sb strings.Builder
	sb.WriteString(prefixes[c])
	upperNext := true
	for _, r := range ident {
		switch {
		case r == '_' || r == ' ' || r == '-' || r == '.':
			upperNext = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
		case upperNext:
			sb.WriteRune(unicode.ToUpper(r))
			upperNext = false
		default:
			sb.WriteRune(unicode.ToLower(r))
		}
	}
	return sb.String()
}
