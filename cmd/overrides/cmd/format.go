package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v2"
)

const (
	formatTable = "table"
	formatYAML  = "yaml"
	formatJSON  = "json"
)

// projectRow is the listing line of a project
type projectRow struct {
	Project string   `json:"project" yaml:"project"`
	Kinds   []string `json:"kinds" yaml:"kinds"`
	Flags   []string `json:"flags,omitempty" yaml:"flags,omitempty"`
}

var projectRowTemplate = func() *template.Template {
	const listLineTemplateString = `{{.Project}} , {{join .Kinds " "}} , {{join .Flags " "}}`
	return template.Must(template.New("list line").
		Funcs(template.FuncMap{"join": strings.Join}).
		Parse(listLineTemplateString))
}

// writeFormatted writes rows in the format picked by the --output flag
func writeFormatted(w io.Writer, format string, rows []projectRow) error {
	switch format {
	case formatTable, "":
		tpl := projectRowTemplate()
		for _, row := range rows {
			if err := tpl.Execute(w, row); err != nil {
				return fmt.Errorf("executing template: %w", err)
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		return nil
	case formatYAML:
		buf, err := yaml.Marshal(rows)
		if err != nil {
			return err
		}
		_, err = w.Write(buf)
		return err
	case formatJSON:
		buf, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(rows, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(buf))
		return err
	default:
		return fmt.Errorf("unsupported output format %q: expected one of %s, %s or %s", format, formatTable, formatYAML, formatJSON)
	}
}
