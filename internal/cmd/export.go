package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/tasklist/internal/task"
)

// Export formats accepted by --format.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all tasks to stdout",
	Long: `Write all tasks to stdout in the stored layout.

JSON output is the stored collection as is and can be copied back into the
data directory. YAML and TOML wrap the list in a "tasks" key.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withEnv(cmd, func(ctx context.Context, env *appEnv) error {
			return runExport(cmd.OutOrStdout(), env.session.State().Tasks, exportFormat)
		})
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", FormatJSON, "output format: json, yaml or toml")
	rootCmd.AddCommand(exportCmd)
}

// exportRecord mirrors the stored task layout for the yaml and toml
// encoders.
type exportRecord struct {
	ID        string `yaml:"id" toml:"id"`
	Text      string `yaml:"text" toml:"text"`
	Date      string `yaml:"date" toml:"date"`
	Done      bool   `yaml:"done" toml:"done"`
	CreatedAt string `yaml:"createdAt" toml:"createdAt"`
}

type exportDoc struct {
	Tasks []exportRecord `yaml:"tasks" toml:"tasks"`
}

func runExport(w io.Writer, tasks []task.Task, format string) error {
	switch strings.ToLower(format) {
	case FormatJSON:
		data, err := task.Encode(tasks)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return err
		}
		buf.WriteByte('\n')
		_, err = buf.WriteTo(w)
		return err

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toExportDoc(tasks)); err != nil {
			return err
		}
		return enc.Close()

	case FormatTOML:
		return toml.NewEncoder(w).Encode(toExportDoc(tasks))
	}
	return fmt.Errorf("unknown format %q (want json, yaml or toml)", format)
}

func toExportDoc(tasks []task.Task) exportDoc {
	doc := exportDoc{Tasks: make([]exportRecord, 0, len(tasks))}
	for _, t := range tasks {
		doc.Tasks = append(doc.Tasks, exportRecord{
			ID:        t.ID,
			Text:      t.Text,
			Date:      t.Due.String(),
			Done:      t.Done,
			CreatedAt: t.CreatedAt.UTC().Format(task.CreatedAtLayout),
		})
	}
	return doc
}
