package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/tasklist/internal/task"
)

func exportFixture(t *testing.T) []task.Task {
	t.Helper()
	sess := newTestSession(t)
	mustAdd(t, sess, "second", "")
	mustAdd(t, sess, "first", "2026-10-20")
	return sess.State().Tasks
}

func TestRunExport_JSONMatchesStoredLayout(t *testing.T) {
	tasks := exportFixture(t)

	var buf bytes.Buffer
	if err := runExport(&buf, tasks, FormatJSON); err != nil {
		t.Fatalf("runExport() error = %v", err)
	}
	decoded, err := task.Decode(buf.Bytes(), nil)
	if err != nil {
		t.Fatalf("exported JSON does not decode: %v", err)
	}
	if len(decoded) != 2 || decoded[0].Text != "first" || decoded[0].Due.String() != "2026-10-20" {
		t.Errorf("decoded = %+v", decoded)
	}

	var raw []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"id", "text", "date", "done", "createdAt"} {
		if _, ok := raw[0][key]; !ok {
			t.Errorf("exported record missing %q", key)
		}
	}
}

func TestRunExport_YAMLAndTOML(t *testing.T) {
	tasks := exportFixture(t)

	var yamlBuf bytes.Buffer
	if err := runExport(&yamlBuf, tasks, FormatYAML); err != nil {
		t.Fatalf("yaml export error = %v", err)
	}
	var fromYAML exportDoc
	if err := yaml.Unmarshal(yamlBuf.Bytes(), &fromYAML); err != nil {
		t.Fatalf("yaml does not parse: %v", err)
	}

	var tomlBuf bytes.Buffer
	if err := runExport(&tomlBuf, tasks, "TOML"); err != nil {
		t.Fatalf("toml export error = %v", err)
	}
	var fromTOML exportDoc
	if err := toml.Unmarshal(tomlBuf.Bytes(), &fromTOML); err != nil {
		t.Fatalf("toml does not parse: %v", err)
	}

	for name, doc := range map[string]exportDoc{"yaml": fromYAML, "toml": fromTOML} {
		if len(doc.Tasks) != 2 {
			t.Fatalf("%s: tasks = %d, want 2", name, len(doc.Tasks))
		}
		if doc.Tasks[0].Text != "first" || doc.Tasks[0].Date != "2026-10-20" || doc.Tasks[1].Date != "" {
			t.Errorf("%s: tasks = %+v", name, doc.Tasks)
		}
	}
}

func TestRunExport_UnknownFormat(t *testing.T) {
	err := runExport(&bytes.Buffer{}, nil, "xml")
	if err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("err = %v", err)
	}
}
