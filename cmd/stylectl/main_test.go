package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
	yaml "gopkg.in/yaml.v3"
)

const legacyDocument = `{
  "fontSize": "16px",
  "marginTop": "10",
  "marginBottom": "20px",
  "responsive": {"mobile": {"fontSize": "14px"}},
  "titleStyles": {"color": "#111111"}
}`

func writeDocument(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "styles.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

func TestResolveCommand(t *testing.T) {
	file := writeDocument(t, legacyDocument)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"device slot", []string{"--device", "mobile", "--path", "fontSize"}, "14px"},
		{"tablet falls back to flat", []string{"--device", "tablet", "--path", "fontSize"}, "16px"},
		{"group flat", []string{"--device", "mobile", "--path", "titleStyles.color"}, "#111111"},
		{"explicit default", []string{"--device", "desktop", "--path", "color", "--default", "red"}, "red"},
		{"type default", []string{"--device", "desktop", "--path", "color", "--type", "button"}, "#ffffff"},
		{"unset without default", []string{"--device", "desktop", "--path", "color"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, append([]string{"resolve", file}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}

	t.Run("unknown device", func(t *testing.T) {
		_, err := run(t, "resolve", file, "--device", "watch", "--path", "fontSize")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown device")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := run(t, "resolve", filepath.Join(t.TempDir(), "nope.json"), "--device", "mobile", "--path", "fontSize")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read style document")
	})
}

func TestEffectiveCommand(t *testing.T) {
	file := writeDocument(t, legacyDocument)

	t.Run("json", func(t *testing.T) {
		out, err := run(t, "effective", file, "--device", "mobile")
		require.NoError(t, err)

		assert.Equal(t, "mobile", gjson.Get(out, "device").String())
		assert.Equal(t, "14px", gjson.Get(out, "properties.fontSize").String())
		assert.Equal(t, int64(10), gjson.Get(out, "margin.top").Int())
		assert.Equal(t, int64(20), gjson.Get(out, "margin.bottom").Int())
		assert.False(t, gjson.Get(out, "groups").Exists())
	})

	t.Run("yaml with type and width", func(t *testing.T) {
		out, err := run(t, "effective", file, "--width", "1280", "--type", "accordion", "-o", "yaml")
		require.NoError(t, err)

		var decoded struct {
			Type       string                       `yaml:"type"`
			Device     string                       `yaml:"device"`
			Properties map[string]string            `yaml:"properties"`
			Groups     map[string]map[string]string `yaml:"groups"`
			Margin     map[string]int               `yaml:"margin"`
		}
		require.NoError(t, yaml.Unmarshal([]byte(out), &decoded))

		assert.Equal(t, "accordion", decoded.Type)
		assert.Equal(t, "desktop", decoded.Device)
		assert.Equal(t, "16px", decoded.Properties["fontSize"])
		assert.Equal(t, "#111111", decoded.Groups["titleStyles"]["color"])
		assert.Contains(t, decoded.Groups, "descriptionStyles")
		assert.Equal(t, 10, decoded.Margin["top"])
	})

	t.Run("needs a device", func(t *testing.T) {
		_, err := run(t, "effective", file)
		assert.EqualError(t, err, "--device or --width is required")
	})

	t.Run("unknown output", func(t *testing.T) {
		_, err := run(t, "effective", file, "--device", "mobile", "-o", "xml")
		assert.EqualError(t, err, `unknown output format "xml"`)
	})
}

func TestSetCommand(t *testing.T) {
	t.Run("prints without touching the file", func(t *testing.T) {
		file := writeDocument(t, legacyDocument)

		out, err := run(t, "set", file, "--device", "mobile", "--path", "lineHeight", "--value", "1.4", "--number")
		require.NoError(t, err)

		assert.Equal(t, "1.4", gjson.Get(out, "responsive.mobile.lineHeight").Raw)
		assert.Equal(t, "14px", gjson.Get(out, "responsive.mobile.fontSize").String())

		data, err := os.ReadFile(file)
		require.NoError(t, err)
		assert.Equal(t, legacyDocument, string(data))
	})

	t.Run("write", func(t *testing.T) {
		file := writeDocument(t, legacyDocument)

		out, err := run(t, "set", file, "--device", "tablet", "--path", "titleStyles.color", "--value", "#222222", "--write")
		require.NoError(t, err)
		assert.Empty(t, out)

		data, err := os.ReadFile(file)
		require.NoError(t, err)
		doc := string(data)
		assert.Equal(t, "#222222", gjson.Get(doc, "titleStyles.responsive.tablet.color").String())
		assert.Equal(t, "#111111", gjson.Get(doc, "titleStyles.color").String())
		assert.True(t, gjson.Get(doc, "titleStyles.responsive.desktop").IsObject())

		entries, err := os.ReadDir(filepath.Dir(file))
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("rejects a non numeric number", func(t *testing.T) {
		file := writeDocument(t, legacyDocument)

		_, err := run(t, "set", file, "--device", "mobile", "--path", "lineHeight", "--value", "tall", "--number")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `invalid number "tall"`)
	})

	t.Run("required flags", func(t *testing.T) {
		file := writeDocument(t, legacyDocument)

		_, err := run(t, "set", file, "--device", "mobile", "--path", "lineHeight")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "value")
	})
}

func TestUnsetCommand(t *testing.T) {
	file := writeDocument(t, legacyDocument)

	_, err := run(t, "unset", file, "--device", "mobile", "--path", "fontSize", "-w")
	require.NoError(t, err)

	out, err := run(t, "resolve", file, "--device", "mobile", "--path", "fontSize")
	require.NoError(t, err)
	assert.Equal(t, "16px\n", out)
}

func TestSpacingCommands(t *testing.T) {
	file := writeDocument(t, legacyDocument)

	out, err := run(t, "spacing", "get", file, "--kind", "margin", "--device", "mobile")
	require.NoError(t, err)
	assert.Equal(t, "0px 0px 0px 0px\n", out)

	out, err = run(t, "spacing", "get", file, "--kind", "margin", "--device", "mobile", "--effective")
	require.NoError(t, err)
	assert.Equal(t, "10px 0px 20px 0px\n", out)

	_, err = run(t, "spacing", "set", file, "--kind", "margin", "--device", "mobile", "--side", "left", "--px", "500", "--write")
	require.NoError(t, err)

	expected := map[string]string{
		"desktop": "10px 0px 20px 0px",
		"tablet":  "0px 0px 0px 0px",
		"mobile":  "0px 0px 0px 200px",
	}
	for device, css := range expected {
		out, err := run(t, "spacing", "get", file, "--kind", "margin", "--device", device)
		require.NoError(t, err)
		assert.Equal(t, css, strings.TrimSpace(out), device)
	}

	t.Run("unknown side", func(t *testing.T) {
		_, err := run(t, "spacing", "set", file, "--kind", "margin", "--device", "mobile", "--side", "middle", "--px", "4")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown side")
	})
}

func TestMigrateCommand(t *testing.T) {
	file := writeDocument(t, `{"fontSize":"16px","color":"red","titleStyles":{"fontWeight":"700"}}`)

	out, err := run(t, "migrate", file)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"fontSize": "16px",
		"color": "red",
		"responsive": {"desktop": {"fontSize": "16px", "color": "red"}, "mobile": {}},
		"titleStyles": {
			"fontWeight": "700",
			"responsive": {"desktop": {"fontWeight": "700"}, "mobile": {}}
		}
	}`, out)
}
