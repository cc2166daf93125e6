package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVarsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "depot.tfvars")

	content := `
# storage settings
a = "x"
b = [ "1", "2" ]
c = 10
d = 1.5
bare = east-us-1
multiline = [
  "alpha",
  "beta",
]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	vars, err := ParseVarsFile(path)
	require.NoError(t, err)

	assert.Equal(t, "x", vars["a"])
	assert.Equal(t, []string{"1", "2"}, vars["b"])
	assert.Equal(t, int64(10), vars["c"])
	assert.Equal(t, 1.5, vars["d"])
	assert.Equal(t, "east-us-1", vars["bare"])
	assert.Equal(t, []string{"alpha", "beta"}, vars["multiline"])
}

func TestParseVarsFileMissing(t *testing.T) {
	vars, err := ParseVarsFile(filepath.Join(t.TempDir(), "nope.tfvars"))

	assert.Error(t, err)
	assert.Nil(t, vars)
}

func TestParseVarsMalformedLines(t *testing.T) {
	vars := parseVars("no equals here\n= nameless\nok = \"fine\"\nbad name = \"skipped\"\n")

	assert.Equal(t, Vars{"ok": "fine"}, vars)
}

func TestVarsAccessors(t *testing.T) {
	vars := Vars{
		"s": "text",
		"n": int64(7),
		"f": 2.5,
		"l": []string{"a"},
	}

	assert.Equal(t, "text", vars.Str("s", "def"))
	assert.Equal(t, "def", vars.Str("missing", "def"))
	assert.Equal(t, "def", vars.Str("n", "def"), "non-string falls back")

	assert.Equal(t, 7, vars.Int("n", 0))
	assert.Equal(t, 3, vars.Int("f", 3), "float does not coerce to int")
	assert.Equal(t, 3, vars.Int("missing", 3))

	assert.Equal(t, []string{"a"}, vars.Strings("l", nil))
	assert.Nil(t, vars.Strings("missing", nil))
}
