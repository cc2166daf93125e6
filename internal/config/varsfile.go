package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Vars is the raw result of parsing a declarative variables file.
// Values are one of: string, int64, float64, []string.
type Vars map[string]any

// ParseVarsFile reads a flat `name = value` variables file (terraform.tfvars
// style) and returns the parsed assignments.
//
// Value forms:
//   - quoted string:            name = "value"
//   - list of quoted strings:   name = ["a", "b"] (may span lines)
//   - bare token: parsed as int64 when it has no decimal point and parses
//     cleanly, else float64 when it parses cleanly, else kept as a raw string.
func ParseVarsFile(path string) (Vars, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vars file: %w", err)
	}
	return parseVars(string(content)), nil
}

func parseVars(content string) Vars {
	vars := Vars{}

	lines := strings.Split(content, "\n")
	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		name, raw, ok := strings.Cut(line, "=")
		name = strings.TrimSpace(name)
		raw = strings.TrimSpace(raw)
		if !ok || name == "" || !isIdentifier(name) {
			continue
		}

		// A list may continue on following lines until the closing bracket.
		if strings.HasPrefix(raw, "[") {
			for !strings.Contains(raw, "]") && i+1 < len(lines) {
				i++
				raw += strings.TrimSpace(lines[i])
			}
			vars[name] = parseList(raw)
			continue
		}

		vars[name] = parseScalar(raw)
	}

	return vars
}

func isIdentifier(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return s != ""
}

func parseList(raw string) []string {
	raw = strings.TrimPrefix(raw, "[")
	if idx := strings.Index(raw, "]"); idx >= 0 {
		raw = raw[:idx]
	}
	raw = strings.ReplaceAll(raw, `"`, "")

	items := []string{}
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

func parseScalar(raw string) any {
	if strings.HasPrefix(raw, `"`) {
		return strings.Trim(raw, `"`)
	}
	if !strings.Contains(raw, ".") {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return n
		}
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}
	return raw
}

// Str returns the named variable as a string, or def when absent or not a string.
func (v Vars) Str(name, def string) string {
	if s, ok := v[name].(string); ok {
		return s
	}
	return def
}

// Int returns the named variable as an int, or def when absent or not an integer.
func (v Vars) Int(name string, def int) int {
	if n, ok := v[name].(int64); ok {
		return int(n)
	}
	return def
}

// Strings returns the named variable as a string list, or def when absent.
func (v Vars) Strings(name string, def []string) []string {
	if l, ok := v[name].([]string); ok {
		return l
	}
	return def
}
