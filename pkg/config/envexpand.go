package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv substitutes {{.VAR}} references in config file content with
// environment variable values before YAML parsing. Template syntax is
// used instead of $VAR so literal dollars survive untouched: quant
// filter patterns like "^IQ[0-9].*$" and database passwords routinely
// contain them. Secrets such as KITT_ADMIN_TOKEN and HF_TOKEN reach
// kitt.yaml this way.
//
// Missing variables expand to the empty string; Validate catches
// required fields left empty. Content that fails to parse or execute as
// a template is returned unchanged so the YAML parser reports the real
// problem.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("kitt").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			env[k] = v
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, env); err != nil {
		return data
	}
	return buf.Bytes()
}
