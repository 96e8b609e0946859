package config

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

const configPreamble = "#:schema ./" + schemaName + "\n# dumbed configuration\n\n"

var tomlSectionHeader = regexp.MustCompile(`^(\s*)\[([^\]]+)\]\s*$`)

// WriteConfigOrdered writes cfg as TOML with sections in alphabetical order,
// so repeated saves produce identical files.
func WriteConfigOrdered(cfg *Config, path string) error {
	data, err := EncodeConfig(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// EncodeConfig renders cfg the way WriteConfigOrdered stores it.
func EncodeConfig(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}

	return []byte(configPreamble + sortTOMLSections(buf.String())), nil
}

type tomlSection struct {
	header string
	lines  []string
}

// sortTOMLSections reorders top-level and nested tables by header name.
// Keys before the first table stay first.
func sortTOMLSections(content string) string {
	var (
		preamble []string
		sections []tomlSection
		current  *tomlSection
	)

	for _, line := range strings.Split(content, "\n") {
		match := tomlSectionHeader.FindStringSubmatch(line)
		switch {
		case match != nil:
			if current != nil {
				sections = append(sections, *current)
			}
			current = &tomlSection{header: match[2], lines: []string{line}}
		case current != nil:
			current.lines = append(current.lines, line)
		default:
			preamble = append(preamble, line)
		}
	}
	if current != nil {
		sections = append(sections, *current)
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].header < sections[j].header
	})

	var out strings.Builder
	for _, line := range preamble {
		if strings.TrimSpace(line) != "" {
			out.WriteString(line)
			out.WriteString("\n")
		}
	}
	for _, sec := range sections {
		if out.Len() > 0 {
			out.WriteString("\n")
		}
		for _, line := range trimBlankTail(sec.lines) {
			out.WriteString(line)
			out.WriteString("\n")
		}
	}
	return out.String()
}

func trimBlankTail(lines []string) []string {
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[:end]
}
