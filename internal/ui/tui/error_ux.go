package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/prefixer/internal/domain"
)

var (
	reLine  = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)
	reField = regexp.MustCompile(`\bfield\s+(\S+):`)
)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindNotFound:
			if strings.HasPrefix(oe.Op, "seqfile") {
				return "Sequence not found"
			}
			if strings.Contains(oe.Op, "workspacefinder.findroot") {
				return "Workspace not found"
			}
			return "Not found"

		case domain.KindInvalidConfig:
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			if f := extractField(err.Error()); f != "" {
				return "Invalid " + f + " in " + base
			}

			line := extractLine(err.Error())
			if line != "" {
				return "Invalid file at " + base + " line " + line
			}
			if looksLikeParseProblem(err.Error()) {
				return "Invalid file at " + base
			}
			return "Invalid config"

		default:
			return "Unexpected error (see logs)"
		}
	}

	if looksLikeParseProblem(err.Error()) {
		line := extractLine(err.Error())
		if line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}

	return "Unexpected error (see logs)"
}

func looksLikeParseProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") ||
		strings.Contains(ls, "did not find expected") ||
		strings.Contains(ls, "cannot unmarshal") ||
		strings.Contains(ls, "invalid character")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}

func extractField(s string) string {
	m := reField.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
