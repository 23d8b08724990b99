//go:build ignore

// check_rule_docs.go keeps README.md in sync with the rule tables in
// internal/rules/rules.go.
//
// Rule: every forbidden API name, the database/sql import rule, the
// fmt.Sprintf heuristic, and the allow marker must be documented in the
// README. Adding a pattern without documenting it fails CI.

package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

func main() {
	rulesSrc, err := os.ReadFile("internal/rules/rules.go")
	if err != nil {
		fmt.Printf("[rule-docs] FAIL: read rules source: %v\n", err)
		os.Exit(1)
	}
	readmeBytes, err := os.ReadFile("README.md")
	if err != nil {
		fmt.Printf("[rule-docs] FAIL: read README.md: %v\n", err)
		os.Exit(1)
	}
	rules := string(rulesSrc)
	readme := string(readmeBytes)

	var errors []string

	// Forbidden method names, extracted from the compiled call patterns.
	callName := regexp.MustCompile(`\\\.\\s\*(\w+)\\s\*\\\(`)
	matches := callName.FindAllStringSubmatch(rules, -1)
	if len(matches) == 0 {
		errors = append(errors, "no call patterns found in internal/rules/rules.go")
	}
	seen := map[string]bool{}
	for _, m := range matches {
		name := m[1]
		if seen[name] {
			continue
		}
		seen[name] = true
		if !strings.Contains(readme, name) {
			errors = append(errors, fmt.Sprintf("README.md does not document forbidden method %s", name))
		}
	}

	markerRe := regexp.MustCompile(`AllowMarker = "([^"]+)"`)
	marker := markerRe.FindStringSubmatch(rules)
	if marker == nil {
		errors = append(errors, "AllowMarker constant not found in internal/rules/rules.go")
	} else if !strings.Contains(readme, marker[1]) {
		errors = append(errors, fmt.Sprintf("README.md does not document the allow marker %q", marker[1]))
	}

	for _, needle := range []string{"database/sql", "fmt.Sprintf"} {
		if !strings.Contains(readme, needle) {
			errors = append(errors, fmt.Sprintf("README.md does not mention %s", needle))
		}
	}

	if len(errors) > 0 {
		fmt.Println("[rule-docs] FAIL: rule documentation drift")
		for _, e := range errors {
			fmt.Println(" -", e)
		}
		os.Exit(1)
	}

	fmt.Println("[rule-docs] OK")
}
