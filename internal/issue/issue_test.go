// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"strings"
	"testing"
)

func TestValues_CoversAllIds(t *testing.T) {
	t.Parallel()

	seen := make(map[Id]bool)
	for _, is := range Values() {
		seen[is.Id()] = true
	}
	for id := UnsupportedPlatformId; id <= RepoNotFoundId; id++ {
		if !seen[id] {
			t.Errorf("no issue registered for id %d", id)
		}
	}
}

func TestTemplateValidationIssue_ExampleMatchesCLI(t *testing.T) {
	t.Parallel()

	msg := string(Get(TemplateValidationId).MarkdownMsg())
	// The log command takes the level as its first positional argument.
	if !strings.Contains(msg, "modkit log info") {
		t.Errorf("example does not use the positional level form:\n%s", msg)
	}
	if strings.Contains(msg, "--level") {
		t.Errorf("example uses a nonexistent --level flag:\n%s", msg)
	}
}
