package docs

import (
	"bufio"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// This test ensures that the documentation is in sync with itself:
	// 1. Every topic listed in readme.md can be loaded.
	// 2. Every topic file is listed in readme.md.
	// 3. Every topic parses as valid markdown with a top-level heading.

	readme, err := GetTopic("readme")
	if err != nil {
		t.Fatalf("failed to load readme: %v", err)
	}

	var topicsInReadme []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(strings.NewReader(readme))
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}

	if len(topicsInReadme) == 0 {
		t.Fatal("no topics listed in readme.md")
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("topic %q listed in readme.md cannot be loaded: %v", topic, err)
			}
		})
	}

	allTopics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}
	listed := map[string]bool{}
	for _, topic := range topicsInReadme {
		listed[topic] = true
	}
	for _, topic := range allTopics {
		if !listed[topic] {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestTopicsParseAsMarkdown(t *testing.T) {
	allTopics, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() error = %v", err)
	}
	allTopics = append(allTopics, "readme")

	parser := goldmark.New().Parser()
	for _, topic := range allTopics {
		t.Run(topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatalf("GetTopic(%q) error = %v", topic, err)
			}
			root := parser.Parse(text.NewReader([]byte(content)))
			if !root.HasChildren() {
				t.Errorf("topic %q parsed to an empty document", topic)
			}
		})
	}
}
