// Package guide exposes the documentation pages compiled into the binary,
// serving both `promptlint guide` and the MCP guide tool.
package guide

import (
	"embed"
	"strings"
)

//go:embed *.md
var pages embed.FS

// DefaultTopic is the page served when no topic is requested.
const DefaultTopic = "guide"

// Get returns the markdown for topic, defaulting to the main guide page.
func Get(topic string) (string, error) {
	if topic == "" {
		topic = DefaultTopic
	}
	data, err := pages.ReadFile(topic + ".md")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// List returns the topics available beyond the default page, in name order.
func List() ([]string, error) {
	entries, err := pages.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name != DefaultTopic {
			topics = append(topics, name)
		}
	}
	return topics, nil
}
