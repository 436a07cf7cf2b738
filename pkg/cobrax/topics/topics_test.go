package topics

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
)

func helpFS() fstest.MapFS {
	return fstest.MapFS{
		"selectors.txt":        {Data: []byte("Information about selector paths")},
		"scoring.md":           {Data: []byte("# Scoring\n\nHow matches are ranked")},
		"states.txxt":          {Data: []byte("State Tags\n==========")},
		"ignore.json":          {Data: []byte("This should be ignored")},
		"option-hierarchy.txt": {Data: []byte("Hierarchy fallback help")},
	}
}

func TestTopicManagerScanTopics(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		tm := New(helpFS(), Options{})
		if err := tm.scanTopics(); err != nil {
			t.Fatalf("scanTopics failed: %v", err)
		}

		tests := []struct {
			name     string
			expected bool
			content  string
		}{
			{"selectors", true, "Information about selector paths"},
			{"scoring", true, "# Scoring\n\nHow matches are ranked"},
			{"states", false, ""}, // .txxt not in defaults
			{"ignore", false, ""},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				topic, exists := tm.GetTopic(tt.name)
				if exists != tt.expected {
					t.Fatalf("GetTopic(%q) exists = %v, want %v", tt.name, exists, tt.expected)
				}
				if exists && topic.Content != tt.content {
					t.Errorf("GetTopic(%q) content = %q, want %q", tt.name, topic.Content, tt.content)
				}
			})
		}
	})

	t.Run("custom extensions", func(t *testing.T) {
		tm := New(helpFS(), Options{Extensions: []string{".txt", ".md", ".txxt"}})
		if err := tm.scanTopics(); err != nil {
			t.Fatalf("scanTopics failed: %v", err)
		}

		if _, exists := tm.GetTopic("states"); !exists {
			t.Error("expected .txxt topic to be loaded with custom extensions")
		}
		if _, exists := tm.GetTopic("ignore"); exists {
			t.Error("unconfigured extension should stay ignored")
		}
	})
}

func TestTopicManagerGetTopicFlagStyle(t *testing.T) {
	tm := New(helpFS(), Options{})
	if err := tm.scanTopics(); err != nil {
		t.Fatalf("scanTopics failed: %v", err)
	}

	tests := []struct {
		input    string
		expected string
		exists   bool
	}{
		{"selectors", "selectors", true},
		{"option-hierarchy", "option-hierarchy", true},
		{"hierarchy", "option-hierarchy", true},
		{"--hierarchy", "option-hierarchy", true},
		{"-hierarchy", "option-hierarchy", true},
		{"nonexistent", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			topic, exists := tm.GetTopic(tt.input)
			if exists != tt.exists {
				t.Fatalf("GetTopic(%q) exists = %v, want %v", tt.input, exists, tt.exists)
			}
			if exists && topic.Name != tt.expected {
				t.Errorf("GetTopic(%q) resolved %q, want %q", tt.input, topic.Name, tt.expected)
			}
		})
	}
}

func TestTopicManagerListTopics(t *testing.T) {
	tm := New(helpFS(), Options{})
	if err := tm.scanTopics(); err != nil {
		t.Fatalf("scanTopics failed: %v", err)
	}

	list := tm.ListTopics()
	if len(list) != 3 {
		t.Fatalf("ListTopics returned %d topics, want 3: %v", len(list), list)
	}
}

func TestSubdirectoryTopics(t *testing.T) {
	fsys := fstest.MapFS{
		"advanced/wildcards.txt": {Data: []byte("Wildcard help")},
	}

	tm := New(fsys, Options{})
	if err := tm.scanTopics(); err != nil {
		t.Fatalf("scanTopics failed: %v", err)
	}

	topic, exists := tm.GetTopic("wildcards")
	if !exists {
		t.Fatal("expected topic from subdirectory to be found by basename")
	}
	if topic.Content != "Wildcard help" {
		t.Errorf("unexpected content: %q", topic.Content)
	}
}

func TestEmptyFS(t *testing.T) {
	tm := New(fstest.MapFS{}, Options{})
	if err := tm.scanTopics(); err != nil {
		t.Fatalf("scanTopics on empty fs failed: %v", err)
	}
	if len(tm.ListTopics()) != 0 {
		t.Errorf("expected no topics, got %v", tm.ListTopics())
	}
}

func TestInitialize(t *testing.T) {
	rootCmd := &cobra.Command{
		Use:   "testapp",
		Short: "Test application",
	}
	rootCmd.AddCommand(&cobra.Command{
		Use:   "resolve",
		Short: "Resolve something",
		Run:   func(cmd *cobra.Command, args []string) {},
	})

	if err := Initialize(rootCmd, helpFS()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	helpCmd, _, err := rootCmd.Find([]string{"help"})
	if err != nil {
		t.Fatalf("help command not found: %v", err)
	}
	if helpCmd.Use != "help [command or topic]" {
		t.Errorf("unexpected help command use: %q", helpCmd.Use)
	}
}

func TestHelpCommandRendersTopic(t *testing.T) {
	rootCmd := &cobra.Command{
		Use:   "testapp",
		Short: "Test application",
	}

	if err := Initialize(rootCmd, helpFS()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"help", "selectors"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("help execution failed: %v", err)
	}

	if !strings.Contains(buf.String(), "Information about selector paths") {
		t.Errorf("expected topic content in output, got: %s", buf.String())
	}
}

func TestHelpCommandListsTopics(t *testing.T) {
	rootCmd := &cobra.Command{
		Use:   "testapp",
		Short: "Test application",
	}

	if err := Initialize(rootCmd, helpFS()); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"help", "topics"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("help topics execution failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"selectors", "scoring", "--hierarchy"} {
		if !strings.Contains(out, want) {
			t.Errorf("topic list missing %q:\n%s", want, out)
		}
	}
}

func TestGlamourRendererPassesThroughNonMarkdown(t *testing.T) {
	r := NewGlamourRenderer()
	content := "plain text content"
	if got := r.Render(content, ".txt"); got != content {
		t.Errorf("non-markdown content should pass through, got %q", got)
	}
}

func TestGlamourRendererRendersMarkdown(t *testing.T) {
	r := NewGlamourRenderer()
	rendered := r.Render("# Heading\n\nbody text", ".md")
	if !strings.Contains(rendered, "Heading") {
		t.Errorf("rendered markdown lost its heading: %q", rendered)
	}
}
