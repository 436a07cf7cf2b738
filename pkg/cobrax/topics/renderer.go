package topics

// Renderer formats topic content before it is written to the terminal.
type Renderer interface {
	// Render formats content for display. The format hint is the topic
	// file's extension, such as ".md" or ".txt".
	Render(content string, format string) string
}

// PlainRenderer passes topic content through unchanged. It is the default
// when no renderer is configured.
type PlainRenderer struct{}

func (r *PlainRenderer) Render(content string, format string) string {
	return content
}
