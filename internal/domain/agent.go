package domain

// AgentResult is the outcome of one agent round-trip.
type AgentResult struct {
	Directive DirectiveKind
	// Output is the text shown to the end user.
	Output string
	// Tool and ToolResult are set for action directives.
	Tool       string
	ToolResult ToolResult
}
