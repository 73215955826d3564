// Package plugin exposes the host-facing adapter surface of adocast: file
// extension discovery and the pre/post-processing pair the text-linting
// framework drives per file.
package plugin

import (
	"context"

	"github.com/yaklabco/adocast/pkg/parser/asciidoc"
	"github.com/yaklabco/adocast/pkg/txtast"
)

// DefaultFilePath is reported by PostProcess when no file path is supplied,
// i.e. for content linted from memory rather than disk.
const DefaultFilePath = "<text>"

// coreExtensions are the file suffixes recognized regardless of
// configuration.
//
//nolint:gochecknoglobals // Fixed suffix list
var coreExtensions = []string{".adoc", ".asciidoc", ".asc"}

// Message is one diagnostic produced by the host's rules against the AST.
// The plugin passes messages through untouched.
type Message struct {
	RuleID   string `json:"ruleId"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

// Result pairs the host's messages with the resolved file path.
type Result struct {
	Messages []Message `json:"messages"`
	FilePath string    `json:"filePath"`
}

// Plugin adapts AsciiDoc documents for the host framework.
type Plugin struct {
	parser     *asciidoc.Parser
	extensions []string
}

// Option configures a Plugin.
type Option func(*Plugin)

// WithExtensions registers additional recognized file suffixes.
func WithExtensions(extensions ...string) Option {
	return func(p *Plugin) {
		p.extensions = append(p.extensions, extensions...)
	}
}

// New creates a Plugin around the given parser.
func New(parser *asciidoc.Parser, opts ...Option) *Plugin {
	plugin := &Plugin{parser: parser}
	for _, opt := range opts {
		opt(plugin)
	}
	return plugin
}

// Extensions returns the recognized file suffixes: the fixed core list plus
// any configured extras.
func (p *Plugin) Extensions() []string {
	out := make([]string, 0, len(coreExtensions)+len(p.extensions))
	out = append(out, coreExtensions...)
	out = append(out, p.extensions...)
	return out
}

// PreProcess converts raw AsciiDoc text into the AST the host lints.
func (p *Plugin) PreProcess(ctx context.Context, text string) (*txtast.Node, error) {
	return p.parser.Parse(ctx, DefaultFilePath, []byte(text))
}

// PostProcess passes the host's messages through, resolving the file path to
// DefaultFilePath when none is supplied.
func (p *Plugin) PostProcess(messages []Message, filePath string) Result {
	if filePath == "" {
		filePath = DefaultFilePath
	}
	return Result{Messages: messages, FilePath: filePath}
}
