// Package asciidoc converts externally parsed AsciiDoc element trees into
// position-annotated txtast trees.
//
// The upstream processor supplies reliable line numbers but no character
// offsets, strips comment lines, and folds multi-line paragraphs; the
// converter recovers every node's exact span by re-locating its literal text
// in the original source within a per-sibling line window.
package asciidoc

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/adocast/internal/logging"
	"github.com/yaklabco/adocast/pkg/document"
	"github.com/yaklabco/adocast/pkg/txtast"
)

// ErrNoProcessor is returned by Parse when the parser was built without an
// upstream processor. Convert remains usable with a pre-loaded tree.
var ErrNoProcessor = errors.New("asciidoc: no document processor configured")

// Processor loads raw AsciiDoc text into an element tree with source-map
// support enabled.
//
// This package defines the interface on the consumer side; hosts bind their
// document processor of choice. Implementations must be deterministic for a
// given text and must not retain the text after Load returns.
type Processor interface {
	Load(ctx context.Context, text string) (document.Element, error)
}

// Parser converts AsciiDoc content into txtast trees.
type Parser struct {
	processor Processor
	opts      options
}

type options struct {
	logger         *log.Logger
	detectLanguage bool
}

// Option configures a Parser.
type Option func(*options)

// WithLogger attaches a logger; unresolvable spans are reported at debug
// level as they are dropped.
func WithLogger(logger *log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLanguageDetection enables a detected language tag on code blocks whose
// source names none.
func WithLanguageDetection() Option {
	return func(o *options) {
		o.detectLanguage = true
	}
}

// New creates a Parser bound to the given processor. A nil processor is
// permitted for callers that only use Convert.
func New(processor Processor, opts ...Option) *Parser {
	parser := &Parser{processor: processor}
	for _, opt := range opts {
		opt(&parser.opts)
	}
	return parser
}

// Parse loads content through the configured processor and converts the
// resulting element tree. Without a WithLogger option the logger attached to
// ctx is used for drop reporting.
//
// Processor failures propagate; an element whose text cannot be located is
// not a failure and silently produces no node. The returned tree is owned by
// the caller; the parser retains no references to it.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*txtast.Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	if p.processor == nil {
		return nil, ErrNoProcessor
	}

	root, err := p.processor.Load(ctx, string(content))
	if err != nil {
		return nil, fmt.Errorf("load document %q: %w", path, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	opts := p.opts
	if opts.logger == nil {
		opts.logger = logging.FromContext(ctx)
	}

	return newConverter(content, opts).document(root), nil
}

// Convert adapts an already-loaded element tree against the source content
// it was parsed from. The conversion is a single synchronous depth-first
// traversal with no shared state across calls.
func (p *Parser) Convert(content []byte, root document.Element) *txtast.Node {
	return newConverter(content, p.opts).document(root)
}
