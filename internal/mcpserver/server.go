// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes Matra tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/kornthip/matra/internal/corpus"
	"github.com/kornthip/matra/internal/library"
)

// Server wraps the MCP server with Matra tools.
type Server struct {
	mcp *server.MCPServer
	svc *library.Service
}

// New creates a new MCP server with all Matra tools registered.
func New(svc *library.Service) *Server {
	s := &Server{svc: svc}

	s.mcp = server.NewMCPServer(
		"Matra",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("search_sections",
		mcp.WithDescription("Search statutory sections by number, body text, or category. "+
			"Thai and Arabic digits are interchangeable in the query (๑๑๒ and 112 match the same sections)."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
		mcp.WithString("book", mcp.Description("Optional book ID to scope the search (e.g. crim, civil)")),
	), s.searchSections)

	s.mcp.AddTool(mcp.NewTool("get_section",
		mcp.WithDescription("Read the full text of one section by its ID (e.g. crim-112). "+
			"A user override wins over the built-in text."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Section ID")),
	), s.getSection)

	s.mcp.AddTool(mcp.NewTool("list_books",
		mcp.WithDescription("List the statute books in the corpus with their IDs, Thai names, and abbreviations."),
	), s.listBooks)

	s.mcp.AddTool(mcp.NewTool("get_references",
		mcp.WithDescription("List the section numbers a section's body refers to inline (e.g. มาตรา ๑๑๓)."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Section ID")),
	), s.getReferences)

	s.mcp.AddTool(mcp.NewTool("resolve_section",
		mcp.WithDescription("Resolve a section number (Thai or Arabic digits, ordinal suffixes allowed) "+
			"to its section, optionally scoped to one book."),
		mcp.WithString("number", mcp.Required(), mcp.Description("Section number, e.g. ๑๑๒ or 112 or 30 ทวิ")),
		mcp.WithString("book", mcp.Description("Optional book ID scope")),
	), s.resolveSection)

	s.mcp.AddTool(mcp.NewTool("get_corpus_contract",
		mcp.WithDescription("Returns the canonical raw statute text format the corpus parser expects. "+
			"Call this before editing or adding corpus source files."),
	), s.getCorpusContract)

	// Resource: corpus source format contract.
	s.mcp.AddResource(
		mcp.NewResource("matra://corpus-format", "Corpus Source Format",
			mcp.WithResourceDescription("Canonical raw statute text format parsed into sections."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readCorpusFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) searchSections(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	book := ""
	if b, err := req.RequireString("book"); err == nil {
		book = b
	}

	sections, err := s.svc.Filter(book, library.ModeSearch, query)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(sections) == 0 {
		return mcp.NewToolResultText("no sections found"), nil
	}
	out, _ := json.MarshalIndent(sections, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getSection(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	sec, err := s.svc.Section(id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", id)), nil
	}
	out, _ := json.MarshalIndent(sec, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) listBooks(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var lines []string
	for _, b := range corpus.Books {
		lines = append(lines, fmt.Sprintf("%s\t%s (%s)", b.ID, b.Name, b.Abbreviation))
	}
	return mcp.NewToolResultText(strings.Join(lines, "\n")), nil
}

func (s *Server) getReferences(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	refs, err := s.svc.References(id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", id)), nil
	}
	if len(refs) == 0 {
		return mcp.NewToolResultText("no references found"), nil
	}
	return mcp.NewToolResultText(strings.Join(refs, "\n")), nil
}

func (s *Server) resolveSection(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	number, err := req.RequireString("number")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	book := ""
	if b, err := req.RequireString("book"); err == nil {
		book = b
	}

	sec, err := s.svc.Resolve(book, number)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", number)), nil
	}
	out, _ := json.MarshalIndent(sec, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getCorpusContract(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(CorpusFormatContract), nil
}

func (s *Server) readCorpusFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "matra://corpus-format",
			MIMEType: "text/markdown",
			Text:     CorpusFormatContract,
		},
	}, nil
}
