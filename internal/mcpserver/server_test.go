package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/kornthip/matra/internal/library"
	"github.com/kornthip/matra/internal/store"
	"github.com/kornthip/matra/internal/testutil"
)

const crimText = `ประมวลกฎหมายอาญา

ภาค ๑
บทบัญญัติทั่วไป

มาตรา ๑๑๒ ข้อความมาตราหนึ่งร้อยสิบสอง อ้างถึงมาตรา ๑๑๓

มาตรา ๑๑๓ ข้อความมาตราหนึ่งร้อยสิบสาม
`

func testServer(t *testing.T) *Server {
	t.Helper()

	_, lib := testutil.TestCorpus(t, map[string]string{"crim.txt": crimText})
	svc := library.NewService(lib, store.NewMemory())
	return New(svc)
}

func callTool(t *testing.T, srv *Server, name string, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Name = name
	req.Params.Arguments = args

	// mcp-go doesn't expose a direct "call tool" test helper, so we call the
	// tool handler functions directly.
	var result *mcp.CallToolResult
	var err error

	switch name {
	case "search_sections":
		result, err = srv.searchSections(ctx, req)
	case "get_section":
		result, err = srv.getSection(ctx, req)
	case "list_books":
		result, err = srv.listBooks(ctx, req)
	case "get_references":
		result, err = srv.getReferences(ctx, req)
	case "resolve_section":
		result, err = srv.resolveSection(ctx, req)
	case "get_corpus_contract":
		result, err = srv.getCorpusContract(ctx, req)
	default:
		t.Fatalf("unknown tool: %s", name)
	}

	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestSearchSections(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "search_sections", map[string]interface{}{"query": "112"})
	text := resultText(r)
	if !strings.Contains(text, "crim-112") {
		t.Errorf("search result = %q, want crim-112 hit", text)
	}

	// Thai-digit query matches the same section.
	r = callTool(t, srv, "search_sections", map[string]interface{}{"query": "๑๑๒"})
	if !strings.Contains(resultText(r), "crim-112") {
		t.Error("Thai-digit query should match")
	}

	r = callTool(t, srv, "search_sections", map[string]interface{}{"query": "zzz-no-match"})
	if resultText(r) != "no sections found" {
		t.Errorf("no-match result = %q", resultText(r))
	}
}

func TestGetSection(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "get_section", map[string]interface{}{"id": "crim-113"})
	text := resultText(r)
	if !strings.Contains(text, "ข้อความมาตราหนึ่งร้อยสิบสาม") {
		t.Errorf("get result = %q", text)
	}

	r = callTool(t, srv, "get_section", map[string]interface{}{"id": "crim-999"})
	if !r.IsError {
		t.Error("expected error for missing section")
	}
}

func TestListBooks(t *testing.T) {
	srv := testServer(t)

	text := resultText(callTool(t, srv, "list_books", map[string]interface{}{}))
	if !strings.Contains(text, "crim") || !strings.Contains(text, "ประมวลกฎหมายอาญา") {
		t.Errorf("list_books = %q", text)
	}
	if len(strings.Split(text, "\n")) != 8 {
		t.Errorf("want 8 book lines, got %q", text)
	}
}

func TestGetReferences(t *testing.T) {
	srv := testServer(t)

	text := resultText(callTool(t, srv, "get_references", map[string]interface{}{"id": "crim-112"}))
	if text != "๑๑๓" {
		t.Errorf("references = %q, want ๑๑๓", text)
	}

	text = resultText(callTool(t, srv, "get_references", map[string]interface{}{"id": "crim-113"}))
	if text != "no references found" {
		t.Errorf("references = %q", text)
	}
}

func TestResolveSection(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "resolve_section", map[string]interface{}{"number": "๑๑๒", "book": "crim"})
	if !strings.Contains(resultText(r), `"id": "crim-112"`) {
		t.Errorf("resolve = %q", resultText(r))
	}

	r = callTool(t, srv, "resolve_section", map[string]interface{}{"number": "999"})
	if !r.IsError {
		t.Error("expected error for unknown number")
	}
}

func TestGetCorpusContract(t *testing.T) {
	srv := testServer(t)

	text := resultText(callTool(t, srv, "get_corpus_contract", map[string]interface{}{}))
	if !strings.Contains(text, "มาตรา") {
		t.Errorf("contract should describe the section marker, got %q", text)
	}
}
