package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"peacey/internal/catalog"
	"peacey/internal/intent"
)

type AskParams struct {
	Question string `json:"question" mcp:"The family's question, in their own words"`
}

type ListPackagesParams struct{}

type PackagePriceParams struct {
	Name string `json:"name" mcp:"Package name, e.g. 'Package C'"`
}

// Server exposes the assistant and its catalog as MCP tools.
type Server struct {
	matcher *intent.Matcher
	cat     *catalog.Catalog
}

func New(matcher *intent.Matcher, cat *catalog.Catalog) *Server {
	return &Server{matcher: matcher, cat: cat}
}

// Register adds the assistant tools to srv.
func (s *Server) Register(srv *mcp.Server) {
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "ask_peacey",
		Description: "Answers a funeral-service question the way the EternalpEASE assistant does",
	}, s.Ask)
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "list_packages",
		Description: "Lists the funeral packages with their prices",
	}, s.ListPackages)
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "package_price",
		Description: "Returns the price of a single funeral package",
	}, s.PackagePrice)
}

func (s *Server) Ask(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[AskParams]) (*mcp.CallToolResultFor[any], error) {
	q := strings.TrimSpace(params.Arguments.Question)
	if q == "" {
		return errorResult("question is required"), nil
	}
	reply := s.matcher.Resolve(q)
	logrus.WithField("intent", reply.Intent).Debug("mcp ask_peacey")
	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{
			&mcp.TextContent{Text: reply.Text},
			&mcp.TextContent{Text: "intent: " + reply.Intent},
		},
	}, nil
}

func (s *Server) ListPackages(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[ListPackagesParams]) (*mcp.CallToolResultFor[any], error) {
	var b strings.Builder
	for _, p := range s.cat.Packages {
		fmt.Fprintf(&b, "%s: %s\n", p.Name, s.cat.Price(p))
	}
	return textResult(strings.TrimRight(b.String(), "\n")), nil
}

func (s *Server) PackagePrice(ctx context.Context, session *mcp.ServerSession, params *mcp.CallToolParamsFor[PackagePriceParams]) (*mcp.CallToolResultFor[any], error) {
	p, ok := s.cat.Find(params.Arguments.Name)
	if !ok {
		return errorResult(fmt.Sprintf("package %q not found", params.Arguments.Name)), nil
	}
	return textResult(fmt.Sprintf("%s costs %s", p.Name, s.cat.Price(p))), nil
}

func textResult(text string) *mcp.CallToolResultFor[any] {
	return &mcp.CallToolResultFor[any]{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errorResult(text string) *mcp.CallToolResultFor[any] {
	return &mcp.CallToolResultFor[any]{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
