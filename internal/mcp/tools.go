package mcp

import "github.com/mark3labs/mcp-go/mcp"

// searchDocsTool defines the search_docs MCP tool.
var searchDocsTool = mcp.NewTool("search_docs",
	mcp.WithDescription("Search the documentation site by keyword. Returns ranked pages with their type, URL and excerpt."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Search words; each word of two or more characters is matched as a substring"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of results to return (default and upper bound 10)"),
	),
	mcp.WithString("type_filter",
		mcp.Description("Only return items of this type"),
		mcp.Enum("post", "page", "component", "unity_integration"),
	),
)

// indexStatsTool defines the index_stats MCP tool.
var indexStatsTool = mcp.NewTool("index_stats",
	mcp.WithDescription("Report how many items of each type the search index holds."),
)
