package main

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bmarchand/pappers-mcp/internal/common"
	"github.com/bmarchand/pappers-mcp/internal/pappers"
)

// registerTools registers all MCP tools on the server, wiring each to a
// handler that calls the Pappers REST API via the client.
func registerTools(s *server.MCPServer, client *pappers.Client, logger *common.Logger) {
	s.AddTool(createSearchCompaniesTool(), handleSearchCompanies(client, logger))
	s.AddTool(createGetCompanyDetailsTool(), handleGetCompanyDetails(client, logger))
}

func createSearchCompaniesTool() mcp.Tool {
	return mcp.NewTool("search_companies",
		mcp.WithDescription("Search for French companies using Pappers.fr API. Returns a JSON string with search results containing total count, page information, and an array of companies with basic info (siren, denomination, siege address, date_creation, statut)."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Company name or search text (e.g., 'Google France')")),
		mcp.WithNumber("page", mcp.DefaultNumber(1), mcp.Description("Page number for pagination (default: 1)")),
		mcp.WithNumber("per_page", mcp.DefaultNumber(10), mcp.Max(100), mcp.Description("Number of results per page, max 100 (default: 10)")),
	)
}

func createGetCompanyDetailsTool() mcp.Tool {
	return mcp.NewTool("get_company_details",
		mcp.WithDescription("Get detailed information about a French company by SIREN. Returns a JSON string with complete company information including basic info (denomination, date_creation, forme_juridique), financial data (capital, chiffre_affaires, resultat), contact info (siege address), legal status, representatives, and establishments."),
		mcp.WithString("siren", mcp.Required(), mcp.Pattern("^[0-9]{9}$"), mcp.Description("9-digit SIREN number (e.g., '443061841' for Google France)")),
	)
}
