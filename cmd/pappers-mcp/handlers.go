package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bmarchand/pappers-mcp/internal/common"
	"github.com/bmarchand/pappers-mcp/internal/pappers"
)

// --- Helpers ---

var validate = validator.New()

// searchArgs holds the validated arguments of search_companies.
type searchArgs struct {
	Query   string `validate:"required"`
	Page    int
	PerPage int
}

// sirenArgs holds the validated argument of get_company_details.
// "number" admits digits only, so signed or decimal 9-character strings fail.
type sirenArgs struct {
	Siren string `validate:"required,number,len=9"`
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

// jsonResult serializes v as indented UTF-8 JSON, the shape callers consume.
func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(fmt.Sprintf("Error encoding response: %v", err))
	}
	return textResult(string(data))
}

// --- Handlers ---

func handleSearchCompanies(client *pappers.Client, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := logger.WithCorrelationId(uuid.NewString())

		query := request.GetString("query", "")
		args := searchArgs{
			// Trimmed copy for validation only; the raw query goes upstream
			Query:   strings.TrimSpace(query),
			Page:    request.GetInt("page", 1),
			PerPage: request.GetInt("per_page", 10),
		}
		if err := validate.Struct(args); err != nil {
			return errorResult("Error: query parameter is required"), nil
		}

		log.Debug().Str("query", query).Int("page", args.Page).Int("per_page", args.PerPage).Msg("search_companies")

		result, err := client.SearchCompanies(ctx, query, args.Page, args.PerPage)
		if err != nil {
			log.Error().Err(err).Msg("search_companies failed")
			return errorResult(fmt.Sprintf("Error calling Pappers API: %v", err)), nil
		}

		return jsonResult(result), nil
	}
}

func handleGetCompanyDetails(client *pappers.Client, logger *common.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := logger.WithCorrelationId(uuid.NewString())

		siren := request.GetString("siren", "")
		if err := validate.Struct(sirenArgs{Siren: siren}); err != nil {
			// No upstream call for a malformed identifier
			return errorResult(fmt.Sprintf("Invalid SIREN format. Must be 9 digits, got: %s", siren)), nil
		}

		log.Debug().Str("siren", siren).Msg("get_company_details")

		detail, err := client.GetCompany(ctx, siren)
		if err != nil {
			var statusErr *pappers.StatusError
			switch {
			case errors.Is(err, pappers.ErrNotFound):
				return errorResult(fmt.Sprintf("Company not found with SIREN: %s", siren)), nil
			case errors.As(err, &statusErr):
				return errorResult(fmt.Sprintf("API error (%d): %s", statusErr.Code, statusErr.Body)), nil
			default:
				log.Error().Err(err).Str("siren", siren).Msg("get_company_details failed")
				return errorResult(fmt.Sprintf("Error calling Pappers API: %v", err)), nil
			}
		}

		return jsonResult(detail), nil
	}
}
