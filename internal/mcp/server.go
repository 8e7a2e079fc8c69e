// Package mcp exposes the two forecasts as MCP tools over stdio, so
// assistants can call them without shelling out to the CLI.
package mcp

import (
	"context"

	"github.com/google/jsonschema-go/jsonschema"
	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

// Serve runs the stdio MCP server until the client disconnects.
func Serve(ctx context.Context, version string) error {
	server, err := NewServer(version)
	if err != nil {
		return err
	}

	log.Info().Str("version", version).Msg("MCP server starting stdio loop")
	return server.Run(ctx, &sdk.StdioTransport{})
}

// NewServer builds the MCP server with both forecast tools registered.
func NewServer(version string) (*sdk.Server, error) {
	server := sdk.NewServer(&sdk.Implementation{
		Name:    "mc-forecast",
		Version: version,
	}, nil)

	howManySchema, err := jsonschema.For[HowManyArgs](nil)
	if err != nil {
		return nil, err
	}
	sdk.AddTool(server, &sdk.Tool{
		Name: "forecast_how_many",
		Description: "Forecast how many stories will be completed by a target date, " +
			"via Monte Carlo resampling of historical daily throughput. " +
			"The answer reads 'at least N with the given confidence'.",
		InputSchema: howManySchema,
	}, handleHowMany)

	whenSchema, err := jsonschema.For[WhenArgs](nil)
	if err != nil {
		return nil, err
	}
	sdk.AddTool(server, &sdk.Tool{
		Name: "forecast_when",
		Description: "Forecast the completion date for a number of remaining stories, " +
			"via Monte Carlo resampling of historical daily throughput. " +
			"The answer reads 'done on or before this date with the given confidence'.",
		InputSchema: whenSchema,
	}, handleWhen)

	return server, nil
}
