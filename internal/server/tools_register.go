package server

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/gtex/mcp/internal/tools"
	"github.com/gtex/mcp/internal/tools/association"
	"github.com/gtex/mcp/internal/tools/dataset"
	"github.com/gtex/mcp/internal/tools/expression"
	"github.com/gtex/mcp/internal/tools/gene"
)

// RegisterTools registers all available MCP tools and adds them to the MCP server.
// Every tool is read-only against the public GTEx Portal API, so no filtering
// is applied.
func (s *GTExMCPServer) RegisterTools() error {
	deps := &tools.ToolDependencies{
		GTEx: s.gtexService,
		Log:  s.log,
	}

	s.mcpServer.AddTools(getAllTools(deps)...)
	return nil
}

// getAllTools returns all available tools with their specs and handlers
func getAllTools(deps *tools.ToolDependencies) []server.ServerTool {
	return []server.ServerTool{
		// Gene reference category
		{
			Tool:    gene.SearchGenesSpec(),
			Handler: gene.SearchGenesHandler(deps),
		},
		{
			Tool:    gene.GetGeneInfoSpec(),
			Handler: gene.GetGeneInfoHandler(deps),
		},
		{
			Tool:    gene.GetTranscriptsSpec(),
			Handler: gene.GetTranscriptsHandler(deps),
		},
		{
			Tool:    gene.GetNeighborGenesSpec(),
			Handler: gene.GetNeighborGenesHandler(deps),
		},
		{
			Tool:    gene.GetGoAnnotationsSpec(),
			Handler: gene.GetGoAnnotationsHandler(deps),
		},
		// Expression category
		{
			Tool:    expression.GetGeneExpressionSpec(),
			Handler: expression.GetGeneExpressionHandler(deps),
		},
		{
			Tool:    expression.GetMedianGeneExpressionSpec(),
			Handler: expression.GetMedianGeneExpressionHandler(deps),
		},
		{
			Tool:    expression.GetMedianTranscriptExpressionSpec(),
			Handler: expression.GetMedianTranscriptExpressionHandler(deps),
		},
		{
			Tool:    expression.GetTopExpressedGenesSpec(),
			Handler: expression.GetTopExpressedGenesHandler(deps),
		},
		{
			Tool:    expression.GetExpressionPcaSpec(),
			Handler: expression.GetExpressionPcaHandler(deps),
		},
		{
			Tool:    expression.GetSingleNucleusExpressionSpec(),
			Handler: expression.GetSingleNucleusExpressionHandler(deps),
		},
		{
			Tool:    expression.GetSingleNucleusSummarySpec(),
			Handler: expression.GetSingleNucleusSummaryHandler(deps),
		},
		{
			Tool:    expression.CompareTissueExpressionSpec(),
			Handler: expression.CompareTissueExpressionHandler(deps),
		},
		{
			Tool:    expression.CalculateExpressionCorrelationSpec(),
			Handler: expression.CalculateExpressionCorrelationHandler(deps),
		},
		{
			Tool:    expression.ClusterGenesByExpressionSpec(),
			Handler: expression.ClusterGenesByExpressionHandler(deps),
		},
		// Association category
		{
			Tool:    association.GetEqtlGenesSpec(),
			Handler: association.GetEqtlGenesHandler(deps),
		},
		{
			Tool:    association.GetSingleTissueEqtlsSpec(),
			Handler: association.GetSingleTissueEqtlsHandler(deps),
		},
		{
			Tool:    association.GetMultiTissueEqtlsSpec(),
			Handler: association.GetMultiTissueEqtlsHandler(deps),
		},
		{
			Tool:    association.CalculateDynamicEqtlSpec(),
			Handler: association.CalculateDynamicEqtlHandler(deps),
		},
		{
			Tool:    association.GetSqtlGenesSpec(),
			Handler: association.GetSqtlGenesHandler(deps),
		},
		{
			Tool:    association.GetFineMappingSpec(),
			Handler: association.GetFineMappingHandler(deps),
		},
		{
			Tool:    association.AnalyzeLdStructureSpec(),
			Handler: association.AnalyzeLdStructureHandler(deps),
		},
		// Dataset category
		{
			Tool:    dataset.GetTissueInfoSpec(),
			Handler: dataset.GetTissueInfoHandler(deps),
		},
		{
			Tool:    dataset.GetSampleInfoSpec(),
			Handler: dataset.GetSampleInfoHandler(deps),
		},
		{
			Tool:    dataset.GetSubjectInfoSpec(),
			Handler: dataset.GetSubjectInfoHandler(deps),
		},
		{
			Tool:    dataset.GetBiobankSamplesSpec(),
			Handler: dataset.GetBiobankSamplesHandler(deps),
		},
		{
			Tool:    dataset.GetServiceInfoSpec(),
			Handler: dataset.GetServiceInfoHandler(deps),
		},
		{
			Tool:    dataset.GetVariantInfoSpec(),
			Handler: dataset.GetVariantInfoHandler(deps),
		},
		{
			Tool:    dataset.ValidateVariantIdsSpec(),
			Handler: dataset.ValidateVariantIdsHandler(deps),
		},
		{
			Tool:    dataset.ConvertGenomeCoordinatesSpec(),
			Handler: dataset.ConvertGenomeCoordinatesHandler(deps),
		},
	}
}
