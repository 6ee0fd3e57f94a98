package gtex

// Paths of the GTEx Portal API v2, one per logical query type.
// All of them are read-only GET endpoints rooted at the configured base URL.
const (
	PathGeneSearch                   = "reference/geneSearch"
	PathGene                         = "reference/gene"
	PathTranscript                   = "reference/transcript"
	PathNeighborGene                 = "reference/neighborGene"
	PathVariant                      = "dataset/variant"
	PathVariantByLocation            = "dataset/variantByLocation"
	PathGeneExpression               = "expression/geneExpression"
	PathMedianGeneExpression         = "expression/medianGeneExpression"
	PathMedianTranscriptExpression   = "expression/medianTranscriptExpression"
	PathTopExpressedGene             = "expression/topExpressedGene"
	PathExpressionPca                = "expression/expressionPca"
	PathSingleNucleusExpression      = "expression/singleNucleusGeneExpression"
	PathSingleNucleusSummary         = "expression/singleNucleusGeneExpressionSummary"
	PathEqtlGenes                    = "association/egene"
	PathSingleTissueEqtl             = "association/singleTissueEqtl"
	PathMultiTissueEqtl              = "association/metasoft"
	PathDynamicEqtl                  = "association/dyneqtl"
	PathSqtlGenes                    = "association/sgene"
	PathFineMapping                  = "association/fineMapping"
	PathTissueSiteDetail             = "dataset/tissueSiteDetail"
	PathSample                       = "dataset/sample"
	PathSubject                      = "dataset/subject"
	PathBiobankSample                = "biobank/sample"
	PathServiceInfo                  = ""
)

// Defaults shared across the tool catalog.
const (
	DefaultDatasetID      = "gtex_v8"
	DefaultGencodeVersion = "v26"
	DefaultGenomeBuild    = "GRCh38/hg38"
	DefaultPage           = 0
	DefaultItemsPerPage   = 250
)
