package markdown

// Stage functions exported for testing.
var (
	Sanitize           = sanitize
	ExtractCode        = extractCode
	TransformInline    = transformInline
	StructureBlocks    = structureBlocks
	AssembleParagraphs = assembleParagraphs
)
