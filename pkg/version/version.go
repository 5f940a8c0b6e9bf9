package version

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Set at build time through the linker
var (
	GitSource   string
	GitBranch   string
	GitTag      string
	GitHash     string
	GoBuildTime string
)
