package registry

// The tables below are the single source of truth for what skilldex can
// install. Descriptors appear in display order; paths are relative to the
// registry root, a checkout of the skill content repository.

var catalog = []Descriptor{
	// general
	{
		Name:        "pptx",
		Path:        "general/pptx",
		Category:    "general",
		Description: "Create, edit, and analyze PowerPoint presentations with slides, charts, and speaker notes.",
	},
	{
		Name:        "docx",
		Path:        "general/docx",
		Category:    "general",
		Description: "Create and edit Word documents with styles, tracked changes, and embedded media.",
	},
	{
		Name:        "xlsx",
		Path:        "general/xlsx",
		Category:    "general",
		Description: "Read, create, and edit Excel spreadsheets with formulas, formatting, and charts.",
	},
	{
		Name:        "pdf",
		Path:        "general/pdf",
		Category:    "general",
		Description: "Generate and fill PDF documents, merge files, and extract text or form data.",
	},
	{
		Name:        "skill-creator",
		Path:        "general/skill-creator",
		Category:    "general",
		Description: "Scaffold new skills with a guided SKILL.md template and packaging checks.",
	},
	{
		Name:        "mcp-builder",
		Path:        "general/mcp-builder",
		Category:    "general",
		Description: "Build and test MCP servers that expose tools to agent runtimes.",
	},
	{
		Name:        "webapp-testing",
		Path:        "general/webapp-testing",
		Category:    "general",
		Description: "Drive a browser against a local web app for smoke tests and screenshots.",
	},

	// frontend
	{
		Name:        "artifacts-builder",
		Path:        "frontend/artifacts-builder",
		Category:    "frontend",
		Description: "Build self-contained single-page HTML artifacts with inline styles and scripts.",
	},
	{
		Name:        "canvas-design",
		Path:        "frontend/canvas-design",
		Category:    "frontend",
		Description: "Design posters, diagrams, and visual layouts on an HTML canvas.",
	},
	{
		Name:        "theme-factory",
		Path:        "frontend/theme-factory",
		Category:    "frontend",
		Description: "Generate consistent color themes and typography scales for web UIs.",
	},

	// auth
	{
		Name:        "better-auth",
		Path:        "auth/better-auth",
		Category:    "auth",
		Description: "Integrate Better Auth into a TypeScript app with sessions, OAuth providers, and plugins.",
	},
	{
		Name:        "create-auth",
		Path:        "auth/create-auth",
		Category:    "auth",
		Description: "Scaffold a complete authentication flow with signup, login, and password reset pages.",
	},
	{
		Name:        "clerk",
		Path:        "auth/clerk",
		Category:    "auth",
		Description: "Wire Clerk authentication into Next.js with middleware and protected routes.",
	},
}

var catalogAliases = map[string]string{
	"powerpoint":  "pptx",
	"ppt":         "pptx",
	"slides":      "pptx",
	"word":        "docx",
	"doc":         "docx",
	"excel":       "xlsx",
	"spreadsheet": "xlsx",
	"artifacts":   "artifacts-builder",
	"canvas":      "canvas-design",
	"betterauth":  "better-auth",
	"mcp":         "mcp-builder",
	"clerk-auth":  "clerk",
}

// Default returns the compiled-in catalog.
func Default() *Registry {
	return New(catalog, catalogAliases)
}
