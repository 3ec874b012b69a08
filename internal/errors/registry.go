package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
	DocURL     string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Config Errors (E101-E199)
	// ============================================

	"E101": {
		Category:   CategoryConfig,
		Message:    "Configuration file not found",
		Detail:     "No fluentdom.json was found in this directory or any parent directory.",
		Suggestion: "Run the command from your project root, or create a fluentdom.json there.",
		DocURL:     "https://fluentdom.dev/docs/errors/E101",
	},
	"E102": {
		Category:   CategoryConfig,
		Message:    "Configuration file is invalid",
		Detail:     "fluentdom.json exists but could not be parsed as JSON.",
		Suggestion: "Check the file for trailing commas or unquoted keys.",
		DocURL:     "https://fluentdom.dev/docs/errors/E102",
	},
	"E103": {
		Category:   CategoryConfig,
		Message:    "Configuration field has a bad value",
		Detail:     "A field in fluentdom.json is set to a value outside its allowed range.",
		Suggestion: "See the configuration reference for valid values.",
		DocURL:     "https://fluentdom.dev/docs/errors/E103",
	},
	"E104": {
		Category:   CategoryConfig,
		Message:    "Configuration file already exists",
		Detail:     "This directory already contains a fluentdom.json.",
		Suggestion: "Pass --force to overwrite it.",
		DocURL:     "https://fluentdom.dev/docs/errors/E104",
	},

	// ============================================
	// Serve Errors (E201-E299)
	// ============================================

	"E201": {
		Category:   CategoryServe,
		Message:    "Failed to listen on dev server address",
		Detail:     "The address is already in use or you lack permission to bind it.",
		Suggestion: "Stop the other process or change dev.port in fluentdom.json.",
		DocURL:     "https://fluentdom.dev/docs/errors/E201",
	},
	"E202": {
		Category:   CategoryServe,
		Message:    "Static directory does not exist",
		Detail:     "static.dir points at a directory that is missing or unreadable.",
		Suggestion: "Create the directory or update static.dir in fluentdom.json.",
		DocURL:     "https://fluentdom.dev/docs/errors/E202",
	},

	// ============================================
	// Snapshot Errors (E301-E399)
	// ============================================

	"E301": {
		Category:   CategorySnapshot,
		Message:    "Failed to write snapshot output",
		Detail:     "A rendered page or the manifest could not be written to the store.",
		Suggestion: "Check that the output directory is writable and has free space.",
		DocURL:     "https://fluentdom.dev/docs/errors/E301",
	},
	"E302": {
		Category:   CategorySnapshot,
		Message:    "Publish configuration is incomplete",
		Detail:     "snapshot.s3 must set both bucket and region to publish.",
		Suggestion: "Fill in snapshot.s3.bucket and snapshot.s3.region, or drop --publish.",
		DocURL:     "https://fluentdom.dev/docs/errors/E302",
	},
	"E303": {
		Category:   CategorySnapshot,
		Message:    "Failed to publish snapshot",
		Detail:     "The snapshot was rendered but uploading it to S3 failed.",
		Suggestion: "Verify your AWS credentials and that the bucket exists.",
		DocURL:     "https://fluentdom.dev/docs/errors/E303",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}

// Register adds a new error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
