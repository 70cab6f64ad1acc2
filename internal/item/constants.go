package item

// DefaultConfigPath is the catalog shipped with the repository
const DefaultConfigPath = "configs/items/items.json"

// ==================== Error Messages ====================

const (
	ErrMsgReadConfigFileFailed = "failed to read items config file: %w"
	ErrMsgParseConfigFailed    = "failed to parse items config: %w"
	ErrMsgSchemaFailed         = "schema validation failed for %s: %w"
)

// Format strings used with fmt.Errorf
const (
	ErrFmtItemInvalid   = "%w: item at index %d (%q): %s"
	ErrFmtUnknownType   = "%w: item %q has unknown type %q"
	ErrFmtDuplicateID   = "%w: %q"
	ErrFmtNotFound      = "%w: %q"
	ErrFmtNotFoundMaybe = "%w: %q (did you mean %q?)"
)

// ==================== Log Messages ====================

const (
	LogMsgCatalogLoaded = "Item catalog loaded"
)

// suggestions further than this are not offered
const maxSuggestionDistance = 3
