package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "A specificity-ranked style rule resolver"
	MsgResolveShort    = "Resolve a query against a stylesheet"
	MsgRulesShort      = "List the rules of a stylesheet"
	MsgCheckShort      = "Validate stylesheet documents"
	MsgConvertShort    = "Re-emit a stylesheet in another format"
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation."
	MsgCompletionShort = "Generate shell completion script"

	// Version output
	MsgVersionFormat = "styledot version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Error messages
	MsgErrNoCommand     = "no command specified"
	MsgErrLoadSheet     = "failed to load stylesheet: %w"
	MsgErrCheckFailed   = "%d of %d files failed validation"
	MsgProblemDuplicate = "rule %q registered more than once"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig    = "Config file (default: styledot.toml in the XDG config dir)"
	MsgFlagFormat    = "Output format (auto, term, text, json)"
	MsgFlagPath      = "Noun path to resolve, e.g. nav.button.icon"
	MsgFlagState     = "Active state tag (repeatable, or comma-separated)"
	MsgFlagAll       = "Print every matching rule ranked by score"
	MsgFlagHierarchy = "Retry unmatched queries with only the final path segment"
	MsgFlagFilter    = "Doublestar glob applied to serialized rule keys"
	MsgFlagTo        = "Target format (json, yaml, toml, xml)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/resolve-long.txt
	msgResolveLongRaw string
	MsgResolveLong    = strings.TrimSpace(msgResolveLongRaw)

	//go:embed msgs/resolve-example.txt
	msgResolveExampleRaw string
	MsgResolveExample    = strings.TrimRight(msgResolveExampleRaw, "\n")

	//go:embed msgs/rules-long.txt
	msgRulesLongRaw string
	MsgRulesLong    = strings.TrimSpace(msgRulesLongRaw)

	//go:embed msgs/rules-example.txt
	msgRulesExampleRaw string
	MsgRulesExample    = strings.TrimRight(msgRulesExampleRaw, "\n")

	//go:embed msgs/check-long.txt
	msgCheckLongRaw string
	MsgCheckLong    = strings.TrimSpace(msgCheckLongRaw)

	//go:embed msgs/check-example.txt
	msgCheckExampleRaw string
	MsgCheckExample    = strings.TrimRight(msgCheckExampleRaw, "\n")

	//go:embed msgs/convert-long.txt
	msgConvertLongRaw string
	MsgConvertLong    = strings.TrimSpace(msgConvertLongRaw)

	//go:embed msgs/convert-example.txt
	msgConvertExampleRaw string
	MsgConvertExample    = strings.TrimRight(msgConvertExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
