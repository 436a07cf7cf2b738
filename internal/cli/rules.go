package cli

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/styledot/pkg/errors"
	"github.com/arthur-debert/styledot/pkg/ui"
)

func newRulesCmd(a *app) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:     "rules <stylesheet>",
		Short:   MsgRulesShort,
		Long:    MsgRulesLong,
		Example: MsgRulesExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheet, source, err := a.loadSheet(args[0])
			if err != nil {
				return err
			}

			report := &ui.RuleReport{Source: source, Filter: filter}
			for key, value := range sheet.Entries() {
				if filter != "" {
					ok, err := matchKeyGlob(filter, key)
					if err != nil {
						return err
					}
					if !ok {
						continue
					}
				}
				report.Rules = append(report.Rules, ui.RuleInfo{Key: key, Value: value})
			}
			report.Total = len(report.Rules)

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderResult(report)
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", MsgFlagFilter)

	return cmd
}

// matchKeyGlob matches a doublestar pattern against a serialized rule
// key. Path dots become separators first, so * stays within one segment
// and ** spans them, mirroring how the patterns treat file paths.
func matchKeyGlob(pattern, key string) (bool, error) {
	ok, err := doublestar.Match(
		strings.ReplaceAll(pattern, ".", "/"),
		strings.ReplaceAll(key, ".", "/"),
	)
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrInvalidInput, "invalid filter pattern %q", pattern)
	}
	return ok, nil
}
