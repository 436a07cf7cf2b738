package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/styledot/pkg/styles"
	"github.com/arthur-debert/styledot/pkg/ui"
)

func newResolveCmd(a *app) *cobra.Command {
	var (
		path      string
		states    []string
		all       bool
		hierarchy bool
	)

	cmd := &cobra.Command{
		Use:     "resolve <stylesheet>",
		Short:   MsgResolveShort,
		Long:    MsgResolveLong,
		Example: MsgResolveExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sheet, source, err := a.loadSheet(args[0])
			if err != nil {
				return err
			}

			// Config supplies the default, the flag wins when given
			if !cmd.Flags().Changed("hierarchy") {
				hierarchy = a.cfg.Resolve.Hierarchy
			}

			query := styles.Query{Nouns: styles.SplitPath(path), States: states}
			matches := sheet.FindAllMatches(query)

			// Same retry MatchHierarchy does, kept here so the report
			// can say the leaf fallback was taken.
			fallback := false
			if len(matches) == 0 && hierarchy && len(query.Nouns) > 1 {
				leaf := styles.Query{
					Nouns:  query.Nouns[len(query.Nouns)-1:],
					States: query.States,
				}
				matches = sheet.FindAllMatches(leaf)
				fallback = len(matches) > 0
			}
			if !all && len(matches) > 1 {
				matches = matches[:1]
			}

			report := &ui.ResolveReport{
				Source:   source,
				Path:     path,
				States:   states,
				Fallback: fallback,
			}
			for _, m := range matches {
				report.Matches = append(report.Matches, ui.MatchResult{
					Key:            m.Key,
					Path:           m.Path,
					States:         m.States,
					Value:          m.Value,
					Score:          m.Score,
					MatchingNouns:  m.MatchingNouns,
					MatchingStates: m.MatchingStates,
				})
			}

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			return r.RenderResult(report)
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", MsgFlagPath)
	cmd.Flags().StringSliceVarP(&states, "state", "s", nil, MsgFlagState)
	cmd.Flags().BoolVar(&all, "all", false, MsgFlagAll)
	cmd.Flags().BoolVar(&hierarchy, "hierarchy", false, MsgFlagHierarchy)
	_ = cmd.MarkFlagRequired("path")

	return cmd
}
