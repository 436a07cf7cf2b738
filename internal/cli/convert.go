package cli

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/styledot/pkg/document"
	"github.com/arthur-debert/styledot/pkg/paths"
)

func newConvertCmd(a *app) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:     "convert <stylesheet>",
		Short:   MsgConvertShort,
		Long:    MsgConvertLong,
		Example: MsgConvertExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := document.ParseFormat(to)
			if err != nil {
				return err
			}

			path, err := paths.FindStylesheet(args[0])
			if err != nil {
				return err
			}
			doc, err := document.DecodeFile(path)
			if err != nil {
				return err
			}

			data, err := document.Encode(doc, target)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&to, "to", "", MsgFlagTo)
	_ = cmd.MarkFlagRequired("to")

	return cmd
}
