package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/styledot/pkg/document"
	"github.com/arthur-debert/styledot/pkg/errors"
	"github.com/arthur-debert/styledot/pkg/paths"
	"github.com/arthur-debert/styledot/pkg/styles"
	"github.com/arthur-debert/styledot/pkg/ui"
)

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "check <stylesheet>...",
		Short:   MsgCheckShort,
		Long:    MsgCheckLong,
		Example: MsgCheckExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report := &ui.CheckReport{}
			for _, arg := range args {
				report.Files = append(report.Files, a.checkFile(arg))
			}

			r, err := a.renderer(cmd)
			if err != nil {
				return err
			}
			if err := r.RenderResult(report); err != nil {
				return err
			}

			if report.Failed() {
				failed := 0
				for _, fc := range report.Files {
					if fc.Status == ui.StatusError {
						failed++
					}
				}
				return errors.Newf(errors.ErrInvalidInput, MsgErrCheckFailed, failed, len(report.Files))
			}
			return nil
		},
	}

	return cmd
}

// checkFile decodes and loads one document with key validation forced
// on, regardless of the configured styles settings.
func (a *app) checkFile(name string) ui.FileCheck {
	fc := ui.FileCheck{Path: name, Status: ui.StatusOK}

	path, err := paths.FindStylesheet(name)
	if err != nil {
		fc.Status = ui.StatusError
		fc.Problems = []string{err.Error()}
		return fc
	}
	fc.Path = path

	doc, err := document.DecodeFile(path)
	if err != nil {
		fc.Status = ui.StatusError
		fc.Problems = []string{err.Error()}
		return fc
	}

	var overwrites []string
	opts := append(a.cfg.Styles.SheetOptions(),
		styles.WithKeyValidation(true),
		styles.WithOverwriteHook(func(key string) {
			overwrites = append(overwrites, key)
		}),
	)
	sheet := styles.New[interface{}](opts...)
	if err := document.Populate(sheet, doc); err != nil {
		fc.Status = ui.StatusError
		fc.Problems = problemList(err)
	} else if len(overwrites) > 0 {
		fc.Status = ui.StatusWarning
		for _, key := range overwrites {
			fc.Problems = append(fc.Problems, fmt.Sprintf(MsgProblemDuplicate, key))
		}
	}
	fc.Rules = sheet.Len()

	return fc
}

// problemList flattens a joined load error into its leaf messages.
func problemList(err error) []string {
	if u, ok := err.(interface{ Unwrap() []error }); ok {
		errs := u.Unwrap()
		out := make([]string, 0, len(errs))
		for _, e := range errs {
			out = append(out, e.Error())
		}
		return out
	}
	return []string{err.Error()}
}
