package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"guangoku.dev/internal/content"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Checks projects, taxonomy, slugs, gallery, resume and blog posts",
		Long: `validate lists every project that references an unknown category or tag,
every missing translation, every slug problem and every gallery or resume
entry that does not line up, and checks that the blog posts load. It exits non-zero when anything is wrong.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			violations := content.ValidateSite()
			for _, v := range violations {
				fmt.Fprintln(out, v)
			}

			posts, blogErr := a.loadBlog()
			if blogErr != nil {
				fmt.Fprintln(out, blogErr)
			}

			if len(violations) > 0 || blogErr != nil {
				return fmt.Errorf("content is invalid: %d violations", len(violations))
			}
			fmt.Fprintf(out, "ok: %d projects, %d posts\n", len(content.Projects()), len(posts))
			return nil
		},
	}
}
