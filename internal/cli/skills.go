package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/repository/catalog"
	"portfolio-backend/internal/usecase"
)

func skillsCmd(load configLoader) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "skills",
		Short: "List skill categories with proficiency",
		RunE: func(c *cobra.Command, _ []string) error {
			if file == "" {
				cfg, err := load()
				if err != nil {
					return err
				}
				file = cfg.SkillsFile
			}

			repo, err := catalog.LoadSkills(file)
			if err != nil {
				return err
			}

			set, err := usecase.NewSkillUsecase(repo).List(c.Context())
			if err != nil {
				return err
			}

			printSkills(c.OutOrStdout(), set)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "YAML skills file to read instead of the built-in one")
	return cmd
}

func printSkills(w io.Writer, set domain.SkillSet) {
	for _, c := range set.Categories {
		fmt.Fprintf(w, "%s\n", c.Title)
		for _, s := range c.Skills {
			fmt.Fprintf(w, "  %-34s %3d%%\n", s.Name, s.Percentage)
		}
		fmt.Fprintln(w)
	}
	if len(set.Badges) > 0 {
		fmt.Fprintf(w, "Also: %s\n", strings.Join(set.Badges, ", "))
	}
}
