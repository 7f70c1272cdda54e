package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"portfolio-backend/config"
	"portfolio-backend/internal/domain"
	"portfolio-backend/internal/repository/catalog"
	"portfolio-backend/internal/usecase"
)

type configLoader func() (*config.Config, error)

func projectsCmd(load configLoader) *cobra.Command {
	var filter string
	var file string

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List catalog projects, optionally filtered by category",
		RunE: func(c *cobra.Command, _ []string) error {
			selection, err := domain.ParseFilterSelection(filter)
			if err != nil {
				return err
			}

			if file == "" {
				cfg, err := load()
				if err != nil {
					return err
				}
				file = cfg.ProjectsFile
			}

			repo, err := catalog.Load(file)
			if err != nil {
				return err
			}

			projects, err := usecase.NewProjectUsecase(repo).List(c.Context(), selection)
			if err != nil {
				return err
			}

			printProjects(c.OutOrStdout(), selection, projects)
			return nil
		},
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "all", "Category: all, frontend, api, backend, cpp")
	cmd.Flags().StringVar(&file, "file", "", "YAML catalog to read instead of the built-in one")
	return cmd
}

func printProjects(w io.Writer, selection domain.FilterSelection, projects []domain.ProjectRecord) {
	fmt.Fprintf(w, "%s (%d)\n\n", selection.Label(), len(projects))
	if len(projects) == 0 {
		fmt.Fprintln(w, "(no projects in this category)")
		return
	}

	for _, p := range projects {
		fmt.Fprintf(w, "- [%d] %s  (%s)\n", p.ID, p.Title, p.Status)
		if len(p.Technologies) > 0 {
			fmt.Fprintf(w, "    %s\n", strings.Join(p.Technologies, ", "))
		}
		if p.HasDemo() {
			fmt.Fprintf(w, "    demo:   %s\n", p.DemoLink)
		}
		if p.HasSource() {
			fmt.Fprintf(w, "    source: %s\n", p.GithubLink)
		}
	}
}
