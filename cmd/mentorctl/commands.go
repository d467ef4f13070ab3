package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/noah-isme/mentor-hub-api/internal/models"
	"github.com/noah-isme/mentor-hub-api/internal/navigation"
	"github.com/noah-isme/mentor-hub-api/internal/repository"
	"github.com/noah-isme/mentor-hub-api/internal/service"
)

type app struct {
	mentors *service.MentorService
	paths   *service.LearningPathService
}

func newApp() *app {
	logger := zap.NewNop()
	catalog := repository.NewCatalogRepository(logger)
	return &app{
		mentors: service.NewMentorService(catalog, nil, nil, 0, logger),
		paths:   service.NewLearningPathService(catalog, logger),
	}
}

func newRootCmd() *cobra.Command {
	a := newApp()
	root := &cobra.Command{
		Use:           "mentorctl",
		Short:         "Browse the mentor catalog from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newListCmd(a), newPathsCmd(a), newResolveCmd(a))
	return root
}

// --- list ---

func newListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Filter and sort mentors",
		Long: `Filter and sort mentors.

Examples:
  mentorctl list --query data
  mentorctl list --skill AWS --skill Figma --sort students
  mentorctl list --availability limited --format csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query, _ := cmd.Flags().GetString("query")
			skills, _ := cmd.Flags().GetStringSlice("skill")
			availability, _ := cmd.Flags().GetString("availability")
			sortBy, _ := cmd.Flags().GetString("sort")
			format, _ := cmd.Flags().GetString("format")
			category, _ := cmd.Flags().GetInt("category")

			req := service.MentorListRequest{
				Criteria: models.MentorCriteria{
					Query:          query,
					SelectedSkills: skills,
					Availability:   availability,
					SortBy:         sortBy,
				},
				PageSize: 100,
			}
			if category > 0 {
				req.Params.CategoryID = &category
			}

			ctx := cmd.Context()
			switch format {
			case "csv":
				file, err := a.mentors.Export(ctx, req, "csv")
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(file.Content)
				return err
			case "table", "":
				resp, _, _, err := a.mentors.List(ctx, req)
				if err != nil {
					return err
				}
				return printMentors(cmd.OutOrStdout(), resp.Mentors, resp.Showing, resp.Total)
			default:
				return fmt.Errorf("unknown format %q, expected table or csv", format)
			}
		},
	}
	cmd.Flags().String("query", "", "free-text query over name, title, company and skills")
	cmd.Flags().StringSlice("skill", nil, "skill to match, repeatable or comma separated")
	cmd.Flags().String("availability", models.AvailabilityFilterAll, "all, available or limited")
	cmd.Flags().String("sort", models.SortByRating, "rating, students, experience or name")
	cmd.Flags().String("format", "table", "table or csv")
	cmd.Flags().Int("category", 0, "category whose skills replace --skill")
	return cmd
}

func printMentors(w io.Writer, mentors []models.Mentor, showing, total int) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTITLE\tAVAILABILITY\tRATING\tSTUDENTS\tSKILLS")
	for _, m := range mentors {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.1f\t%d\t%s\n",
			m.ID, m.Name, m.Title, m.Availability, m.Rating, m.Students, strings.Join(m.Skills, ", "))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nShowing %d of %d mentors\n", showing, total)
	return err
}

// --- paths ---

func newPathsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths",
		Short: "List learning paths with progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			highlight, _ := cmd.Flags().GetInt("path")
			var params navigation.Params
			if highlight > 0 {
				params.PathID = &highlight
			}
			resp, err := a.paths.List(cmd.Context(), params)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, " \tID\tTITLE\tDURATION\tPROGRESS\tSKILLS DONE\tMENTORS")
			for _, p := range resp.Paths {
				marker := " "
				if p.Highlighted {
					marker = "*"
				}
				fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%d%%\t%d/%d\t%d\n",
					marker, p.ID, p.Title, p.Duration, p.Progress, p.CompletedSkills, len(p.Skills), len(p.Mentors))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().Int("path", 0, "path to highlight")
	return cmd
}

// --- resolve ---

func newResolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <link>",
		Short: "Apply a deep link and print the reconciled view state",
		Long: `Apply a deep link and print the reconciled view state as JSON.

Examples:
  mentorctl resolve "/mentors?category=3"
  mentorctl resolve "/mentors?mentor=2"
  mentorctl resolve "/learning-paths?path=1"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := a.resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(view)
		},
	}
}

type resolvedView struct {
	Route   string      `json:"route"`
	View    interface{} `json:"view"`
	Matched *int        `json:"matched,omitempty"`
}

func (a *app) resolve(ctx context.Context, link string) (*resolvedView, error) {
	route, params := navigation.Split(link)
	switch route {
	case navigation.RouteMentors:
		resp, _, _, err := a.mentors.List(ctx, service.MentorListRequest{Params: params, PageSize: 100})
		if err != nil {
			return nil, err
		}
		matched := resp.Matched
		return &resolvedView{Route: route, View: resp.View, Matched: &matched}, nil
	case navigation.RouteLearningPaths:
		resp, err := a.paths.List(ctx, params)
		if err != nil {
			return nil, err
		}
		return &resolvedView{Route: route, View: resp.View}, nil
	case navigation.RouteDashboard, navigation.RouteSettings:
		return &resolvedView{Route: route, View: struct{}{}}, nil
	default:
		return nil, fmt.Errorf("unknown route %s", strconv.Quote(route))
	}
}
