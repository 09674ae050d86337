package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/primer/internal/tour"
)

// LessonInfo describes one lesson in list output.
type LessonInfo struct {
	Name  string `json:"name"`
	Title string `json:"title"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List the lessons in tour order",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogue := tour.Catalogue()
			infos := make([]LessonInfo, len(catalogue))
			for i, l := range catalogue {
				infos[i] = LessonInfo{Name: l.Name, Title: l.Title}
			}

			formatter := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if rootOpts.Format == "json" {
				return formatter.Success(infos)
			}

			var b strings.Builder
			tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
			for i, info := range infos {
				fmt.Fprintf(tw, "%d.\t%s\t%s\n", i+1, info.Name, info.Title)
			}
			tw.Flush()
			return formatter.Success(strings.TrimSuffix(b.String(), "\n"))
		},
	}
}
