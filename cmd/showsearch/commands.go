package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Belphemur/ShowSearch/internal/apperrors"
	"github.com/Belphemur/ShowSearch/internal/client"
	"github.com/Belphemur/ShowSearch/internal/config"
	"github.com/Belphemur/ShowSearch/internal/models"
	"github.com/Belphemur/ShowSearch/internal/render"
)

// newDirectoryClient builds the client used by the one-shot commands.
var newDirectoryClient = func() client.Client {
	return client.NewClient(config.GetConfig())
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "showsearch",
		Short:         "Search TV shows and list their episodes",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the web front-end",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return serve()
			},
		},
		newSearchCmd(),
		newEpisodesCmd(),
	)
	return root
}

func newSearchCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search the directory for shows matching a title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			directory := newDirectoryClient()
			defer directory.Close()

			shows, err := directory.SearchShows(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), shows)
			}
			return writeShows(cmd.OutOrStdout(), shows)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the results as JSON")
	return cmd
}

func newEpisodesCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "episodes <show-id>",
		Short: "List the episodes of a show",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			showID, err := strconv.Atoi(args[0])
			if err != nil {
				return &apperrors.ErrInvalidShowID{Value: args[0]}
			}

			directory := newDirectoryClient()
			defer directory.Close()

			episodes, err := directory.FetchEpisodes(cmd.Context(), showID)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), episodes)
			}
			return writeEpisodes(cmd.OutOrStdout(), episodes)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the episodes as JSON")
	return cmd
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeShows(w io.Writer, shows []models.Show) error {
	if len(shows) == 0 {
		_, err := fmt.Fprintln(w, "No shows found.")
		return err
	}
	for _, show := range shows {
		if _, err := fmt.Fprintf(w, "%d\t%s\n", show.ID, show.Name); err != nil {
			return err
		}
	}
	return nil
}

func writeEpisodes(w io.Writer, episodes []models.Episode) error {
	for _, episode := range episodes {
		if _, err := fmt.Fprintln(w, render.EpisodeLabel(episode)); err != nil {
			return err
		}
	}
	return nil
}
