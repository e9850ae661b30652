// Command replay analyzes a streaming-history export offline, without
// running the API server: point it at an extracted export folder and it
// prints the summary and top-N tables.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/replay-fm/replay-api/internal/adapters/export"
	"github.com/replay-fm/replay-api/internal/stats"
)

var topNumber int

var rootCmd = &cobra.Command{
	Use:   "replay",
	Short: "Offline streaming-history statistics",
}

var reportCmd = &cobra.Command{
	Use:   "report <export-dir>",
	Short: "Aggregates an extracted export folder and prints top statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printReport(args[0], topNumber)
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().IntVarP(&topNumber, "number", "n", 10, "number of rows per table")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func printReport(dir string, n int) error {
	records, diag, err := export.ReadFolder(dir)
	if err != nil {
		return fmt.Errorf("reading export folder: %w", err)
	}

	events, dropped := export.ParseAll(records)
	agg := stats.Build(events)
	summary := agg.Summary()
	top := agg.TopStats()

	fmt.Printf("Parsed %d entries from %d files (%d duplicate files, %d dropped records)\n\n",
		len(events), diag.Files, diag.DuplicateFiles, dropped)
	fmt.Printf("Streams: %d   Unique tracks: %d   Skipped: %d   Shuffled: %.2f%%\n",
		summary.TotalStreams, summary.TotalUniqueTracks, summary.TotalSkipped, summary.PercentShuffled)
	fmt.Printf("Music time: %dh (%dd)   Podcast time: %dh (%dd)   Est. artist revenue: $%s\n",
		summary.MusicTime.Hours, summary.MusicTime.Days,
		summary.PodcastTime.Hours, summary.PodcastTime.Days,
		summary.ArtistRevenue)
	if summary.FirstTrackEver.Track != "N/A" {
		fmt.Printf("First track ever: %s by %s on %s\n",
			summary.FirstTrackEver.Track, summary.FirstTrackEver.Artist, summary.FirstTrackEver.Timestamp)
	}
	fmt.Println()

	if err := renderTable("Top tracks", []string{"#", "Track", "Artist", "Streams", "Skips"},
		agg.TopTracks(n), func(r stats.Ranked) []string {
			t := top.Tracks[r.Key]
			return []string{strconv.Itoa(r.Rank), r.Key, t.Artist,
				strconv.Itoa(t.StreamCount), strconv.Itoa(t.SkipCount)}
		}); err != nil {
		return err
	}

	if err := renderTable("Top artists", []string{"#", "Artist", "Streams", "Unique tracks"},
		agg.TopArtists(n), func(r stats.Ranked) []string {
			a := top.Artists[r.Key]
			return []string{strconv.Itoa(r.Rank), r.Key,
				strconv.Itoa(a.StreamCount), strconv.Itoa(a.UniqueStreamCount)}
		}); err != nil {
		return err
	}

	if err := renderTable("Top albums", []string{"#", "Album", "Artist", "Streams"},
		agg.TopAlbums(n), func(r stats.Ranked) []string {
			al := top.Albums[r.Key]
			return []string{strconv.Itoa(r.Rank), r.Key, al.Artist, strconv.Itoa(al.StreamCount)}
		}); err != nil {
		return err
	}

	return renderTable("Top podcasts", []string{"#", "Show", "Plays"},
		agg.TopPodcasts(n), func(r stats.Ranked) []string {
			return []string{strconv.Itoa(r.Rank), r.Key, strconv.Itoa(top.Podcasts[r.Key])}
		})
}

func renderTable(title string, header []string, ranked []stats.Ranked, row func(stats.Ranked) []string) error {
	if len(ranked) == 0 {
		return nil
	}

	fmt.Println(title)
	table := tablewriter.NewWriter(os.Stdout)
	table.Header(header)
	for _, r := range ranked {
		if err := table.Append(row(r)); err != nil {
			return fmt.Errorf("rendering table: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}
	fmt.Println()
	return nil
}
