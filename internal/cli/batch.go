package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/smith505/youtube-shorts-manager/internal/worker"
	"github.com/spf13/cobra"
)

var (
	batchFile    string
	batchCount   int
	batchExtra   string
	batchWorkers int
	batchTimeout time.Duration
	batchAll     bool
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch [channels...]",
	Short: "Generate scripts for multiple channels concurrently",
	Long: `Batch runs generation for several channels at once. Channels come from
the arguments, from a file (one name per line, # comments allowed), or
from --all for every channel in the store.

Channels run concurrently; cycles within one channel stay sequential so
each script's exclusion prompt sees the titles accepted before it.

Example:
  shortsman batch MovieFacts HorrorSecrets
  shortsman batch --file channels.txt --count 2
  shortsman batch --all --workers 4`,
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchFile, "file", "f", "", "file with channel names, one per line")
	batchCmd.Flags().IntVarP(&batchCount, "count", "n", 1, "scripts to generate per channel")
	batchCmd.Flags().StringVar(&batchExtra, "extra", "", "extra instructions appended to every prompt")
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "concurrent channels (default from config)")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 30*time.Minute, "overall batch timeout")
	batchCmd.Flags().BoolVar(&batchAll, "all", false, "run every channel in the store")
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	p, st, err := buildPipeline(cfg, true)
	if err != nil {
		return err
	}

	channels := args
	if batchFile != "" {
		fromFile, err := worker.ReadChannelsFromFile(batchFile)
		if err != nil {
			return err
		}
		channels = append(channels, fromFile...)
	}
	if batchAll {
		known, err := st.Channels()
		if err != nil {
			return fmt.Errorf("list channels: %w", err)
		}
		for _, ch := range known {
			channels = append(channels, ch.Name)
		}
	}
	if len(channels) == 0 {
		return fmt.Errorf("no channels given (pass names, --file, or --all)")
	}

	workers := batchWorkers
	if workers <= 0 {
		workers = cfg.Concurrency.BatchWorkers
	}

	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Channels: %d\n", len(channels))
		fmt.Fprintf(os.Stderr, "Workers: %d\n", workers)
		fmt.Fprintf(os.Stderr, "Scripts per channel: %d\n\n", batchCount)
	}

	proc := worker.NewBatchProcessor(p, workers)
	results := proc.ProcessChannels(ctx, channels, batchCount, batchExtra)

	failures := 0
	for _, r := range results {
		if r.Error != nil {
			failures++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", r.Channel, r.Error)
			continue
		}
		accepted, rejected := 0, 0
		for _, s := range r.Scripts {
			accepted += len(s.Accepted)
			rejected += len(s.Rejected)
		}
		fmt.Printf("✓ %s: %d scripts, %d titles accepted, %d rejected\n",
			r.Channel, len(r.Scripts), accepted, rejected)
	}

	if failures > 0 {
		return fmt.Errorf("%d of %d channels failed", failures, len(results))
	}
	return nil
}
