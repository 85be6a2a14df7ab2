package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	genCount       int
	genExtra       string
	genProvider    string
	genModel       string
	genTimeout     time.Duration
	genScriptsOnly bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate <channel>",
	Short: "Generate new short scripts for a channel",
	Long: `Generate runs one or more generation cycles for a channel:
- Rebuild the exclusion prompt from the channel's used-title corpus
- Call the configured LLM provider
- Extract candidate fact titles from the returned script
- Reject duplicates, rewordings, banned movies, and over-used topics
- Persist the accepted titles and the script

Example:
  shortsman generate MovieFacts
  shortsman generate MovieFacts --count 3 --extra "focus on 90s thrillers"
  shortsman generate MovieFacts --provider ollama --model llama3`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVarP(&genCount, "count", "n", 1, "number of scripts to generate")
	generateCmd.Flags().StringVar(&genExtra, "extra", "", "extra instructions appended to the prompt")
	generateCmd.Flags().StringVar(&genProvider, "provider", "", "LLM provider (openai, anthropic, ollama)")
	generateCmd.Flags().StringVar(&genModel, "model", "", "LLM model name")
	generateCmd.Flags().DurationVar(&genTimeout, "timeout", 5*time.Minute, "overall generation timeout")
	generateCmd.Flags().BoolVar(&genScriptsOnly, "scripts-only", false, "print only the scripts, no acceptance summary")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	channel := args[0]

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	if genProvider != "" {
		cfg.LLM.Provider = genProvider
	}
	if genModel != "" {
		cfg.LLM.Model = genModel
	}

	p, _, err := buildPipeline(cfg, true)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), genTimeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Channel: %s\n", channel)
		fmt.Fprintf(os.Stderr, "Provider: %s\n", cfg.LLM.Provider)
		fmt.Fprintf(os.Stderr, "Scripts: %d\n\n", genCount)
	}

	results, err := p.GenerateScripts(ctx, channel, genCount, genExtra)

	// Print what we got even when a later cycle failed
	for i, r := range results {
		if len(results) > 1 {
			fmt.Printf("--- script %d ---\n", i+1)
		}
		fmt.Println(r.Script)
		if genScriptsOnly {
			continue
		}
		fmt.Printf("\nAccepted titles (%d):\n", len(r.Accepted))
		for _, t := range r.Accepted {
			fmt.Printf("  + %s\n", t)
		}
		if len(r.Rejected) > 0 {
			fmt.Printf("Rejected titles (%d):\n", len(r.Rejected))
			for _, rej := range r.Rejected {
				fmt.Printf("  - %s\n    reason: %s\n", rej.Title, rej.Reason)
			}
		}
		fmt.Println()
	}

	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	return nil
}
