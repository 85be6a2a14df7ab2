package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var titlesYes bool

// titlesCmd represents the titles command
var titlesCmd = &cobra.Command{
	Use:   "titles",
	Short: "Manage a channel's used-title corpus",
	Long: `Inspect and edit the corpus of fact titles a channel has already used.
Titles added here go through the same duplicate filter as generated ones.`,
}

var titlesListCmd = &cobra.Command{
	Use:   "list <channel>",
	Short: "List a channel's used titles",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig()
		if err != nil {
			return err
		}
		st, err := buildStore(cfg)
		if err != nil {
			return err
		}

		titles, err := st.Titles(args[0])
		if err != nil {
			return fmt.Errorf("load titles: %w", err)
		}
		for _, t := range titles {
			fmt.Println(t)
		}
		if verbose {
			fmt.Printf("\n%d titles\n", len(titles))
		}
		return nil
	},
}

var titlesAddCmd = &cobra.Command{
	Use:   "add <channel> <title>...",
	Short: "Add titles to a channel, filtering duplicates",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		channel := args[0]
		titles := args[1:]

		cfg, err := buildConfig()
		if err != nil {
			return err
		}
		p, _, err := buildPipeline(cfg, false)
		if err != nil {
			return err
		}

		accepted, rejected, err := p.AddTitles(channel, titles)
		if err != nil {
			return fmt.Errorf("add titles: %w", err)
		}

		for _, t := range accepted {
			fmt.Printf("+ %s\n", t)
		}
		for _, r := range rejected {
			fmt.Printf("- %s\n  reason: %s\n", r.Title, r.Reason)
		}
		fmt.Printf("\n%d accepted, %d rejected\n", len(accepted), len(rejected))
		return nil
	},
}

var titlesCheckCmd = &cobra.Command{
	Use:   "check <channel> <title>",
	Short: "Check whether a title would be rejected as a duplicate",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig()
		if err != nil {
			return err
		}
		p, _, err := buildPipeline(cfg, false)
		if err != nil {
			return err
		}

		dup, reason, err := p.CheckTitle(args[0], args[1])
		if err != nil {
			return fmt.Errorf("check title: %w", err)
		}
		if dup {
			fmt.Printf("DUPLICATE: %s\n", reason)
		} else {
			fmt.Println("OK: not a duplicate")
		}
		return nil
	},
}

var titlesDeleteCmd = &cobra.Command{
	Use:   "delete <channel> <title>",
	Short: "Delete one title from a channel's corpus",
	Long:  `Delete an exact title line from the corpus. The title must match exactly as listed by 'titles list'.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig()
		if err != nil {
			return err
		}
		st, err := buildStore(cfg)
		if err != nil {
			return err
		}

		if err := st.DeleteTitle(args[0], args[1]); err != nil {
			return fmt.Errorf("delete title: %w", err)
		}
		fmt.Printf("✓ Deleted from %s\n", args[0])
		return nil
	},
}

var titlesClearCmd = &cobra.Command{
	Use:   "clear <channel>",
	Short: "Remove all titles from a channel's corpus",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		channel := args[0]
		if !titlesYes {
			return fmt.Errorf("refusing to clear %s without --yes", channel)
		}

		cfg, err := buildConfig()
		if err != nil {
			return err
		}
		st, err := buildStore(cfg)
		if err != nil {
			return err
		}

		if err := st.ClearTitles(channel); err != nil {
			return fmt.Errorf("clear titles: %w", err)
		}
		fmt.Printf("✓ Cleared all titles for %s\n", channel)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(titlesCmd)
	titlesCmd.AddCommand(titlesListCmd)
	titlesCmd.AddCommand(titlesAddCmd)
	titlesCmd.AddCommand(titlesCheckCmd)
	titlesCmd.AddCommand(titlesDeleteCmd)
	titlesCmd.AddCommand(titlesClearCmd)

	titlesClearCmd.Flags().BoolVar(&titlesYes, "yes", false, "confirm the destructive clear")
}
