package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	channelPrompt     string
	channelPromptFile string
)

// channelsCmd represents the channels command
var channelsCmd = &cobra.Command{
	Use:   "channels",
	Short: "Manage channels",
	Long: `Manage the channel library: each channel has a name, a base generation
prompt, and a corpus of used titles.`,
}

var channelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all channels",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := buildConfig()
		if err != nil {
			return err
		}
		st, err := buildStore(cfg)
		if err != nil {
			return err
		}

		channels, err := st.Channels()
		if err != nil {
			return fmt.Errorf("list channels: %w", err)
		}
		if len(channels) == 0 {
			fmt.Println("No channels yet. Create one with 'shortsman channels add <name>'.")
			return nil
		}

		for _, ch := range channels {
			titles, err := st.Titles(ch.Name)
			if err != nil {
				return fmt.Errorf("load titles for %s: %w", ch.Name, err)
			}
			fmt.Printf("%-30s %d titles\n", ch.Name, len(titles))
		}
		return nil
	},
}

var channelsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a new channel",
	Long: `Create a channel with a base generation prompt. The prompt comes from
--prompt, --prompt-file, or stdin when neither is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		prompt, err := readPromptInput()
		if err != nil {
			return err
		}
		if strings.TrimSpace(prompt) == "" {
			return fmt.Errorf("empty prompt (use --prompt, --prompt-file, or pipe via stdin)")
		}

		cfg, err := buildConfig()
		if err != nil {
			return err
		}
		st, err := buildStore(cfg)
		if err != nil {
			return err
		}

		if err := st.AddChannel(name, prompt); err != nil {
			return fmt.Errorf("add channel: %w", err)
		}
		fmt.Printf("✓ Created channel %s\n", name)
		return nil
	},
}

var channelsPromptCmd = &cobra.Command{
	Use:   "prompt <name>",
	Short: "Show or update a channel's base prompt",
	Long: `With no flags, print the channel's current base prompt. With --prompt or
--prompt-file, replace it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		cfg, err := buildConfig()
		if err != nil {
			return err
		}
		st, err := buildStore(cfg)
		if err != nil {
			return err
		}

		if channelPrompt == "" && channelPromptFile == "" {
			prompt, err := st.Prompt(name)
			if err != nil {
				return fmt.Errorf("load prompt: %w", err)
			}
			fmt.Println(prompt)
			return nil
		}

		prompt, err := readPromptInput()
		if err != nil {
			return err
		}
		if err := st.SetPrompt(name, prompt); err != nil {
			return fmt.Errorf("set prompt: %w", err)
		}
		fmt.Printf("✓ Updated prompt for %s\n", name)
		return nil
	},
}

// readPromptInput resolves the prompt text from --prompt, --prompt-file, or
// stdin, in that order.
func readPromptInput() (string, error) {
	if channelPrompt != "" {
		return channelPrompt, nil
	}
	if channelPromptFile != "" {
		data, err := os.ReadFile(channelPromptFile)
		if err != nil {
			return "", fmt.Errorf("read prompt file: %w", err)
		}
		return string(data), nil
	}

	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	return "", nil
}

func init() {
	rootCmd.AddCommand(channelsCmd)
	channelsCmd.AddCommand(channelsListCmd)
	channelsCmd.AddCommand(channelsAddCmd)
	channelsCmd.AddCommand(channelsPromptCmd)

	for _, c := range []*cobra.Command{channelsAddCmd, channelsPromptCmd} {
		c.Flags().StringVar(&channelPrompt, "prompt", "", "prompt text")
		c.Flags().StringVar(&channelPromptFile, "prompt-file", "", "file containing the prompt text")
	}
}
