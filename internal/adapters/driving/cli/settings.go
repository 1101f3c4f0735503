package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure chunking, retrieval, and OpenRouter options.

Settings live in a TOML config file; environment variables (ASKDOC_* and
OPENROUTER_API_KEY) override file values.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Set a configuration value by key, for example:

  askdoc settings set chunk.size 400
  askdoc settings set openrouter.llm_model openai/gpt-4o`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsSetKeyCmd = &cobra.Command{
	Use:   "set-key",
	Short: "Store the OpenRouter API key",
	Long:  `Prompts for the OpenRouter API key without echoing it and stores it in the config file.`,
	RunE:  runSettingsSetKey,
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runSettingsPath,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsSetKeyCmd)
	settingsCmd.AddCommand(settingsPathCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Storage]")
	cmd.Printf("  Data directory: %s\n", settings.DataDir)
	cmd.Printf("  Collection: %s\n", settings.Collection)
	cmd.Println()

	cmd.Println("[Chunking]")
	cmd.Printf("  Target size: %d\n", settings.ChunkSize)
	cmd.Printf("  Overlap: %d words\n", settings.ChunkOverlap)
	cmd.Printf("  Upload limit: %d bytes\n", settings.MaxUploadBytes)
	cmd.Println()

	cmd.Println("[Retrieval]")
	cmd.Printf("  Default top-k: %d\n", settings.DefaultTopK)
	cmd.Printf("  Max top-k: %d\n", settings.MaxTopK)
	cmd.Println()

	cmd.Println("[OpenRouter]")
	cmd.Printf("  Base URL: %s\n", settings.BaseURL)
	cmd.Printf("  Embedding model: %s\n", settings.EmbeddingModel)
	cmd.Printf("  Completion model: %s\n", settings.LLMModel)
	if settings.APIKey != "" {
		cmd.Printf("  API Key: %s\n", maskAPIKey(settings.APIKey))
	} else {
		cmd.Printf("  API Key: (not set)\n")
		cmd.Println()
		cmd.Println("Run 'askdoc settings set-key' to configure the API key.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return err
	}
	cmd.Printf("Set %s = %s\n", args[0], args[1])
	return nil
}

func runSettingsSetKey(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Print("OpenRouter API key: ")
	key := readPassword()
	cmd.Println()

	if err := settingsService.SetAPIKey(key); err != nil {
		return err
	}
	cmd.Println("API key stored.")
	return nil
}

func runSettingsPath(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Println(settingsService.ConfigPath())
	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readPassword() string {
	// Try to read the key without echo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		if err == nil {
			return string(password)
		}
	}
	// Fallback to regular input
	reader := bufio.NewReader(os.Stdin)
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
