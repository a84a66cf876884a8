// Package main implements arescli, a thin demonstration front end over
// the Ares core library. It owns everything explicitly out of the
// core's scope (spec §1 Non-goals): reading a config file, prompting a
// human, and rendering a report - the core itself never touches a
// terminal or a filesystem path chosen by a user.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/RenTrieu/Ares/internal/types"

	"github.com/RenTrieu/Ares"
)

var (
	verbose        bool
	configPath     string
	humanCheckerOn bool
	apiMode        bool
	sensitivityStr string
	timeout        time.Duration
	offline        bool
	regexList      []string
	pluginDir      string
	dbPath         string
	genAIAPIKey    string
	genAIModel     string
	workers        int
	maxDepth       int
	maxQueueSize   int
)

var rootCmd = &cobra.Command{
	Use:   "arescli [text]",
	Short: "Ares - automated multi-layer decoding",
	Long: `arescli runs the Ares search engine against a piece of text of
unknown encoding, trying decoder chains in priority order until it finds
plaintext, runs out of time, or exhausts the search space.

If text is omitted, it is read from stdin.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCrack,
}

func init() {
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to an ares.yaml config file")
	rootCmd.Flags().BoolVar(&humanCheckerOn, "human-checker", false, "prompt for confirmation before accepting a candidate")
	rootCmd.Flags().BoolVar(&apiMode, "api-mode", false, "suppress interactive prompts even if human-checker is set")
	rootCmd.Flags().StringVar(&sensitivityStr, "sensitivity", "Medium", "gibberish-detector sensitivity (Low, Medium, High)")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "search timeout (0 disables)")
	rootCmd.Flags().BoolVar(&offline, "offline", false, "disable the neural classifier escalation")
	rootCmd.Flags().StringArrayVar(&regexList, "regex", nil, "additional regex pattern recognized as plaintext")
	rootCmd.Flags().StringVar(&pluginDir, "plugin-dir", "", "directory of additional yaegi-interpreted decoders")
	rootCmd.Flags().StringVar(&dbPath, "db", "", "path to the knowledge store sqlite file (empty: default, \"-\": in-memory)")
	rootCmd.Flags().StringVar(&genAIAPIKey, "genai-api-key", os.Getenv("ARES_GENAI_API_KEY"), "Gemini API key for the neural classifier")
	rootCmd.Flags().StringVar(&genAIModel, "genai-model", "", "Gemini model name for the neural classifier")
	rootCmd.Flags().IntVar(&workers, "workers", 0, "search worker pool size (0: default)")
	rootCmd.Flags().IntVar(&maxDepth, "max-depth", 0, "maximum decoder chain depth (0: spec default of 20)")
	rootCmd.Flags().IntVar(&maxQueueSize, "max-queue-size", 0, "priority queue cap (0: spec default of 100000)")
}

func runCrack(cmd *cobra.Command, args []string) error {
	logger := buildLogger()
	defer logger.Sync()

	input, err := readInput(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfigFile(configPath)
	if err != nil {
		return err
	}
	cfg = mergeFlags(cmd, cfg)

	opts := ares.Options{
		Logger:       logger,
		PluginDir:    pluginDir,
		GenAIAPIKey:  genAIAPIKey,
		GenAIModel:   genAIModel,
		DatabasePath: resolveDBPath(dbPath),
	}
	if cfg.HumanCheckerOn && !cfg.APIMode {
		opts.Prompter = TUIPrompter{}
	}

	engine, err := ares.New(cfg, opts)
	if err != nil {
		return fmt.Errorf("arescli: failed to build engine: %w", err)
	}
	defer engine.Close()

	sol, err := engine.Search(context.Background(), ares.Text(input), cfg)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), renderFailure(ares.Text(input), err))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderSolution(sol))
	return nil
}

func readInput(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("arescli: failed to read stdin: %w", err)
	}
	return string(raw), nil
}

func resolveDBPath(flag string) string {
	if flag == "-" {
		return ":memory:"
	}
	return flag
}

// mergeFlags layers command-line flags over whatever loadConfigFile
// produced, with flags winning: this mirrors the teacher's own
// root.PersistentFlags-over-file precedence. --sensitivity and --timeout
// replace the file's values only when given on the command line (or, for
// the timeout, when the file sets none).
func mergeFlags(cmd *cobra.Command, cfg types.Configuration) types.Configuration {
	if humanCheckerOn {
		cfg.HumanCheckerOn = true
	}
	if apiMode {
		cfg.APIMode = true
	}
	if cmd.Flags().Changed("sensitivity") {
		if s, ok := types.ParseSensitivity(sensitivityStr); ok {
			cfg.Sensitivity = s
		}
	}
	if cmd.Flags().Changed("timeout") || cfg.Timeout == 0 {
		cfg.Timeout = timeout
	}
	if offline {
		cfg.Offline = true
	}
	if len(regexList) > 0 {
		cfg.RegexList = append(cfg.RegexList, regexList...)
	}
	if workers > 0 {
		cfg.Workers = workers
	}
	if maxDepth > 0 {
		cfg.MaxDepth = maxDepth
	}
	if maxQueueSize > 0 {
		cfg.MaxQueueSize = maxQueueSize
	}
	return cfg
}

func buildLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
