package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"srpcheck/internal/analyzer"
	"srpcheck/internal/config"
	"srpcheck/internal/watcher"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

var (
	formatFlag         string
	watchFlag          bool
	configFlag         string
	generateConfigFlag bool
	methodThreshold    int
	depThreshold       int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "srpcheck [files or directories]",
	Short: "A Python analyzer that flags likely Single Responsibility violations",
	Long: `srpcheck is a heuristic static analysis tool that inspects Python classes
and flags plausible Single Responsibility Principle violations: too many
methods, too many distinct collaborators, and methods mixing unrelated actions.

Examples:
  srpcheck .                             # Analyze current directory
  srpcheck models.py services.py         # Analyze specific files
  cat models.py | srpcheck               # Analyze source from stdin
  srpcheck --format=json .               # Output results in JSON format
  srpcheck --config=.srpcheck.yml .      # Use custom config
  srpcheck --generate-config             # Generate sample config file`,
	Run: runAnalysis,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Output format (console, json)")
	rootCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch mode for development")
	rootCmd.Flags().StringVarP(&configFlag, "config", "c", "", "Path to configuration file")
	rootCmd.Flags().BoolVar(&generateConfigFlag, "generate-config", false, "Generate sample configuration file")
	rootCmd.Flags().IntVar(&methodThreshold, "method-threshold", config.DefaultMethodThreshold, "Method-count ceiling per class")
	rootCmd.Flags().IntVar(&depThreshold, "dependency-threshold", config.DefaultDependencyThreshold, "Dependency-set-size ceiling per class")
}

func runAnalysis(cmd *cobra.Command, args []string) {
	if generateConfigFlag {
		generateConfig()
		return
	}

	cfg, err := config.LoadConfig(configFlag)
	if err != nil {
		color.Red("Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if formatFlag != "" {
		cfg.Output.Format = formatFlag
	}
	if cmd.Flags().Changed("method-threshold") {
		cfg.Analysis.MethodThreshold = methodThreshold
	}
	if cmd.Flags().Changed("dependency-threshold") {
		cfg.Analysis.DependencyThreshold = depThreshold
	}
	if err := cfg.Validate(); err != nil {
		color.Red("Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if stdinMode(args) {
		runStdin(cfg)
		return
	}

	if len(args) == 0 {
		args = []string{"."}
	}

	var pyFiles []string
	for _, arg := range args {
		files, err := collectPythonFiles(arg)
		if err != nil {
			color.Red("Error collecting files from %s: %v\n", arg, err)
			continue
		}
		pyFiles = append(pyFiles, files...)
	}

	if len(pyFiles) == 0 {
		color.Yellow("⚠️  No Python files found to analyze\n")
		return
	}

	analyzerEngine := analyzer.NewAnalyzerWithConfig(cfg)
	reportGen := analyzer.NewReportGeneratorWithConfig(cfg)

	if cfg.Output.Verbose {
		color.Cyan("🔍 Analyzing %d Python files with %d rules...\n", len(pyFiles), analyzerEngine.GetRuleCount())
		if configFlag != "" {
			color.Cyan("📋 Using configuration: %s\n", configFlag)
		}
		color.Cyan("🎯 Active rules: %s\n\n", strings.Join(analyzerEngine.GetRuleNames(), ", "))
	} else {
		color.Cyan("🔍 Analyzing %d Python files...\n\n", len(pyFiles))
	}

	hadViolations := false
	analyzeOnce := func(files []string) error {
		result, err := analyzerEngine.AnalyzeFiles(files)
		if err != nil {
			return err
		}
		hadViolations = result.TotalViolations > 0

		report := reportGen.Generate(result)
		if cfg.Output.OutputFile != "" {
			if err := writeReportToFile(report, cfg.Output.OutputFile); err != nil {
				color.Red("Failed to write report to file: %v\n", err)
			} else {
				color.Green("📄 Report saved to: %s\n", cfg.Output.OutputFile)
			}
		} else {
			fmt.Print(report)
		}
		return nil
	}

	if err := analyzeOnce(pyFiles); err != nil {
		color.Red("Analysis failed: %v\n", err)
		return
	}

	if watchFlag {
		runWatch(cfg, args, analyzeOnce)
		return
	}

	if hadViolations {
		os.Exit(1)
	}
}

// stdinMode reports whether source should be read from standard input: an
// explicit "-" argument, or no arguments with piped input.
func stdinMode(args []string) bool {
	if len(args) == 1 && args[0] == "-" {
		return true
	}
	if len(args) > 0 {
		return false
	}
	fd := os.Stdin.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// runStdin reads source until EOF and prints one line per violation, in
// order, or the all-clear message.
func runStdin(cfg *config.Config) {
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		color.Red("Error reading stdin: %v\n", err)
		os.Exit(1)
	}

	engine := analyzer.NewAnalyzerWithConfig(cfg)
	violations, err := engine.AnalyzeSource(src)
	if err != nil {
		color.Red("Syntax error in your code: %v\n", err)
		violations = nil
	}

	if len(violations) == 0 {
		fmt.Println("No SRP violations detected.")
		return
	}
	for _, v := range violations {
		fmt.Printf("- Class %s: %s\n", v.Class, v.Reason)
	}
	os.Exit(1)
}

func runWatch(cfg *config.Config, paths []string, handler func([]string) error) {
	fw, err := watcher.NewFileWatcher(cfg)
	if err != nil {
		color.Red("Failed to start watch mode: %v\n", err)
		os.Exit(1)
	}
	defer fw.Close()

	if err := fw.Watch(paths, func(changed []string) error {
		color.Cyan("\n🔁 Change detected, re-analyzing %d files...\n\n", len(changed))
		return handler(changed)
	}); err != nil {
		color.Red("Failed to watch paths: %v\n", err)
		os.Exit(1)
	}

	color.Cyan("👀 Watching for changes (Ctrl+C to stop)...\n")
	select {}
}

func writeReportToFile(report, filePath string) error {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	return os.WriteFile(filePath, []byte(report), 0644)
}

func generateConfig() {
	configPath := ".srpcheck.yml"
	if err := config.GenerateConfig(configPath); err != nil {
		color.Red("Failed to generate config file: %v\n", err)
		os.Exit(1)
	}
	color.Green("✅ Generated sample configuration file: %s\n", configPath)
	color.Cyan("📝 Edit this file to customize srpcheck behavior\n")
	color.Cyan("🚀 Run 'srpcheck --config=%s .' to use it\n", configPath)
}

// collectPythonFiles recursively finds all .py files in the given path
func collectPythonFiles(path string) ([]string, error) {
	var pyFiles []string

	err := filepath.Walk(path, func(filePath string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		// Skip virtualenvs, caches, and other common directories
		if info.IsDir() {
			name := info.Name()
			if name == "venv" || name == ".venv" || name == "__pycache__" || name == ".git" || name == "node_modules" {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasSuffix(filePath, ".py") {
			pyFiles = append(pyFiles, filePath)
		}

		return nil
	})

	return pyFiles, err
}
