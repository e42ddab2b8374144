package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	figmarender "github.com/hellenic-development/figma-render"
	"github.com/hellenic-development/figma-render/internal/config"
	"github.com/hellenic-development/figma-render/internal/server"
	"github.com/hellenic-development/figma-render/pkg/formatter"
	"github.com/hellenic-development/figma-render/pkg/transpiler"
)

const version = "0.1.0"

var (
	figmaURL    string
	accessToken string
	outputFile  string
	nodeIDs     string
	pageTitle   string
	configPath  string
	splitOutput bool
	verbose     bool
	serveAddr   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "figma-render",
		Short: "Render Figma files as HTML and CSS",
		Long:  "A tool that converts Figma documents into browser-renderable HTML markup and an accompanying stylesheet via the Figma API",
		Run:   run,
	}

	rootCmd.Flags().StringVarP(&figmaURL, "url", "u", "", "Figma file URL (required)")
	rootCmd.Flags().StringVarP(&accessToken, "token", "t", "", "Figma Personal Access Token (falls back to config file, then FIGMA_TOKEN)")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output HTML file (default from config, figma-render.html)")
	rootCmd.Flags().StringVarP(&nodeIDs, "node-ids", "n", "", "Comma-separated node IDs to render (optional, renders specific nodes instead of entire file)")
	rootCmd.Flags().StringVar(&pageTitle, "title", "", "Page title for the generated document (default: Figma file name)")
	rootCmd.Flags().BoolVar(&splitOutput, "split", false, "Write markup and stylesheet as separate .html/.css files")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "figma-render.toml", "Path to TOML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log pipeline progress")

	rootCmd.MarkFlagRequired("url")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP conversion service",
		Run:   serve,
	}
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config, :8080)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("figma-render version %s\n", version)
		},
	}

	rootCmd.AddCommand(serveCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	cyan.Println("\n🎨 Figma Render")
	cyan.Println("================")
	cyan.Println()

	cfg, err := config.Load(configPath)
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	token := resolveToken(cfg)
	if token == "" {
		red.Println("Error: no access token (use --token, the config file, or FIGMA_TOKEN)")
		os.Exit(1)
	}

	out := outputFile
	if out == "" {
		out = cfg.Output.File
	}
	title := pageTitle
	if title == "" {
		title = cfg.Output.Title
	}

	var parsedNodeIDs []string
	if nodeIDs != "" {
		parsedNodeIDs = figmarender.ParseNodeIDs(nodeIDs)
	}

	opts := figmarender.Options{
		AccessToken: token,
		FileURL:     figmaURL,
		NodeIDs:     parsedNodeIDs,
		PageTitle:   title,
	}
	if verbose {
		opts.Logger = &cliLogger{}
	}

	result, err := figmarender.Run(opts)
	if err != nil {
		red.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	cyan.Println("\n📊 Conversion Summary:")
	fmt.Printf("  • File: %s\n", result.FileName)
	fmt.Printf("  • Markup: %d bytes\n", len(result.Markup))
	fmt.Printf("  • Stylesheet: %d bytes\n", len(result.Stylesheet))

	if splitOutput {
		if err := writeSplit(result, out); err != nil {
			red.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		green.Printf("\n💾 Writing to %s... ", out)
		if err := os.WriteFile(out, []byte(result.Page), 0644); err != nil {
			red.Printf("✗\n")
			red.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		green.Println("✓")
	}

	green.Printf("\n✨ Successfully rendered %s\n\n", result.FileName)
}

// writeSplit writes the stylesheet next to the HTML file and links it instead
// of embedding it.
func writeSplit(result *figmarender.Result, htmlPath string) error {
	cssPath := strings.TrimSuffix(htmlPath, ".html") + ".css"

	if err := os.WriteFile(cssPath, []byte(result.Stylesheet), 0644); err != nil {
		return fmt.Errorf("write stylesheet: %w", err)
	}

	out := &transpiler.Output{Markup: result.Markup, Stylesheet: result.Stylesheet}
	page := formatter.Linked(out, result.FileName, filepath.Base(cssPath))

	if err := os.WriteFile(htmlPath, []byte(page), 0644); err != nil {
		return fmt.Errorf("write markup: %w", err)
	}
	return nil
}

func serve(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	addr := serveAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	level := charmlog.InfoLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})

	srv := server.New(logger, figmarender.Run, resolveToken(cfg))
	if err := srv.ListenAndServe(addr); err != nil {
		logger.Fatal("server exited", "err", err)
	}
}

// resolveToken picks the access token: flag, then config file, then environment.
func resolveToken(cfg config.Config) string {
	if accessToken != "" {
		return accessToken
	}
	if cfg.Token != "" {
		return cfg.Token
	}
	return os.Getenv("FIGMA_TOKEN")
}

// cliLogger implements figmarender.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Printf("✗ "+format+"\n", args...)
}
