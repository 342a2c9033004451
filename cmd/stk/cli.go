package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/laobamac/SimpleToolkit/internal/cli"
	"github.com/laobamac/SimpleToolkit/internal/config"
	"github.com/laobamac/SimpleToolkit/internal/constants"
	"github.com/laobamac/SimpleToolkit/internal/logging"
)

// CLI encapsulates the command-line interface for SimpleToolkit.
type CLI struct {
	parser *cli.Parser
	config *config.Config
	logger logging.Logger
}

// NewCLI creates a new CLI instance.
func NewCLI() *CLI {
	return &CLI{
		parser: cli.NewParser(constants.AppName, Version, BuildTime, GitCommit),
	}
}

// Run parses arguments and executes the appropriate command.
// It returns an exit code suitable for os.Exit().
func (c *CLI) Run(args []string) int {
	result, err := c.parser.Parse(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Run '%s help' for usage.\n", constants.AppName)
		return constants.ExitValidation.Int()
	}

	// Load configuration
	if err := c.loadConfig(result); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return constants.ExitError.Int()
	}

	// Apply global flags to config
	c.applyGlobalFlags(result.GlobalFlags)

	if err := c.initLogger(); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		return constants.ExitError.Int()
	}

	// Show help if requested
	if result.ShowHelp {
		return c.showHelp(result)
	}

	// Execute command
	return c.executeCommand(result)
}

// loadConfig loads configuration from file and environment.
func (c *CLI) loadConfig(result *cli.ParseResult) error {
	configPath := result.GlobalFlags.ConfigFile
	if configPath == "" {
		// Use default config path
		configPath = config.DefaultConfig().ConfigPath()
	}

	loader := config.NewLoader(configPath)
	cfg, err := loader.Load()
	if err != nil {
		return err
	}

	c.config = cfg
	return nil
}

// applyGlobalFlags applies CLI global flags to the configuration.
// CLI flags take precedence over config file values.
func (c *CLI) applyGlobalFlags(flags cli.GlobalFlags) {
	if flags.Verbose {
		c.config.Verbose = true
	}
	if flags.Quiet {
		c.config.Quiet = true
	}
	if flags.NoColor {
		c.config.NoColor = true
	}
	if flags.LogFile != "" {
		c.config.LogFile = flags.LogFile
	}
	if flags.LogLevel != "" {
		c.config.LogLevel = flags.LogLevel
	}
}

// initLogger builds the logger from the effective configuration.
func (c *CLI) initLogger() error {
	level := logging.ParseLevel(c.config.LogLevel)
	if c.config.IsVerbose() {
		level = logging.LevelDebug
	}
	if c.config.IsSilent() {
		level = logging.LevelError
	}

	if c.config.LogFile != "" {
		logger, err := logging.NewFileLogger(c.config.LogFile, level)
		if err != nil {
			return err
		}
		c.logger = logger
		return nil
	}

	opts := logging.DefaultOptions()
	opts.Level = level
	opts.NoColor = c.config.NoColor
	opts.Prefix = constants.AppName
	c.logger = logging.New(opts)
	return nil
}

// showHelp displays help information and returns an exit code.
func (c *CLI) showHelp(result *cli.ParseResult) int {
	if result.HelpCommand != "" {
		fmt.Print(c.parser.CommandUsage(result.HelpCommand))
	} else {
		fmt.Print(c.parser.Usage())
	}
	return constants.ExitSuccess.Int()
}

// executeCommand runs the appropriate command handler.
func (c *CLI) executeCommand(result *cli.ParseResult) int {
	switch result.Command {
	case cli.CommandVersion:
		return c.cmdVersion()
	case cli.CommandCheck:
		return c.cmdCheck(result)
	case cli.CommandLookup:
		return c.cmdLookup(result)
	case cli.CommandConvert:
		return c.cmdConvert(result)
	case cli.CommandDB:
		return c.cmdDB(result)
	case cli.CommandSpoof:
		return c.cmdSpoof(result)
	default:
		fmt.Print(c.parser.Usage())
		return constants.ExitSuccess.Int()
	}
}

// cmdVersion displays version information.
func (c *CLI) cmdVersion() int {
	fmt.Print(c.parser.VersionString())
	return constants.ExitSuccess.Int()
}

// fail logs an error and maps it to an exit code.
func (c *CLI) fail(err error, code constants.ExitCode) int {
	c.logger.Error(strings.TrimSpace(err.Error()))
	return code.Int()
}
