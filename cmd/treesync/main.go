// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/navwar/treesync/pkg/filespec"
	"github.com/navwar/treesync/pkg/fs"
	"github.com/navwar/treesync/pkg/lfs"
	"github.com/navwar/treesync/pkg/log"
	"github.com/navwar/treesync/pkg/ts"
)

const (
	TreeSyncVersion = "0.0.1"
)

const (
	EnvPrefix = "TREESYNC"
)

// Exit Codes
const (
	ExitCodeSuccess = 0
	ExitCodeFailure = 1
	ExitCodeUsage   = 2
)

// Config Flags
const (
	flagConfig = "config"
	flagDebug  = "debug"
)

// Filter Flags
const (
	flagExcludeHidden      = "exclude-hidden"
	flagExcludeFiles       = "exclude-files"
	flagIncludeFiles       = "include-files"
	flagExcludeDirectories = "exclude-dirs"
	flagIncludeDirectories = "include-dirs"
)

// Sync Flags
const (
	flagQuiet                    = "quiet"
	flagDelete                   = "delete"
	flagDeleteExcludeFiles       = "no-delete-files"
	flagDeleteExcludeDirectories = "no-delete-dirs"
	flagReport                   = "report"
)

// List Flags
const (
	flagFormat                = "format"
	flagTimeLayout            = "time-layout"
	flagTimeZone              = "time-zone"
	flagHumanReadableFileSize = "human-readable-file-size"
)

// List Defaults
const (
	DefaultFormat = "text"
)

// Log Flags
const (
	flagLogPath   = "log-path"
	flagLogFormat = "log-format"
	flagLogPerm   = "log-perm"
)

// usageError is returned when the command line is invalid.
type usageError struct {
	err error
}

func (e *usageError) Error() string {
	return e.err.Error()
}

func (e *usageError) Unwrap() error {
	return e.err
}

// loggedError is returned when the error was already written to the log.
type loggedError struct {
	err error
}

func (e *loggedError) Error() string {
	return e.err.Error()
}

func (e *loggedError) Unwrap() error {
	return e.err
}

func newUsageError(format string, a ...interface{}) error {
	return &usageError{err: fmt.Errorf(format, a...)}
}

// exitCode returns the exit code for the error returned by a command.
func exitCode(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}
	var ue *usageError
	if errors.As(err, &ue) || errors.Is(err, fs.ErrPrecondition) {
		return ExitCodeUsage
	}
	return ExitCodeFailure
}

func initConfigFlags(flag *pflag.FlagSet) {
	flag.String(flagConfig, "", "path to a configuration file (YAML, TOML, or JSON) with values for any flag")
	flag.Bool(flagDebug, false, "log configuration and events in addition to progress")
}

func initFilterFlags(flag *pflag.FlagSet) {
	flag.Bool(flagExcludeHidden, false, "exclude hidden files and directories in the source")
	flag.String(flagExcludeFiles, "", "a comma-separated list of filespecs for files to exclude, e.g., *.jpg,\"a,b.txt\"")
	flag.String(flagIncludeFiles, "", "a comma-separated list of filespecs for files to include (cannot be combined with --"+flagExcludeFiles+")")
	flag.String(flagExcludeDirectories, "", "a comma-separated list of filespecs for directories to exclude")
	flag.String(flagIncludeDirectories, "", "a comma-separated list of filespecs for directories to include (cannot be combined with --"+flagExcludeDirectories+")")
}

func initSyncFlags(flag *pflag.FlagSet) {
	flag.BoolP(flagQuiet, "q", false, "do not log a line for each file or directory that is changed")
	flag.BoolP(flagDelete, "d", false, "delete files and directories at destination that do not exist at source")
	flag.String(flagDeleteExcludeFiles, "", "a comma-separated list of filespecs for files never deleted from the destination (requires --"+flagDelete+")")
	flag.String(flagDeleteExcludeDirectories, "", "a comma-separated list of filespecs for directories never deleted from the destination (requires --"+flagDelete+")")
	flag.String(flagReport, "", "path to write the results to.  Written as JSON if the path ends in .json, otherwise as YAML.")
}

func initListFlags(flag *pflag.FlagSet) {
	flag.StringP(flagFormat, "f", DefaultFormat, "output format.  Either jsonl or text.")
	flag.StringP(flagTimeLayout, "t", "Default", "the layout to use for file timestamps.  Use go layout format, or the name of a layout.  Use treesync layouts to show all named layouts.")
	flag.StringP(flagTimeZone, "z", "Local", "the timezone to use for file timestamps")
	flag.Bool(flagHumanReadableFileSize, false, "display file sizes in human-readable format")
}

func initLogFlags(flag *pflag.FlagSet) {
	flag.String(flagLogPath, "-", "path to the log output.  Defaults to the operating system's stdout device.")
	flag.String(flagLogFormat, log.FormatText, "log format.  Either jsonl or text.")
	flag.String(flagLogPerm, "0600", "file permissions for log output file as unix file mode.")
}

func initListCommandFlags(flag *pflag.FlagSet) {
	initConfigFlags(flag)
	initFilterFlags(flag)
	initListFlags(flag)
	initLogFlags(flag)
}

func initSyncCommandFlags(flag *pflag.FlagSet) {
	initConfigFlags(flag)
	initFilterFlags(flag)
	initSyncFlags(flag)
	initLogFlags(flag)
}

func initViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	err := v.BindPFlags(cmd.Flags())
	if err != nil {
		return v, fmt.Errorf("error binding flag set to viper: %w", err)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv() // set environment variables to overwrite config
	if configPath := v.GetString(flagConfig); len(configPath) > 0 {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return v, newUsageError("error reading config file %q: %w", configPath, err)
		}
	}
	return v, nil
}

func checkLogConfig(v *viper.Viper) error {
	logPath := v.GetString(flagLogPath)
	if len(logPath) == 0 {
		return fmt.Errorf("log path is missing")
	}
	logPerm := v.GetString(flagLogPerm)
	if len(logPerm) == 0 {
		return fmt.Errorf("log perm is missing")
	}
	_, err := strconv.ParseUint(logPerm, 8, 32)
	if err != nil {
		return fmt.Errorf("invalid format for log perm: %s", logPerm)
	}
	switch logFormat := v.GetString(flagLogFormat); logFormat {
	case log.FormatText, log.FormatJSONL:
	default:
		return fmt.Errorf("unknown log format %q, expecting either %q or %q", logFormat, log.FormatText, log.FormatJSONL)
	}
	return nil
}

func checkListConfig(v *viper.Viper, args []string) error {
	if len(args) > 1 {
		return newUsageError("expecting at most 1 positional argument for directory, but found %d arguments", len(args))
	}
	if err := checkLogConfig(v); err != nil {
		return &usageError{err: fmt.Errorf("error with log configuration: %w", err)}
	}
	switch format := v.GetString(flagFormat); format {
	case "text", "jsonl":
	default:
		return newUsageError("unknown output format %q, expecting either \"text\" or \"jsonl\"", format)
	}
	return nil
}

func checkSyncConfig(v *viper.Viper, args []string) error {
	if len(args) != 2 {
		return newUsageError("expecting 2 positional arguments for source and destination, but found %d arguments", len(args))
	}
	if len(args[0]) == 0 {
		return newUsageError("source is missing")
	}
	if len(args[1]) == 0 {
		return newUsageError("destination is missing")
	}
	if err := checkLogConfig(v); err != nil {
		return &usageError{err: fmt.Errorf("error with log configuration: %w", err)}
	}
	return nil
}

// parseFilespecs returns nil if the flag was not given.
func parseFilespecs(v *viper.Viper, flag string) (filespec.Set, error) {
	if !v.IsSet(flag) {
		return nil, nil
	}
	set, err := filespec.ParseList(v.GetString(flag))
	if err != nil {
		return nil, newUsageError("error parsing filespecs for %q: %w", flag, err)
	}
	return set, nil
}

// initFilter returns the synchronization config built from the filter flags and, if present, the sync flags.
func initFilter(v *viper.Viper) (*fs.Config, error) {
	config := &fs.Config{
		Quiet:                 v.GetBool(flagQuiet),
		ExcludeHidden:         v.GetBool(flagExcludeHidden),
		DeleteFromDestination: v.GetBool(flagDelete),
	}
	sets := []struct {
		flag string
		set  *filespec.Set
	}{
		{flag: flagExcludeFiles, set: &config.ExcludeFiles},
		{flag: flagIncludeFiles, set: &config.IncludeFiles},
		{flag: flagExcludeDirectories, set: &config.ExcludeDirectories},
		{flag: flagIncludeDirectories, set: &config.IncludeDirectories},
		{flag: flagDeleteExcludeFiles, set: &config.DeleteExcludeFiles},
		{flag: flagDeleteExcludeDirectories, set: &config.DeleteExcludeDirectories},
	}
	for _, s := range sets {
		set, err := parseFilespecs(v, s.flag)
		if err != nil {
			return nil, err
		}
		*s.set = set
	}
	return config, nil
}

func initLogger(path string, perm string, format string) (*log.SimpleLogger, error) {

	if path == os.DevNull {
		return log.NewSimpleLoggerWithFormat(io.Discard, format), nil
	}

	if path == "-" {
		return log.NewSimpleLoggerWithFormat(os.Stdout, format), nil
	}

	fileMode := os.FileMode(0600)

	if len(perm) > 0 {
		fm, err := strconv.ParseUint(perm, 8, 32)
		if err != nil {
			return nil, fmt.Errorf("error parsing file permissions for log file from %q", perm)
		}
		fileMode = os.FileMode(fm)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, fileMode)
	if err != nil {
		return nil, fmt.Errorf("error opening log file %q: %w", path, err)
	}

	return log.NewFileLogger(f, format), nil
}

// writeReport writes the results as JSON if the path ends in ".json", and as YAML otherwise.
func writeReport(fileSystem afero.Fs, path string, results *fs.Results) error {
	var data []byte
	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(results, "", "  ")
		data = append(data, '\n')
	} else {
		data, err = yaml.Marshal(results)
	}
	if err != nil {
		return fmt.Errorf("error marshaling results: %w", err)
	}
	if err := afero.WriteFile(fileSystem, path, data, 0644); err != nil {
		return fmt.Errorf("error writing report to %q: %w", path, err)
	}
	return nil
}

// summary returns the line logged after a successful synchronization.
func summary(results *fs.Results) string {
	return fmt.Sprintf(
		"Sync completed. %d file(s) copied, %d file(s) up to date, %d file(s) deleted, %d directories deleted",
		results.FilesCopied,
		results.FilesUpToDate,
		results.FilesDeleted,
		results.DirectoriesDeleted,
	)
}

func formatHumanReadableFileSize(size int64) string {
	str := ""
	if size <= int64(math.Pow(2, 10)) {
		str = fmt.Sprintf("%dB", size)
	} else if size <= int64(math.Pow(2, 20)) {
		f := float64(size) / math.Pow(2, 10)
		if f > 10 {
			str = fmt.Sprintf("%.0fK", f)
		} else {
			str = fmt.Sprintf("%.1fK", f)
		}
	} else if size <= int64(math.Pow(2, 30)) {
		str = fmt.Sprintf("%.0fM", float64(size)/math.Pow(2, 20))
	} else {
		str = fmt.Sprintf("%.0fG", float64(size)/math.Pow(2, 30))
	}
	return fmt.Sprintf("%5s", str)
}

func main() {
	rootCommand := &cobra.Command{
		Use:                   `treesync [flags]`,
		DisableFlagsInUseLine: true,
		Short: strings.Join([]string{
			"treesync is a simple command line program for synchronizing a destination directory with a source directory.",
			"Files are copied when they are missing or differ in size, modification time, or attributes.",
			"Filespecs support * for any characters and ? for an optional character.",
		}, "\n"),
	}
	rootCommand.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	layoutsCommand := &cobra.Command{
		Use:                   `layouts`,
		DisableFlagsInUseLine: true,
		Short:                 "show supported timestamp layouts",
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range ts.Names() {
				fmt.Printf("%s: %s\n", name, ts.NamedLayouts[name])
			}
			return nil
		},
	}

	listCommand := &cobra.Command{
		Use:                   "list [DIRECTORY]",
		DisableFlagsInUseLine: true,
		Short:                 "list",
		Long:                  "list the files and subdirectories of a directory that the filters select",
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := initViper(cmd)
			if err != nil {
				return fmt.Errorf("error initializing viper: %w", err)
			}

			if errConfig := checkListConfig(v, args); errConfig != nil {
				return errConfig
			}

			config, err := initFilter(v)
			if err != nil {
				return err
			}
			if err := config.Validate(); err != nil {
				return err
			}

			directory := "."
			if len(args) == 1 {
				directory = args[0]
			}

			root, err := filepath.Abs(directory)
			if err != nil {
				return fmt.Errorf("error resolving absolute path for %q: %w", directory, err)
			}

			timeLayout := ts.ParseLayout(v.GetString(flagTimeLayout))
			timeZone, err := ts.ParseLocation(v.GetString(flagTimeZone))
			if err != nil {
				return &usageError{err: fmt.Errorf("error parsing time zone location %q: %w", v.GetString(flagTimeZone), err)}
			}

			return list(cmd.Context(), &listInput{
				FileSystem:            lfs.NewReadOnlyLocalFileSystem(root),
				Config:                config,
				Format:                v.GetString(flagFormat),
				TimeLayout:            timeLayout,
				TimeZone:              timeZone,
				HumanReadableFileSize: v.GetBool(flagHumanReadableFileSize),
				Writer:                cmd.OutOrStdout(),
			})
		},
	}
	initListCommandFlags(listCommand.Flags())

	syncCommand := &cobra.Command{
		Use:                   "sync SOURCE DESTINATION",
		DisableFlagsInUseLine: true,
		Short:                 "sync",
		Long:                  "synchronize the destination directory with the source directory",
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {

			ctx := cmd.Context()

			v, err := initViper(cmd)
			if err != nil {
				return fmt.Errorf("error initializing viper: %w", err)
			}

			if errConfig := checkSyncConfig(v, args); errConfig != nil {
				return errConfig
			}

			debug := v.GetBool(flagDebug)

			logger, err := initLogger(v.GetString(flagLogPath), v.GetString(flagLogPerm), v.GetString(flagLogFormat))
			if err != nil {
				return fmt.Errorf("error initializing logger: %w", err)
			}
			defer func() { _ = logger.Close() }()

			config, err := initFilter(v)
			if err != nil {
				return err
			}

			sourcePath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("error resolving absolute path for source %q: %w", args[0], err)
			}

			destinationPath, err := filepath.Abs(args[1])
			if err != nil {
				return fmt.Errorf("error resolving absolute path for destination %q: %w", args[1], err)
			}

			reportPath := v.GetString(flagReport)

			if debug {
				_ = logger.Log("Configuration", map[string]interface{}{
					"source":          sourcePath,
					"destination":     destinationPath,
					"quiet":           config.Quiet,
					"delete":          config.DeleteFromDestination,
					"exclude_hidden":  config.ExcludeHidden,
					"exclude_files":   config.ExcludeFiles.Patterns(),
					"include_files":   config.IncludeFiles.Patterns(),
					"exclude_dirs":    config.ExcludeDirectories.Patterns(),
					"include_dirs":    config.IncludeDirectories.Patterns(),
					"no_delete_files": config.DeleteExcludeFiles.Patterns(),
					"no_delete_dirs":  config.DeleteExcludeDirectories.Patterns(),
					"report":          reportPath,
				})
			}

			results, err := fs.Sync(ctx, &fs.SyncInput{
				Source:                "/",
				SourceFileSystem:      lfs.NewReadOnlyLocalFileSystem(sourcePath),
				Destination:           "/",
				DestinationFileSystem: lfs.NewLocalFileSystem(destinationPath),
				Config:                config,
				Logger:                logger,
			})

			if len(reportPath) > 0 {
				if errReport := writeReport(afero.NewOsFs(), reportPath, results); errReport != nil {
					_ = logger.Log("Error writing report", map[string]interface{}{
						"report": reportPath,
						"err":    errReport.Error(),
					})
					if err == nil {
						return &loggedError{err: fmt.Errorf("error writing report: %w", errReport)}
					}
				}
			}

			if err != nil {
				_ = logger.Log("Sync failed.", map[string]interface{}{
					"err": err.Error(),
				})
				if debug {
					_ = logger.Log("Results", map[string]interface{}{
						"results": results.String(),
					})
				}
				return &loggedError{err: err}
			}

			_ = logger.Log(summary(results))

			if debug {
				_ = logger.Log("Done synchronizing", map[string]interface{}{
					"source":      sourcePath,
					"destination": destinationPath,
					"results":     results.String(),
				})
			}

			return nil

		},
	}
	initSyncCommandFlags(syncCommand.Flags())

	versionCommand := &cobra.Command{
		Use:                   `version`,
		DisableFlagsInUseLine: true,
		Short:                 "show version",
		SilenceErrors:         true,
		SilenceUsage:          true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(TreeSyncVersion)
			return nil
		},
	}

	rootCommand.AddCommand(layoutsCommand, listCommand, syncCommand, versionCommand)

	if err := rootCommand.Execute(); err != nil {
		var le *loggedError
		if !errors.As(err, &le) {
			fmt.Fprintln(os.Stderr, "treesync: "+err.Error())
			fmt.Fprintln(os.Stderr, "Try \"treesync --help\" for more information.")
		}
		os.Exit(exitCode(err))
	}
}
