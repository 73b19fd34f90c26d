// Package command implements the utfconv command line.
package command

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/oy3o/utfconv"
)

// Configuration keys. Each can be set by flag, by a UTFCONV_ environment
// variable (dashes become underscores) or in the --config file.
const (
	keyOrder    = "order"
	keyLogLevel = "log-level"
	keyJobs     = "jobs"
)

// BuildInfo is the version metadata stamped into the binary.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", b.Version, b.Commit, b.Date)
}

// UtfconvCommand holds the state shared by utfconv subcommands.
type UtfconvCommand struct {
	v          *viper.Viper
	fs         afero.Fs
	configFile string
	info       BuildInfo
}

// GetRootCommand creates the root command with all subcommands. Files are
// read and written through fs.
func GetRootCommand(fs afero.Fs, info BuildInfo) *cobra.Command {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	uc := &UtfconvCommand{v: viper.New(), fs: fs, info: info}
	uc.v.SetFs(fs)
	uc.v.SetEnvPrefix("UTFCONV")
	uc.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	uc.v.AutomaticEnv()

	root := &cobra.Command{
		Use:   "utfconv",
		Short: "Convert text between UTF-8 and UTF-16",
		Long: `utfconv converts whole files between UTF-8 and UTF-16.

Malformed input never stops a conversion: every invalid sequence becomes
U+FFFD. UTF-16 is read and written as raw code units in the configured
byte order; a byte order mark is ordinary data.

Modes name the input encoding:
  utf8     UTF-8 to UTF-16
  utf16    UTF-16 to UTF-8`,
		Version: info.String(),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Flag errors still print usage, application errors do not.
			cmd.SilenceUsage = true
			return uc.load(cmd)
		},
	}
	root.SetVersionTemplate("utfconv {{.Version}}\n")

	flags := root.PersistentFlags()
	flags.StringVar(&uc.configFile, "config", "", "config file (yaml, json or toml)")
	flags.String(keyOrder, "le", "byte order of UTF-16 data: le or be")
	flags.String(keyLogLevel, "warn", "log level: debug, info, warn or error")
	uc.bindFlags(flags, keyOrder, keyLogLevel)

	AddConvertCommand(root, uc)
	AddCheckCommand(root, uc)
	AddBatchCommand(root, uc)
	AddVersionCommand(root, uc)

	return root
}

func (uc *UtfconvCommand) bindFlags(fs *pflag.FlagSet, keys ...string) {
	for _, key := range keys {
		if err := uc.v.BindPFlag(key, fs.Lookup(key)); err != nil {
			panic(fmt.Sprintf("bind flag %q: %v", key, err))
		}
	}
}

// load reads the config file, if any, and installs the logger.
func (uc *UtfconvCommand) load(cmd *cobra.Command) error {
	if uc.configFile != "" {
		uc.v.SetConfigFile(uc.configFile)
		if err := uc.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", uc.configFile, err)
		}
	}
	l, err := newLogger(uc.v.GetString(keyLogLevel), cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("invalid %s: %w", keyLogLevel, err)
	}
	SetLogger(l)
	return nil
}

func (uc *UtfconvCommand) order() (binary.ByteOrder, error) {
	return utfconv.ParseByteOrder(uc.v.GetString(keyOrder))
}
