// Package options resolves the converter's settings from built-in defaults,
// an optional YAML config file, the XML2KML_OPTS environment variable and
// the command line, in that order.
package options

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"xml2kml/pkg/kmlgen"
)

const (
	DefaultName   = "Search Result"
	DefaultOutput = "output.kml"
	EnvOpts       = "XML2KML_OPTS"
	EnvConfig     = "XML2KML_CONFIG"
)

// ErrUsage marks command lines that could not be used; the usage text has
// already been shown.
var ErrUsage = errors.New("usage")

type Config struct {
	Name     string `mapstructure:"name"`
	Unique   bool   `mapstructure:"unique"`
	Verbose  bool   `mapstructure:"verbose"`
	Dms      bool   `mapstructure:"dms"`
	Styled   bool   `mapstructure:"styled"`
	Kmz      bool   `mapstructure:"kmz"`
	Gradient string `mapstructure:"gradient"`

	IDFile  string `mapstructure:"-"`
	SQLFile string `mapstructure:"-"`
	Infile  string `mapstructure:"-"`
	Outfile string `mapstructure:"-"`
	Version bool   `mapstructure:"-"`
}

func defaults() Config {
	return Config{Name: DefaultName, Outfile: DefaultOutput}
}

type environ struct {
	getenv func(string) string
	home   string
	out    io.Writer
}

// ParseCLI reads the settings for this process. gv supplies the version line
// appended to the usage text.
func ParseCLI(gv func() string) (*Config, error) {
	home, _ := os.UserHomeDir()
	return parse(os.Args[1:], gv, environ{getenv: os.Getenv, home: home, out: os.Stderr})
}

func parse(args []string, gv func() string, env environ) (*Config, error) {
	cfg := defaults()

	cfgfile := configArg(args)
	if cfgfile == "" {
		cfgfile = env.getenv(EnvConfig)
	}
	if err := readConfig(&cfg, cfgfile, env.home); err != nil {
		return nil, err
	}
	if err := envFlags(&cfg, env.getenv(EnvOpts)); err != nil {
		return nil, err
	}

	fs := newFlagSet(&cfg, env.out, gv)
	var outArg string
	fs.StringVar(&outArg, "o", "", "Output file (default "+DefaultOutput+")")

	var files []string
	for {
		if err := fs.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %v", ErrUsage, err)
		}
		rest := fs.Args()
		if len(rest) == 0 {
			break
		}
		if n := len(args) - len(rest); n > 0 && args[n-1] == "--" {
			files = append(files, rest...)
			break
		}
		files = append(files, rest[0])
		args = rest[1:]
	}

	if cfg.Version {
		return &cfg, nil
	}
	if len(files) == 0 {
		fs.Usage()
		return nil, fmt.Errorf("%w: no input file", ErrUsage)
	}
	cfg.Infile = files[0]
	switch {
	case outArg != "":
		cfg.Outfile = outArg
	case len(files) > 1:
		cfg.Outfile = files[1]
	case cfg.Kmz:
		cfg.Outfile = kmlgen.GenKmlName(DefaultOutput, true)
	}
	return &cfg, nil
}

func newFlagSet(cfg *Config, out io.Writer, gv func() string) *flag.FlagSet {
	app := "xml2kml"
	fs := flag.NewFlagSet(app, flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintf(out, "Usage of %s [options] INPUT.xml [[-o] OUTPUT.kml]\n", app)
		fmt.Fprintln(out, "Convert a nominatim xml search result, e.g.")
		fmt.Fprintln(out, "  https://nominatim.openstreetmap.org/search?q=Spielplatz+Cologne&format=xml&limit=100")
		fmt.Fprintln(out, "into a KML list of places.")
		fmt.Fprintln(out)
		fs.PrintDefaults()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "If -o is omitted, the output file name may follow the input file name.")
		fmt.Fprintf(out, "Default options may be set in $%s, or in xml2kml.yaml\n", EnvOpts)
		fmt.Fprintln(out, "(current directory or ~/.config/xml2kml).")
		fmt.Fprintln(out)
		fmt.Fprintln(out, gv())
	}
	fs.StringVar(&cfg.Name, "n", cfg.Name, "Name of the KML folder and of each placemark")
	fs.BoolVar(&cfg.Unique, "u", cfg.Unique, "Append a running number to each placemark name")
	fs.StringVar(&cfg.IDFile, "id", "", "Write the collected place_id values, comma separated, to `file`")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Verbose progress output")
	fs.BoolVar(&cfg.Styled, "styled", cfg.Styled, "Generate styled KML (coloured icons, extended data)")
	fs.BoolVar(&cfg.Kmz, "kmz", cfg.Kmz, "Generate KMZ (implies -styled)")
	fs.BoolVar(&cfg.Dms, "dms", cfg.Dms, "Show positions as DD:MM:SS.s (vice decimal degrees) in styled output")
	fs.StringVar(&cfg.Gradient, "gradient", cfg.Gradient, "Styled output colour gradient [red,rdgn,yor]")
	fs.StringVar(&cfg.SQLFile, "sql", "", "Also export places to SQLite `file`")
	fs.String("config", "", "Config `file` (default ./xml2kml.yaml or ~/.config/xml2kml/xml2kml.yaml)")
	fs.BoolVar(&cfg.Version, "version", false, "Show version and exit")
	return fs
}

// configArg finds -config / --config ahead of the full parse, since the file
// supplies the flag defaults.
func configArg(args []string) string {
	for i, a := range args {
		if a == "--" {
			break
		}
		name := strings.TrimLeft(a, "-")
		if len(a)-len(name) < 1 || len(a)-len(name) > 2 {
			continue
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1]
		}
		if v, ok := strings.CutPrefix(name, "config="); ok {
			return v
		}
	}
	return ""
}

func readConfig(cfg *Config, cfgfile, home string) error {
	v := viper.New()
	if cfgfile != "" {
		v.SetConfigFile(cfgfile)
	} else {
		v.SetConfigName("xml2kml")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home != "" {
			v.AddConfigPath(filepath.Join(home, ".config", "xml2kml"))
		}
	}
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if cfgfile == "" && errors.As(err, &nf) {
			return nil
		}
		return fmt.Errorf("config: %w", err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("config %s: %w", v.ConfigFileUsed(), err)
	}
	return nil
}

// envFlags applies default flags from $XML2KML_OPTS, e.g. "-u -styled -gradient yor".
func envFlags(cfg *Config, defs string) error {
	parts := strings.Fields(defs)
	if len(parts) == 0 {
		return nil
	}
	envflags := flag.NewFlagSet("$"+EnvOpts, flag.ContinueOnError)
	envflags.SetOutput(io.Discard)
	envflags.StringVar(&cfg.Name, "n", cfg.Name, "name")
	envflags.BoolVar(&cfg.Unique, "u", cfg.Unique, "unique")
	envflags.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "verbose")
	envflags.BoolVar(&cfg.Styled, "styled", cfg.Styled, "styled")
	envflags.BoolVar(&cfg.Kmz, "kmz", cfg.Kmz, "kmz")
	envflags.BoolVar(&cfg.Dms, "dms", cfg.Dms, "dms")
	envflags.StringVar(&cfg.Gradient, "gradient", cfg.Gradient, "gradient")
	if err := envflags.Parse(parts); err != nil {
		return fmt.Errorf("$%s: %w", EnvOpts, err)
	}
	return nil
}
