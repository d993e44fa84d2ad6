package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alecthomas/kingpin/v2"
	"k8s.io/client-go/util/homedir"

	"github.com/taskdeck/taskdeck/internal/kv"
	kvfile "github.com/taskdeck/taskdeck/internal/kv/file"
	kvmemory "github.com/taskdeck/taskdeck/internal/kv/memory"
	kvsqlite "github.com/taskdeck/taskdeck/internal/kv/sqlite"
	"github.com/taskdeck/taskdeck/internal/log"
	"github.com/taskdeck/taskdeck/internal/model"
	"github.com/taskdeck/taskdeck/internal/printer"
	storageio "github.com/taskdeck/taskdeck/internal/storage/io"
	"github.com/taskdeck/taskdeck/internal/storage/kvjson"
)

const (
	// LoggerTypeDefault is the logger default type.
	LoggerTypeDefault = "default"
	// LoggerTypeJSON is the logger json type.
	LoggerTypeJSON = "json"
)

const (
	// OutputTable is the table output format.
	OutputTable = "table"
	// OutputJSON is the JSON output format.
	OutputJSON = "json"
)

// Command represents an application command, all commands that want to be executed
// should implement and setup on main.
type Command interface {
	Name() string
	Run(ctx context.Context) error
}

// RootCommand represents the root command configuration and global configuration
// for all the commands.
type RootCommand struct {
	// Global flags.
	Debug        bool
	NoLog        bool
	NoColor      bool
	LoggerType   string
	ConfigPath   string
	StoreBackend string
	StorePath    string

	// Global instances.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger log.Logger
}

// NewRootCommand initializes the main root configuration.
func NewRootCommand(app *kingpin.Application) *RootCommand {
	c := &RootCommand{}

	app.Flag("debug", "Enable debug mode.").BoolVar(&c.Debug)
	app.Flag("no-log", "Disable logger.").BoolVar(&c.NoLog)
	app.Flag("no-color", "Disable logger color.").BoolVar(&c.NoColor)
	// No kingpin default so an unset flag can fall back to the config file.
	app.Flag("logger", "Selects the logger type.").EnumVar(&c.LoggerType, LoggerTypeDefault, LoggerTypeJSON)
	app.Flag("config", "Path to an optional YAML configuration file.").Envar("TASKDECK_CONFIG").StringVar(&c.ConfigPath)
	app.Flag("store", "Key-value store backend.").Envar("TASKDECK_STORE").EnumVar(&c.StoreBackend,
		string(model.StoreBackendMemory), string(model.StoreBackendFile), string(model.StoreBackendSQLite))
	app.Flag("store-path", "Path of the store (directory for file backend, database file for sqlite).").Envar("TASKDECK_STORE_PATH").StringVar(&c.StorePath)

	return c
}

// AppConfig resolves the effective application configuration: defaults,
// overridden by the optional config file, overridden by explicit flags.
func (c *RootCommand) AppConfig(ctx context.Context) (model.AppConfig, error) {
	cfg := model.AppConfig{}

	if c.ConfigPath != "" {
		loader := storageio.NewConfigYAMLRepository(os.DirFS(filepath.Dir(c.ConfigPath)))
		fileCfg, err := loader.GetConfig(ctx, filepath.Base(c.ConfigPath))
		if err != nil {
			return model.AppConfig{}, fmt.Errorf("could not load config file: %w", err)
		}
		cfg = fileCfg
	}

	// Flags win over the file.
	if c.StoreBackend != "" {
		cfg.Store.Backend = model.StoreBackend(c.StoreBackend)
	}
	if c.StorePath != "" {
		cfg.Store.Path = c.StorePath
	}

	// Fill remaining defaults.
	if cfg.Store.Backend == "" {
		cfg.Store.Backend = model.StoreBackendFile
	}
	if cfg.Store.Path == "" {
		switch cfg.Store.Backend {
		case model.StoreBackendFile:
			cfg.Store.Path = filepath.Join(homedir.HomeDir(), ".taskdeck", "store")
		case model.StoreBackendSQLite:
			cfg.Store.Path = filepath.Join(homedir.HomeDir(), ".taskdeck", "taskdeck.db")
		}
	}

	if err := cfg.Validate(); err != nil {
		return model.AppConfig{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// ApplyLoggerConfig layers the config file's logger section under the command
// line flags: an explicit flag wins, then the file value, then the default.
// Debug from either source enables debug logging.
func (c *RootCommand) ApplyLoggerConfig(cfg model.AppConfig) {
	if c.LoggerType == "" {
		c.LoggerType = cfg.Logger.Type
	}
	if c.LoggerType == "" {
		c.LoggerType = LoggerTypeDefault
	}
	if cfg.Logger.Debug {
		c.Debug = true
	}
}

// NewStore creates the configured key-value store. The returned close
// function must be called when the store is no longer needed.
func (c *RootCommand) NewStore(ctx context.Context) (kv.Store, func() error, error) {
	cfg, err := c.AppConfig(ctx)
	if err != nil {
		return nil, nil, err
	}

	noClose := func() error { return nil }

	switch cfg.Store.Backend {
	case model.StoreBackendMemory:
		store, err := kvmemory.NewStore(kvmemory.StoreConfig{Logger: c.Logger})
		if err != nil {
			return nil, nil, fmt.Errorf("could not create memory store: %w", err)
		}
		return store, noClose, nil

	case model.StoreBackendFile:
		store, err := kvfile.NewStore(kvfile.StoreConfig{RootDir: cfg.Store.Path, Logger: c.Logger})
		if err != nil {
			return nil, nil, fmt.Errorf("could not create file store: %w", err)
		}
		return store, noClose, nil

	case model.StoreBackendSQLite:
		store, err := kvsqlite.NewStore(ctx, kvsqlite.StoreConfig{DBPath: cfg.Store.Path, Logger: c.Logger})
		if err != nil {
			return nil, nil, fmt.Errorf("could not create sqlite store: %w", err)
		}
		return store, store.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}

// NewRepository creates the JSON-over-KV repository on the configured store.
func (c *RootCommand) NewRepository(ctx context.Context) (*kvjson.Repository, func() error, error) {
	store, closeStore, err := c.NewStore(ctx)
	if err != nil {
		return nil, nil, err
	}

	repo, err := kvjson.NewRepository(kvjson.RepositoryConfig{
		Store:  store,
		Logger: c.Logger,
	})
	if err != nil {
		closeStore()
		return nil, nil, fmt.Errorf("could not create repository: %w", err)
	}

	return repo, closeStore, nil
}

// NewPrinter creates a printer for the given output format.
func (c *RootCommand) NewPrinter(output string) (printer.Printer, error) {
	switch output {
	case OutputTable:
		return printer.NewTablePrinter(c.Stdout), nil
	case OutputJSON:
		return printer.NewJSONPrinter(c.Stdout), nil
	}
	return nil, fmt.Errorf("unknown output format %q", output)
}
