package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/GPTx-global/gravity/relayer/log"
)

const (
	// DirName holds config.toml under the node home.
	DirName  = "config"
	FileName = "config.toml"

	DefaultChainID       = "gravity-1"
	DefaultDBBackend     = "goleveldb"
	DefaultListenAddress = "127.0.0.1:1317"
)

var (
	globalConfig = defaultConfig("")
	home         string
	mu           sync.RWMutex
)

type configData struct {
	Chain chainConfig `toml:"chain"`
	Key   keyConfig   `toml:"key"`
	API   apiConfig   `toml:"api"`
	Log   logConfig   `toml:"log"`
}

type chainConfig struct {
	ID        string `toml:"id"`
	DBBackend string `toml:"db_backend"`
}

type keyConfig struct {
	MnemonicFile string `toml:"mnemonic_file"`
	Index        uint32 `toml:"index"`
}

type apiConfig struct {
	ListenAddress  string   `toml:"listen_address"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

type logConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

func defaultConfig(homeDir string) configData {
	return configData{
		Chain: chainConfig{
			ID:        DefaultChainID,
			DBBackend: DefaultDBBackend,
		},
		Key: keyConfig{
			MnemonicFile: filepath.Join(homeDir, DirName, "mnemonic.txt"),
			Index:        0,
		},
		API: apiConfig{
			ListenAddress:  DefaultListenAddress,
			AllowedOrigins: []string{"*"},
		},
		Log: logConfig{
			Level:  "info",
			Format: log.FormatPlain,
		},
	}
}

// Path returns the config file location for homeDir.
func Path(homeDir string) string {
	return filepath.Join(homeDir, DirName, FileName)
}

// Load reads <homeDir>/config/config.toml, writing the defaults first when
// the file does not exist.
func Load(homeDir string) error {
	path := Path(homeDir)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Write(homeDir, defaultConfig(homeDir)); err != nil {
			return fmt.Errorf("failed to create default config: %w", err)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := defaultConfig(homeDir)
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse TOML: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	mu.Lock()
	globalConfig = cfg
	home = homeDir
	mu.Unlock()

	log.Debugf("Loaded config from %s", path)
	return nil
}

// Write stores cfg as the config file of homeDir.
func Write(homeDir string, cfg configData) error {
	path := Path(homeDir)
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal TOML: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// WriteDefault writes the default config of homeDir with the given chain id.
func WriteDefault(homeDir, chainID string) error {
	cfg := defaultConfig(homeDir)
	cfg.Chain.ID = chainID
	if err := validateConfig(cfg); err != nil {
		return err
	}
	return Write(homeDir, cfg)
}

// SetChainID updates the chain id of the loaded config and writes it back.
func SetChainID(chainID string) error {
	mu.Lock()
	defer mu.Unlock()

	cfg := globalConfig
	cfg.Chain.ID = chainID
	if err := validateConfig(cfg); err != nil {
		return err
	}
	if err := Write(home, cfg); err != nil {
		return err
	}
	globalConfig = cfg
	return nil
}

func validateConfig(cfg configData) error {
	if cfg.Chain.ID == "" {
		return fmt.Errorf("chain ID is required")
	}

	switch cfg.Chain.DBBackend {
	case "goleveldb", "memdb":
	default:
		return fmt.Errorf("unsupported db backend %q", cfg.Chain.DBBackend)
	}

	if cfg.API.ListenAddress == "" {
		return fmt.Errorf("api listen address is required")
	}

	switch cfg.Log.Format {
	case log.FormatPlain, log.FormatJSON:
	default:
		return fmt.Errorf("unknown log format %q", cfg.Log.Format)
	}

	return nil
}

func Print() {
	log.Infof("%-15s: %s", "Home", Home())
	log.Infof("%-15s: %s", "Chain ID", ChainID())
	log.Infof("%-15s: %s", "DB Backend", DBBackend())
	log.Infof("%-15s: %s", "Mnemonic File", MnemonicFile())
	log.Infof("%-15s: %d", "Key Index", KeyIndex())
	log.Infof("%-15s: %s", "API Address", ListenAddress())
}

func Home() string {
	mu.RLock()
	defer mu.RUnlock()
	return home
}

func ChainID() string {
	mu.RLock()
	defer mu.RUnlock()
	return globalConfig.Chain.ID
}

func DBBackend() string {
	mu.RLock()
	defer mu.RUnlock()
	return globalConfig.Chain.DBBackend
}

func MnemonicFile() string {
	mu.RLock()
	defer mu.RUnlock()
	return globalConfig.Key.MnemonicFile
}

func KeyIndex() uint32 {
	mu.RLock()
	defer mu.RUnlock()
	return globalConfig.Key.Index
}

func ListenAddress() string {
	mu.RLock()
	defer mu.RUnlock()
	return globalConfig.API.ListenAddress
}

func AllowedOrigins() []string {
	mu.RLock()
	defer mu.RUnlock()
	return append([]string(nil), globalConfig.API.AllowedOrigins...)
}

func LogLevel() string {
	mu.RLock()
	defer mu.RUnlock()
	return globalConfig.Log.Level
}

func LogFormat() string {
	mu.RLock()
	defer mu.RUnlock()
	return globalConfig.Log.Format
}

func SetForTesting(homeDir, chainID, dbBackend, mnemonicFile string, keyIndex uint32, listenAddress string) {
	mu.Lock()
	defer mu.Unlock()

	home = homeDir
	globalConfig = defaultConfig(homeDir)
	globalConfig.Chain.ID = chainID
	globalConfig.Chain.DBBackend = dbBackend
	globalConfig.Key.MnemonicFile = mnemonicFile
	globalConfig.Key.Index = keyIndex
	globalConfig.API.ListenAddress = listenAddress
}
