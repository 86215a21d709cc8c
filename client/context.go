package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"
	tmtypes "github.com/tendermint/tendermint/types"
	tmdb "github.com/tendermint/tm-db"
	"sigs.k8s.io/yaml"

	"github.com/GPTx-global/gravity/app"
	"github.com/GPTx-global/gravity/relayer/config"
	"github.com/GPTx-global/gravity/relayer/log"
	"github.com/GPTx-global/gravity/types"
)

// GenesisFileName is the genesis document under <home>/config.
const GenesisFileName = "genesis.json"

// Context carries what a command needs to reach the local node state.
type Context struct {
	Home         string
	OutputFormat string
	Output       io.Writer
	Input        io.Reader
}

// GetContext reads the context from the command flags. Flags left unset
// fall back to viper, so GRAVITYD_* environment variables apply.
func GetContext(cmd *cobra.Command) Context {
	ctx := Context{
		Home:         stringFlag(cmd, FlagHome),
		OutputFormat: stringFlag(cmd, FlagOutput),
		Output:       cmd.OutOrStdout(),
		Input:        cmd.InOrStdin(),
	}
	if ctx.OutputFormat == "" {
		ctx.OutputFormat = OutputFormatText
	}
	return ctx
}

// GenesisFile is the path of the genesis document.
func (ctx Context) GenesisFile() string {
	return filepath.Join(ctx.Home, config.DirName, GenesisFileName)
}

// DataDir holds the application database.
func (ctx Context) DataDir() string {
	return filepath.Join(ctx.Home, app.DataDirName)
}

// GetFromAddress parses the --from flag.
func GetFromAddress(cmd *cobra.Command) (sdk.AccAddress, error) {
	from := stringFlag(cmd, FlagFrom)
	if from == "" {
		return nil, fmt.Errorf("--%s is required", FlagFrom)
	}
	addr, err := types.ParseAccount(from)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s address: %w", FlagFrom, err)
	}
	return addr, nil
}

func openDB(ctx Context) (tmdb.DB, error) {
	switch config.DBBackend() {
	case "memdb":
		return tmdb.NewMemDB(), nil
	default:
		if err := os.MkdirAll(ctx.DataDir(), 0o755); err != nil {
			return nil, err
		}
		return tmdb.NewGoLevelDB("application", ctx.DataDir())
	}
}

// OpenApp opens the node state under the home directory. The genesis
// document is applied the first time the state is opened.
func (ctx Context) OpenApp() (*app.GravityApp, error) {
	db, err := openDB(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	gravityApp, err := app.NewGravityApp(log.Logger(), db, config.ChainID())
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if gravityApp.Initialized() {
		return gravityApp, nil
	}

	genesis, err := ctx.ReadGenesis()
	if err != nil {
		_ = gravityApp.Close()
		return nil, err
	}
	if err := gravityApp.InitChain(genesis); err != nil {
		_ = gravityApp.Close()
		return nil, fmt.Errorf("failed to apply genesis: %w", err)
	}
	log.Info("applied genesis", "chain_id", config.ChainID(), "file", ctx.GenesisFile())
	return gravityApp, nil
}

// WithApp opens the app, runs fn and closes the app again.
func (ctx Context) WithApp(fn func(*app.GravityApp) error) (err error) {
	gravityApp, err := ctx.OpenApp()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := gravityApp.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return fn(gravityApp)
}

// ReadGenesis loads the app state of the genesis document.
func (ctx Context) ReadGenesis() (app.GenesisState, error) {
	doc, err := tmtypes.GenesisDocFromFile(ctx.GenesisFile())
	if err != nil {
		return nil, fmt.Errorf("failed to read genesis: %w", err)
	}
	if doc.ChainID != config.ChainID() {
		return nil, fmt.Errorf("genesis chain id %q does not match configured chain id %q", doc.ChainID, config.ChainID())
	}

	var genesis app.GenesisState
	if err := json.Unmarshal(doc.AppState, &genesis); err != nil {
		return nil, fmt.Errorf("failed to parse app state: %w", err)
	}
	return genesis, nil
}

// NewGenesisDoc wraps an app state into a genesis document.
func NewGenesisDoc(chainID string, genesis app.GenesisState) (*tmtypes.GenesisDoc, error) {
	appState, err := json.MarshalIndent(genesis, "", " ")
	if err != nil {
		return nil, err
	}
	doc := &tmtypes.GenesisDoc{
		ChainID:  chainID,
		AppState: appState,
	}
	if err := doc.ValidateAndComplete(); err != nil {
		return nil, err
	}
	return doc, nil
}

// WriteGenesis stores the genesis document, refusing to replace an existing
// one unless overwrite is set.
func (ctx Context) WriteGenesis(doc *tmtypes.GenesisDoc, overwrite bool) error {
	path := ctx.GenesisFile()
	if _, err := os.Stat(path); err == nil && !overwrite {
		return fmt.Errorf("genesis file already exists: %s", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return doc.SaveAs(path)
}

// PrintObject writes v as YAML (text) or JSON depending on --output.
func (ctx Context) PrintObject(v interface{}) error {
	bz, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return ctx.PrintRaw(bz)
}

// PrintRaw writes a JSON document in the configured output format.
func (ctx Context) PrintRaw(bz json.RawMessage) error {
	var err error
	switch ctx.OutputFormat {
	case OutputFormatJSON:
	case OutputFormatText:
		if bz, err = yaml.JSONToYAML(bz); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown output format %q", ctx.OutputFormat)
	}

	if len(bz) == 0 || bz[len(bz)-1] != '\n' {
		bz = append(bz, '\n')
	}
	_, err = ctx.Output.Write(bz)
	return err
}

// PrintString writes s followed by a newline.
func (ctx Context) PrintString(s string) error {
	_, err := fmt.Fprintln(ctx.Output, s)
	return err
}
