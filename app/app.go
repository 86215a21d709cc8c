package app

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cosmos/cosmos-sdk/store"
	storetypes "github.com/cosmos/cosmos-sdk/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/tendermint/tendermint/libs/log"
	tmproto "github.com/tendermint/tendermint/proto/tendermint/types"
	tmdb "github.com/tendermint/tm-db"

	"github.com/GPTx-global/gravity/x/gravity"
	gravitykeeper "github.com/GPTx-global/gravity/x/gravity/keeper"
	gravitytypes "github.com/GPTx-global/gravity/x/gravity/types"
	"github.com/GPTx-global/gravity/x/ibport"
	ibportkeeper "github.com/GPTx-global/gravity/x/ibport/keeper"
	ibporttypes "github.com/GPTx-global/gravity/x/ibport/types"
	"github.com/GPTx-global/gravity/x/nebula"
	nebulakeeper "github.com/GPTx-global/gravity/x/nebula/keeper"
	nebulatypes "github.com/GPTx-global/gravity/x/nebula/types"
	"github.com/GPTx-global/gravity/x/token"
	tokenkeeper "github.com/GPTx-global/gravity/x/token/keeper"
	tokentypes "github.com/GPTx-global/gravity/x/token/types"
)

const (
	// Name defines the application name
	Name = "gravity"

	// DataDirName is the directory under the node home holding the state db.
	DataDirName = "data"
)

// DefaultNodeHome default home directories for the application daemon
var DefaultNodeHome string

func init() {
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}

	DefaultNodeHome = filepath.Join(userHomeDir, "."+Name+"d")
}

// GravityApp wires the bridge modules onto one commit multistore. Every
// state changing call runs in a cached context that is written and committed
// as a new version on success.
type GravityApp struct {
	mu sync.RWMutex

	logger  log.Logger
	db      tmdb.DB
	cms     storetypes.CommitMultiStore
	chainID string

	keys map[string]*storetypes.KVStoreKey

	TokenKeeper   tokenkeeper.Keeper
	GravityKeeper gravitykeeper.Keeper
	NebulaKeeper  nebulakeeper.Keeper
	IBPortKeeper  ibportkeeper.Keeper
}

// NewGravityApp returns a reference to an initialized GravityApp loaded at
// the latest committed version of db.
func NewGravityApp(logger log.Logger, db tmdb.DB, chainID string) (*GravityApp, error) {
	keys := sdk.NewKVStoreKeys(
		tokentypes.StoreKey,
		gravitytypes.StoreKey,
		nebulatypes.StoreKey,
		ibporttypes.StoreKey,
	)

	cms := store.NewCommitMultiStore(db)
	for _, key := range keys {
		cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, nil)
	}
	if err := cms.LoadLatestVersion(); err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	app := &GravityApp{
		logger:  logger,
		db:      db,
		cms:     cms,
		chainID: chainID,
		keys:    keys,
	}

	app.TokenKeeper = tokenkeeper.NewKeeper(keys[tokentypes.StoreKey])
	app.GravityKeeper = gravitykeeper.NewKeeper(keys[gravitytypes.StoreKey])
	app.NebulaKeeper = nebulakeeper.NewKeeper(keys[nebulatypes.StoreKey], app.GravityKeeper)
	app.IBPortKeeper = ibportkeeper.NewKeeper(keys[ibporttypes.StoreKey], app.TokenKeeper)

	return app, nil
}

// Logger returns the application logger
func (app *GravityApp) Logger() log.Logger {
	return app.logger.With("module", Name)
}

// LastHeight is the version of the last commit.
func (app *GravityApp) LastHeight() int64 {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.cms.LastCommitID().Version
}

// Initialized reports whether genesis was already applied.
func (app *GravityApp) Initialized() bool {
	return app.LastHeight() > 0
}

// Close releases the state db.
func (app *GravityApp) Close() error {
	return app.db.Close()
}

// InitChain applies genesis and commits it as height 1.
func (app *GravityApp) InitChain(genesis GenesisState) error {
	if app.Initialized() {
		return fmt.Errorf("chain already initialized at height %d", app.LastHeight())
	}
	if err := genesis.Validate(); err != nil {
		return err
	}

	tokenGenesis := *tokentypes.DefaultGenesisState()
	gravityGenesis := *gravitytypes.DefaultGenesisState()
	nebulaGenesis := *nebulatypes.DefaultGenesisState()
	ibportGenesis := *ibporttypes.DefaultGenesisState()
	for module, target := range map[string]interface{}{
		tokentypes.ModuleName:   &tokenGenesis,
		gravitytypes.ModuleName: &gravityGenesis,
		nebulatypes.ModuleName:  &nebulaGenesis,
		ibporttypes.ModuleName:  &ibportGenesis,
	} {
		if err := genesis.Get(module, target); err != nil {
			return err
		}
	}

	return app.deliver(func(ctx sdk.Context) error {
		token.InitGenesis(ctx, app.TokenKeeper, tokenGenesis)
		gravity.InitGenesis(ctx, app.GravityKeeper, gravityGenesis)
		nebula.InitGenesis(ctx, app.NebulaKeeper, nebulaGenesis)
		ibport.InitGenesis(ctx, app.IBPortKeeper, ibportGenesis)
		return nil
	})
}

// ExportGenesis returns the current state of every module.
func (app *GravityApp) ExportGenesis() (GenesisState, error) {
	genesis := GenesisState{}
	var err error
	app.query(func(ctx sdk.Context) {
		for module, state := range map[string]interface{}{
			tokentypes.ModuleName:   token.ExportGenesis(ctx, app.TokenKeeper),
			gravitytypes.ModuleName: gravity.ExportGenesis(ctx, app.GravityKeeper),
			nebulatypes.ModuleName:  nebula.ExportGenesis(ctx, app.NebulaKeeper),
			ibporttypes.ModuleName:  ibport.ExportGenesis(ctx, app.IBPortKeeper),
		} {
			if err = genesis.Set(module, state); err != nil {
				return
			}
		}
	})
	return genesis, err
}

func (app *GravityApp) newContext(ms storetypes.MultiStore) sdk.Context {
	header := tmproto.Header{
		ChainID: app.chainID,
		Height:  app.cms.LastCommitID().Version + 1,
		Time:    time.Now().UTC(),
	}
	return sdk.NewContext(ms, header, false, app.logger)
}

// deliver runs fn on a cached context. Its writes are committed when fn
// succeeds and dropped otherwise.
func (app *GravityApp) deliver(fn func(ctx sdk.Context) error) error {
	return app.deliverWith(func(ctx sdk.Context) (bool, error) {
		err := fn(ctx)
		return err == nil, err
	})
}

// deliverWith lets fn decide whether its writes are kept independently of
// the error it returns.
func (app *GravityApp) deliverWith(fn func(ctx sdk.Context) (commit bool, err error)) (err error) {
	app.mu.Lock()
	defer app.mu.Unlock()

	ctx := app.newContext(app.cms)
	cacheCtx, write := ctx.CacheContext()

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while delivering at height %d: %v", ctx.BlockHeight(), r)
		}
	}()

	commit, err := fn(cacheCtx)
	if !commit {
		return err
	}
	write()
	id := app.cms.Commit()
	app.logger.Debug("committed state", "height", id.Version, "hash", fmt.Sprintf("%X", id.Hash))
	return err
}

// query runs fn on a read only view of the last committed state.
func (app *GravityApp) query(fn func(ctx sdk.Context)) {
	app.mu.RLock()
	defer app.mu.RUnlock()

	fn(app.newContext(app.cms.CacheMultiStore()))
}
