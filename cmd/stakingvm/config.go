// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/database/leveldb"
	"github.com/ava-labs/avalanchego/database/memdb"
	"github.com/ava-labs/avalanchego/utils/logging"
	log "github.com/inconshreveable/log15"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lcances/shapz-nft-game/chain"
	"github.com/lcances/shapz-nft-game/vm"
)

const (
	envPrefix = "STAKINGVM"

	configFileKey        = "config-file"
	httpAddrKey          = "http-addr"
	genesisFileKey       = "genesis-file"
	dbDirKey             = "db-dir"
	logLevelKey          = "log-level"
	compactIntervalKey   = "compact-interval"
	activityCacheSizeKey = "activity-cache-size"
)

func registerFlags(fs *pflag.FlagSet) {
	var defaults vm.Config
	defaults.SetDefaults()

	fs.String(configFileKey, "", "optional config file (json, yaml or toml)")
	fs.String(httpAddrKey, "127.0.0.1:9650", "address the HTTP endpoints listen on")
	fs.String(genesisFileKey, "", "genesis file (defaults to the built-in genesis)")
	fs.String(dbDirKey, "", "leveldb directory (state is kept in memory when empty)")
	fs.String(logLevelKey, "info", "log level (crit, error, warn, info, debug)")
	fs.Duration(compactIntervalKey, defaults.CompactInterval, "interval between database compactions")
	fs.Int(activityCacheSizeKey, defaults.ActivityCacheSize, "number of accepted transactions kept for recent activity")
}

// initConfig resolves every setting from, in order of precedence, the flags,
// STAKINGVM_* environment variables and the config file.
func initConfig(fs *pflag.FlagSet) error {
	v := viper.GetViper()
	if err := v.BindPFlags(fs); err != nil {
		return err
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if f := v.GetString(configFileKey); f != "" {
		v.SetConfigFile(f)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", f, err)
		}
	}

	lvl, err := log.LvlFromString(v.GetString(logLevelKey))
	if err != nil {
		return err
	}
	log.Root().SetHandler(log.LvlFilterHandler(lvl, log.StreamHandler(os.Stderr, log.LogfmtFormat())))
	return nil
}

func vmConfig() (vm.Config, error) {
	c := vm.Config{
		CompactInterval:   viper.GetDuration(compactIntervalKey),
		ActivityCacheSize: viper.GetInt(activityCacheSizeKey),
	}
	if c.CompactInterval <= 0 {
		return vm.Config{}, fmt.Errorf("%w: %s must be positive", vm.ErrInvalidConfig, compactIntervalKey)
	}
	if c.ActivityCacheSize < 0 {
		return vm.Config{}, fmt.Errorf("%w: %s must not be negative", vm.ErrInvalidConfig, activityCacheSizeKey)
	}
	return c, nil
}

// openDB opens the leveldb store under db-dir, or an in-memory one when no
// directory is configured.
func openDB() (database.Database, error) {
	dir := viper.GetString(dbDirKey)
	if dir == "" {
		log.Warn("no db-dir set, state will not survive a restart")
		return memdb.New(), nil
	}
	log.Info("opening database", "dir", dir)
	return leveldb.New(dir, nil, logging.NoLog{})
}

func loadGenesis() (*chain.Genesis, error) {
	f := viper.GetString(genesisFileKey)
	if f == "" {
		log.Info("using default genesis")
		return chain.DefaultGenesis(), nil
	}
	b, err := os.ReadFile(f)
	if err != nil {
		return nil, err
	}
	g := new(chain.Genesis)
	if err := json.Unmarshal(b, g); err != nil {
		return nil, fmt.Errorf("failed to parse genesis %s: %w", f, err)
	}
	return g, nil
}
