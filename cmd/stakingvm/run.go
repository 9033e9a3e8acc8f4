// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/inconshreveable/log15"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lcances/shapz-nft-game/vm"
)

const shutdownTimeout = 10 * time.Second

func runFunc(cmd *cobra.Command, args []string) error {
	g, err := loadGenesis()
	if err != nil {
		return err
	}
	config, err := vmConfig()
	if err != nil {
		return err
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	v, err := vm.New(db, g, config)
	if err != nil {
		return err
	}
	defer v.Shutdown()

	h, err := vm.NewHTTPHandler(v)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Addr:    viper.GetString(httpAddrKey),
		Handler: h,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.Info("serving stakingvm", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down stakingvm")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(sctx)
}
