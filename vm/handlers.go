// Copyright (C) 2019-2021, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"net/http"

	"github.com/ava-labs/avalanchego/utils/json"
	"github.com/felixge/httpsnoop"
	"github.com/gorilla/rpc/v2"
	log "github.com/inconshreveable/log15"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	Name = "stakingvm"

	PublicEndpoint  = "/public"
	MetricsEndpoint = "/metrics"
)

// CreateHandlers returns the vm's HTTP handlers keyed by endpoint.
func (vm *VM) CreateHandlers() (map[string]http.Handler, error) {
	server := rpc.NewServer()
	server.RegisterCodec(json.NewCodec(), "application/json")
	server.RegisterCodec(json.NewCodec(), "application/json;charset=UTF-8")
	if err := server.RegisterService(&PublicService{vm: vm}, Name); err != nil {
		return nil, err
	}
	return map[string]http.Handler{
		PublicEndpoint:  server,
		MetricsEndpoint: promhttp.HandlerFor(vm.registry, promhttp.HandlerOpts{}),
	}, nil
}

// NewHTTPHandler mounts every handler of [vm] on one mux and logs each
// request.
func NewHTTPHandler(vm *VM) (http.Handler, error) {
	handlers, err := vm.CreateHandlers()
	if err != nil {
		return nil, err
	}
	mux := http.NewServeMux()
	for endpoint, h := range handlers {
		mux.Handle(endpoint, h)
	}
	return LoggingHandler(mux), nil
}

func LoggingHandler(h http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		m := httpsnoop.CaptureMetrics(h, rw, r)
		log.Debug("HTTP request",
			"method", r.Method,
			"path", r.RequestURI,
			"remote", r.RemoteAddr,
			"status", m.Code,
			"size", m.Written,
			"duration", m.Duration,
		)
	})
}
