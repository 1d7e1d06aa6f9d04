// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"plugin"

	"go.uber.org/zap"

	"github.com/slukits/nativeunit"
)

// RegisterSymbol is the optional function a plugin exports to register
// its fixtures.
const RegisterSymbol = "Register"

// ErrPlugin is returned if a plugin's exported Register symbol has the
// wrong type.
var ErrPlugin = errors.New("nativeunit: plugin")

// openPlugin opens a plugin and returns its exported Register
// function, nil if there is none.
type openPlugin func(path string) (func(*nativeunit.Registry), error)

func openGoPlugin(path string) (func(*nativeunit.Registry), error) {
	p, err := plugin.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrPlugin, path, err)
	}
	sym, err := p.Lookup(RegisterSymbol)
	if err != nil {
		// the plugin registered at initialization time
		return nil, nil
	}
	register, ok := sym.(func(*nativeunit.Registry))
	if !ok {
		return nil, fmt.Errorf("%w: %s: %s is %T",
			ErrPlugin, path, RegisterSymbol, sym)
	}
	return register, nil
}

// loadPlugins opens given plugins and registers their fixtures in given
// registry.
func loadPlugins(
	reg *nativeunit.Registry, open openPlugin, log *zap.Logger,
	paths ...string,
) error {
	for _, path := range paths {
		n := reg.Len()
		register, err := open(path)
		if err != nil {
			return err
		}
		if register != nil {
			register(reg)
		}
		log.Debug("plugin loaded", zap.String("path", path),
			zap.Int("fixtures", reg.Len()-n))
	}
	return nil
}
