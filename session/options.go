// SPDX-License-Identifier: MIT
// Package: karnaugh/session
//
// options.go: functional options for New.

package session

import (
	"go.uber.org/zap"
)

// DefaultPalette lists the colour names used when no palette is given.
// They are the LaTeX xcolor names the exporter writes verbatim.
var DefaultPalette = []string{
	"red", "green", "blue", "yellow", "purple",
	"cyan", "orange", "pink", "brown", "gray",
}

// DefaultVars are the variable names of a fresh session.
var DefaultVars = []string{"A", "B", "C", "D"}

// TagPrefix prefixes every marking tag.
const TagPrefix = "marking_"

type config struct {
	log     *zap.Logger
	palette []string
	vars    []string
	values  string
	title   string
}

func defaultConfig() config {
	return config{
		log:     zap.NewNop(),
		palette: DefaultPalette,
		vars:    DefaultVars,
	}
}

// Option customizes New.
type Option func(*config)

// WithLogger sets the logger. Panics on nil.
func WithLogger(log *zap.Logger) Option {
	if log == nil {
		panic("session: WithLogger(nil)")
	}
	return func(c *config) { c.log = log }
}

// WithPalette sets the colour names markings cycle through.
// Panics on an empty palette or an empty name.
func WithPalette(names ...string) Option {
	if len(names) == 0 {
		panic("session: WithPalette()")
	}
	for _, n := range names {
		if n == "" {
			panic("session: WithPalette with empty colour name")
		}
	}
	p := append([]string(nil), names...)
	return func(c *config) { c.palette = p }
}

// WithVars sets the initial variable names. The count is validated by New.
func WithVars(names ...string) Option {
	v := append([]string(nil), names...)
	return func(c *config) { c.vars = v }
}

// WithValues sets the initial values string. The length is validated by New.
func WithValues(values string) Option {
	return func(c *config) { c.values = values }
}

// WithTitle sets the map title.
func WithTitle(title string) Option {
	return func(c *config) { c.title = title }
}
