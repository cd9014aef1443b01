package cmd

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/gnedna/internal/iosfga"
	"github.com/gnames/gnedna/internal/ioworms"
	"github.com/gnames/gnedna/pkg/config"
	"github.com/gnames/gnedna/pkg/errcode"
	"github.com/gnames/gnedna/pkg/resolver"
)

// newRegistry creates the registry selected in cfg. The returned
// function releases its resources.
func newRegistry(cfg *config.Config) (resolver.Registry, func(), error) {
	switch cfg.Registry.Type {
	case "worms":
		gn.Info("Resolving names with WoRMS at <em>%s</em>", cfg.Registry.URL)
		return ioworms.New(cfg.Registry), func() {}, nil
	case "sfga":
		reg, err := iosfga.New(cfg)
		if err != nil {
			return nil, nil, err
		}
		gn.Info("Resolving names with SFGA archive <em>%s</em>",
			cfg.Registry.SFGAPath)
		return reg, func() { reg.Close() }, nil
	default:
		return nil, nil, &gn.Error{
			Code: errcode.RegistryUnknownError,
			Msg:  "Unknown registry <em>%s</em>, use worms or sfga",
			Vars: []any{cfg.Registry.Type},
			Err:  fmt.Errorf("unknown registry %q", cfg.Registry.Type),
		}
	}
}
