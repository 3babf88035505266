// Package info reports where and how records are stored.
package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/nomilog/pkg/app"
	"tableflip.dev/nomilog/pkg/store"
)

type Info struct {
	Config  *store.FileConfig
	Service *app.Service
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("NOMILOG_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "NOMILOG_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "NOMILOG_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	file := n.Config.File
	if file == "" {
		file = "none"
	}
	_, _ = fmt.Fprintln(out, "Config.file:", file)
	_, _ = fmt.Fprintln(out, "Config.backend:", n.Config.Backend())
	switch n.Config.Backend() {
	case store.BackendSQLite:
		_, _ = fmt.Fprintln(out, "Config.sqlite.path:", n.Config.SQLitePath())
	case store.BackendRedis:
		_, _ = fmt.Fprintln(out, "Config.redis.addr:", n.Config.Redis().Addr)
	case store.BackendMemory:
	default:
		_, _ = fmt.Fprintln(out, "Config.path:", n.Config.BasePath())
	}

	if n.Service == nil {
		return fmt.Errorf("failed to open the store")
	}
	settings := n.Service.Settings(ctx)
	_, _ = fmt.Fprintln(out, "Records:", len(n.Service.ListAll(ctx)))
	_, _ = fmt.Fprintln(out, "Premium:", settings.IsPremium)
	return nil
}
