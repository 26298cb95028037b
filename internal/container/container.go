// Package container wires application dependencies for the server binaries.
package container

import (
	"fmt"
	"log"

	"gotrend/adapters/excel"
	"gotrend/adapters/stats/engine"
	"gotrend/app"
	"gotrend/internal/config"
	"gotrend/ports"
	"gotrend/ui"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config

	Engine  ports.EnginePort
	Reader  ports.ReaderPort
	Service *app.TrendService
	Server  *ui.Server
}

// New creates a new dependency injection container
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	c := &Container{Config: cfg}
	c.Engine = engine.NewEngine(engine.WithParallelism(cfg.Compute.MaxParallel))
	c.Service = app.NewTrendService(c.Engine)

	if cfg.Data.File != "" {
		log.Printf("Using dataset file: %s", cfg.Data.File)
		c.Reader = excel.NewDataReaderWithSheet(cfg.Data.File, cfg.Data.Sheet)
	} else {
		log.Printf("No dataset file configured, API accepts inline observations only")
	}

	c.Server = ui.NewServer(c.Service, c.Reader)

	log.Printf("Container initialized (max parallel pairs: %d)", cfg.Compute.MaxParallel)
	return c, nil
}

// Addr returns the listen address from configuration
func (c *Container) Addr() string {
	return ":" + c.Config.Server.Port
}
