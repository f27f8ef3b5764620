package cli

import (
	"github.com/freeeve/machparse/config"
	"github.com/freeeve/machparse/planner"
)

func loadConfig(path string) (*planner.Options, error) {
	return config.Load(path)
}
