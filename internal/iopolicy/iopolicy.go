// Package iopolicy reads policy.yaml from the config directory.
package iopolicy

import (
	"log/slog"
	"os"

	"github.com/gnames/gnrating/pkg/config"
	"github.com/gnames/gnrating/pkg/policy"
)

type iopolicy struct {
	path string
}

// New creates a policy.Loader for the policy file of the user.
func New(cfg *config.Config) policy.Loader {
	return NewWithPath(config.PolicyFilePath(cfg.HomeDir))
}

// NewWithPath creates a policy.Loader for an explicit file.
func NewWithPath(path string) policy.Loader {
	res := iopolicy{path: path}
	return &res
}

func (p *iopolicy) Load() (*policy.Policy, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, PolicyReadError(p.path, err)
	}
	res, err := policy.Parse(data)
	if err != nil {
		return nil, err
	}
	slog.Info("Policy loaded",
		"path", p.path,
		"exclusion", res.ExclusionVariant(),
		"duplicates", len(res.Duplicates),
		"errata", len(res.Errata),
		"overrides", len(res.Overrides),
	)
	return res, nil
}
