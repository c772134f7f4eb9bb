package service

import (
	"errors"
	"fmt"

	"ac_learner/internal/acconfig"
)

// ErrConfigNotFound is returned for an unknown config name.
var ErrConfigNotFound = errors.New("config not found")

type CatalogService struct {
	configs *acconfig.Catalog
}

func NewCatalogService(configs *acconfig.Catalog) *CatalogService {
	if configs == nil {
		configs = acconfig.NewCatalog()
	}
	return &CatalogService{configs: configs}
}

func (s *CatalogService) List() []acconfig.Summary {
	out := make([]acconfig.Summary, 0, s.configs.Len())
	for i, r := range s.configs.Records() {
		out = append(out, acconfig.Summarize(i, r))
	}
	return out
}

// Get returns the first config with the given name.
func (s *CatalogService) Get(name string) (*acconfig.Record, error) {
	r, ok := s.configs.Find(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrConfigNotFound, name)
	}
	return r, nil
}
