package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/MobMissions_Go/internal/mission"
)

// LoadMissionCatalog loads the mission catalog and checks it against the
// catalog schema and the mission validation rules. A catalog that fails
// either check stops startup.
func LoadMissionCatalog(path string) (*mission.Catalog, error) {
	slog.Info(LogMsgLoadingCatalog, "path", path)

	catalog, err := mission.LoadCatalog(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	slog.Info(LogMsgCatalogLoaded,
		"version", catalog.Version,
		"missions", len(catalog.Missions),
		"category_bonuses", len(catalog.CategoryBonuses))

	return catalog, nil
}
