package validation

import _ "embed"

// MissionCatalogSchemaName is the resource name the catalog schema compiles under
const MissionCatalogSchemaName = "mission_catalog.schema.json"

//go:embed schemas/mission_catalog.schema.json
var missionCatalogSchema []byte
