package postgres

// PostgreSQL Error Codes
const (
	PgErrorCodeUniqueViolation = "23505"
	PgErrorCodeCheckViolation  = "23514"
)

// Character queries
const (
	sqlCharacterColumns = `
		c.character_id, c.name, c.level, c.experience,
		c.strength, c.agility, c.intelligence, c.charisma, c.endurance, c.luck,
		c.energy, c.max_energy, c.nerve, c.max_nerve, c.health, c.max_health,
		c.money, c.street_cred, c.equipment, c.inventory, c.completed_missions,
		ARRAY(SELECT ct.territory_id FROM character_territories ct
		      WHERE ct.character_id = c.character_id ORDER BY ct.territory_id),
		c.created_at, c.updated_at`

	sqlGetCharacter          = `SELECT ` + sqlCharacterColumns + ` FROM characters c WHERE c.character_id = $1`
	sqlGetCharacterForUpdate = sqlGetCharacter + ` FOR UPDATE OF c`

	sqlInsertCharacter = `
		INSERT INTO characters (
			character_id, name, level, experience,
			strength, agility, intelligence, charisma, endurance, luck,
			energy, max_energy, nerve, max_nerve, health, max_health,
			money, street_cred, equipment, inventory, completed_missions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)`

	// Money and street cred floor at zero
	sqlApplyCharacterDelta = `
		UPDATE characters SET
			energy = energy + $2,
			nerve = nerve + $3,
			money = GREATEST(0, money + $4),
			experience = experience + $5,
			street_cred = GREATEST(0, street_cred + $6),
			strength = strength + $7,
			agility = agility + $8,
			intelligence = intelligence + $9,
			charisma = charisma + $10,
			endurance = endurance + $11,
			luck = luck + $12,
			updated_at = NOW()
		WHERE character_id = $1`

	sqlSetCharacterHealth = `UPDATE characters SET health = $2, updated_at = NOW() WHERE character_id = $1`

	sqlAddInventoryItems = `UPDATE characters SET inventory = inventory || $2::jsonb, updated_at = NOW() WHERE character_id = $1`

	sqlIncrementCompletedMissions = `
		UPDATE characters SET
			completed_missions = jsonb_set(
				completed_missions,
				ARRAY[$2::text],
				to_jsonb(COALESCE((completed_missions ->> $2::text)::int, 0) + 1)),
			updated_at = NOW()
		WHERE character_id = $1`
)

// Crew queries
const (
	sqlGetCrewMembers = `
		SELECT crew_member_id, character_id, name, role, specialization, level, experience, created_at
		FROM crew_members
		WHERE character_id = $1 AND crew_member_id = ANY($2)
		ORDER BY name`

	sqlInsertCrewMember = `
		INSERT INTO crew_members (crew_member_id, character_id, name, role, specialization, level, experience)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	sqlAddCrewExperience = `UPDATE crew_members SET experience = experience + $2 WHERE crew_member_id = ANY($1)`
)

// Territory queries
const (
	sqlEnsureTerritory = `
		INSERT INTO territories (territory_id, name) VALUES ($1, $1)
		ON CONFLICT (territory_id) DO NOTHING`

	sqlAddTerritoryInfluence = `
		INSERT INTO territories (territory_id, name, influence) VALUES ($1, $1, $2)
		ON CONFLICT (territory_id) DO UPDATE SET influence = territories.influence + EXCLUDED.influence`

	sqlGrantTerritoryControl = `
		INSERT INTO character_territories (character_id, territory_id, control) VALUES ($1, $2, $3)
		ON CONFLICT (character_id, territory_id) DO UPDATE
		SET control = character_territories.control + EXCLUDED.control`

	sqlGetTerritory = `SELECT territory_id, name, influence FROM territories WHERE territory_id = $1`
)

// Mission queries
const (
	sqlMissionColumns = `mission_id, character_id, status, collected, data, created_at, updated_at`

	sqlGetMission = `SELECT ` + sqlMissionColumns + `
		FROM character_missions WHERE mission_id = $1 AND character_id = $2`

	sqlGetMissionForUpdate = `SELECT ` + sqlMissionColumns + `
		FROM character_missions WHERE mission_id = $1 FOR UPDATE`

	sqlListMissions = `SELECT ` + sqlMissionColumns + `
		FROM character_missions
		WHERE character_id = $1
		  AND ($2::text = '' OR status = $2::text)
		  AND ($3::text = '' OR mission_type = $3::text)
		ORDER BY mission_key`

	sqlGetInProgressMissions = `SELECT ` + sqlMissionColumns + `
		FROM character_missions WHERE status = 'In Progress' ORDER BY deadline`

	sqlInsertMission = `
		INSERT INTO character_missions (
			mission_id, character_id, mission_key, mission_type, status, collected, deadline, data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (character_id, mission_key) DO NOTHING`

	sqlUpdateMissionIfStatus = `
		UPDATE character_missions
		SET status = $2, collected = $3, deadline = $4, data = $5, updated_at = $6
		WHERE mission_id = $1 AND status = $7`
)

// Error Messages
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgFailedToGetCharacter     = "failed to get character"
	ErrMsgFailedToGetMission       = "failed to get mission"
	ErrMsgFailedToScanMission      = "failed to scan mission"
	ErrMsgFailedToDecodeMission    = "failed to decode mission"
	ErrMsgStoredMissionInvalid     = "stored mission failed validation"
)
