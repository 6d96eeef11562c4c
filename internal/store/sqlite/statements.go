package sqlite

// copyLegacyUsers moves every legacy row into the current user table.
// The legacy table has the same columns in the same order.
const copyLegacyUsers = `INSERT INTO user (id, discord_id, last_fm_username) SELECT * FROM discordLastFMUser`

const dropLegacyUsers = `DROP TABLE discordLastFMUser`

const tableExists = `SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`
