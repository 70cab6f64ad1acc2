package config

// Warnings lists settings that work but are probably a mistake
func (c *Config) Warnings() []string {
	var warnings []string

	if c.Environment == EnvProduction && c.APIKey == "" {
		warnings = append(warnings, WarnMsgNoAPIKeyInProd)
	}
	if c.SnapshotsEnabled && c.DBPassword == insecureDBPassword {
		warnings = append(warnings, WarnMsgDefaultDBPassword)
	}
	if c.SessionHistoryDepth == 0 {
		warnings = append(warnings, WarnMsgSnapshotsNoHistory)
	}

	return warnings
}
