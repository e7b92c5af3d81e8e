package auroradataapi

// AuroraDataAPIGoDriverVersion is the version of this driver.
const AuroraDataAPIGoDriverVersion = "1.0.0"
