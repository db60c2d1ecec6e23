package dialectcmd

// FeatureGates exposes runtime feature toggles required by dialect command handlers.
// Callers should supply closures that read from tagdown.Config.Features.Commands so
// handlers stay decoupled from configuration while honouring feature flags.
type FeatureGates struct {
	CommandsEnabled func() bool
}

func (g FeatureGates) commandsEnabled() bool {
	if g.CommandsEnabled == nil {
		return true
	}
	return g.CommandsEnabled()
}
