package previewcmd

// FeatureGates exposes runtime feature toggles required by preview command handlers.
// Callers should supply closures that read from tagdown.Config.Features.Preview so
// handlers stay decoupled from configuration while honouring feature flags.
type FeatureGates struct {
	PreviewEnabled func() bool
}

func (g FeatureGates) previewEnabled() bool {
	if g.PreviewEnabled == nil {
		return true
	}
	return g.PreviewEnabled()
}
