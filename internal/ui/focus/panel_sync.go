package focus

// PanelSync decides when a panel pulls focus onto its content.
//
// Under manual activation moving focus across triggers does not select a tab,
// so an explicit activation leaves no element naturally focused and the
// panel takes it. Under automatic activation focus already sits on the
// trigger and the panel stays out of the way.
type PanelSync struct {
	prevActive bool
}

// NewPanelSync creates a synchroniser seeded with the panel's state at mount,
// so mounting an already active panel never pulls focus.
func NewPanelSync(active bool) *PanelSync {
	return &PanelSync{prevActive: active}
}

// Evaluate records the current active state and returns true exactly on an
// inactive to active transition under manual activation.
func (p *PanelSync) Evaluate(active, manual bool) bool {
	pull := manual && !p.prevActive && active
	p.prevActive = active
	return pull
}

