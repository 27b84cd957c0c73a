package entity

//go:generate mockgen -source=focus.go -destination=mocks/mock_focus.go -package=mocks

// FocusOptions configures an imperative focus transfer.
type FocusOptions struct {
	PreventScroll bool // Do not scroll the viewport to the target
	IncludeRoot   bool // The target itself may take focus, not only its descendants
}

// FocusTarget is anything the host can move input focus to.
type FocusTarget interface {
	Focus(opts FocusOptions)
}
