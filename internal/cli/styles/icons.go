package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconCheck    = "\uf00c" // check
	IconX        = "\uf00d" // x
	IconInfo     = "\uf05a" // info
	IconConfig   = "\ue615" // config
	IconCursor   = "\uf105" // angle right
	IconTrash    = "\uf1f8" // trash
)
