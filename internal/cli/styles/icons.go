package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGo        = "\ue627" // go gopher

	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconConfig  = "\ue615" // config
	IconScript  = "\uf121" // code

	IconCursor  = "\uf054" // chevron-right
	IconLayout  = "\uf0db" // columns
	IconEditor  = "\uf0f6" // file-text
	IconClock   = "\uf017" // clock
	IconRestore = "\uf0e2" // rotate-left
	IconSave    = "\uf0c7" // floppy
)
