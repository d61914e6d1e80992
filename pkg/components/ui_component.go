package components

// PromptKind identifies an overlay text entity.
type PromptKind int

const (
	// PromptTitle is the title screen text shown in the Start state.
	PromptTitle PromptKind = iota
	// PromptGameOver is shown after a completed run.
	PromptGameOver
)

// PromptComponent is a full-screen text overlay entity.
type PromptComponent struct {
	Kind PromptKind
	Text string
}
