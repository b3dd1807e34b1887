package driven

// PromptStore provides access to the grounding prompt templates.
// Implementations may load prompts from user-editable files or fall back
// to embedded defaults.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next
	// access. Useful when prompts have been edited on disk.
	Reload()
}

// Well-known prompt names used by the grounded answerer.
const (
	// PromptGroundedSystem opens the prompt and constrains the model to
	// the supplied context. No format placeholders.
	PromptGroundedSystem = "grounded_system"

	// PromptGroundedFooter closes the prompt with the citation and
	// anti-fabrication instructions. No format placeholders.
	PromptGroundedFooter = "grounded_footer"
)
