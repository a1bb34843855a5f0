package platform

import "fmt"

// Draft is the generated, platform-specific artifact. The creating
// Adapter owns it until it is handed to the orchestrator, which only
// aggregates.
type Draft struct {
	PlatformID string `json:"platform_id"`

	// Title is optional on platforms that have no title concept.
	Title string `json:"title,omitempty"`

	// Body is never empty on successful generation.
	Body string `json:"body"`

	// Thread holds the ordered chunks for threaded platforms; the final
	// chunk carries the call to action.
	Thread []string `json:"thread,omitempty"`

	// Communities lists candidate communities for platforms with
	// community lookup enabled.
	Communities []string `json:"communities,omitempty"`

	Tags     []string          `json:"tags,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// ValidationResult is the outcome of applying a platform's rules to a
// Draft. Errors block use, warnings and suggestions are advisory.
type ValidationResult struct {
	IsValid     bool     `json:"is_valid"`
	Errors      []string `json:"errors"`
	Warnings    []string `json:"warnings"`
	Suggestions []string `json:"suggestions"`
}

// GenerationError indicates a platform adapter's model response could not
// be parsed into a Draft. It is local to one platform.
type GenerationError struct {
	Platform    string
	RawResponse string
	Err         error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generate %s draft: %v", e.Platform, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
