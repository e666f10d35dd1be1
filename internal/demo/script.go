package demo

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrUnknownVariant is returned for a variant name with no script.
	ErrUnknownVariant = errors.New("unknown demo variant")

	// ErrInvalidScript is returned by Script.Validate.
	ErrInvalidScript = errors.New("invalid demo script")
)

// Variant selects one of the two scripted flows.
type Variant string

const (
	// VariantClassic is the single-page flow: manual minimise,
	// no overlays, no customize step.
	VariantClassic Variant = "classic"

	// VariantGuided auto-advances to the editor and adds the search and
	// messaging overlays plus the customize sub-flow.
	VariantGuided Variant = "guided"
)

// Default artifact identifiers.
const (
	ArtifactStorefront           ArtifactID = "storefront"
	ArtifactStorefrontHeading    ArtifactID = "storefront-heading"
	ArtifactStorefrontCustomized ArtifactID = "storefront-customized"
)

// Script is the fixed vocabulary, copy and timing of one variant.
type Script struct {
	Variant Variant

	// Terminal
	Seed             []Line
	Trigger          string
	StartLines       []Line // Appended before the project-type prompt
	ProjectPrompt    string
	ProjectTypes     []Option
	ExperiencePrompt string
	ExperienceTypes  []Option
	UnknownCommand   string // fmt format taking the normalised input
	UnavailableLine  string // Shown when a disabled option is committed
	PreparingLines   []Line
	CompleteLines    []Line
	ClearAnyPhase    bool

	// Timing
	ProvisioningDelay   time.Duration
	AutoAdvanceDelay    time.Duration // Zero disables the editor hand-off
	AssistantDelay      time.Duration
	ShareIndicatorDelay time.Duration

	// Assistant
	CustomizeEnabled  bool
	AssistantReply    string
	CustomizeReply    string
	DefaultArtifact   ArtifactID
	ReplyArtifact     ArtifactID
	CustomizeArtifact ArtifactID

	// Desktop affordances
	Overlays bool

	// Share
	ShareBaseURL string
}

func seedLines() []Line {
	return []Line{
		output("Last login: Tue Oct 21 10:45:23 on ttys001"),
		output(""),
	}
}

// ClassicScript returns the classic single-page flow.
func ClassicScript() Script {
	return Script{
		Variant: VariantClassic,
		Seed:    seedLines(),
		Trigger: "vibe",
		StartLines: []Line{
			output(""),
			output("Starting vibe workflow..."),
			output(""),
		},
		ProjectPrompt: "Are you starting something new or continuing on something?",
		ProjectTypes: []Option{
			{Label: "Starting something new"},
			{Label: "Continuing on something", Disabled: true},
		},
		ExperiencePrompt: "Which experience do you want to work on?",
		ExperienceTypes: []Option{
			{Label: "Brand experience"},
			{Label: "Retail experience"},
			{Label: "Logged-out experience"},
		},
		UnknownCommand:  "zsh: command not found: %s",
		UnavailableLine: "Continuing existing projects is not available in this demo yet. Pick \"Starting something new\".",
		PreparingLines: []Line{
			output(""),
			output("Thanks! Let us get things ready for you to vibe in Cursor."),
			output("Hang tight as this initial setup may take a few minutes."),
			output("We will let you know when it has completed."),
			output(""),
		},
		CompleteLines: []Line{
			output("✓ Setup complete. Your environment is ready."),
			output(""),
			output("You should see both a Cursor window and browser window pop up."),
			output("Click the yellow button to minimize this window."),
			output(""),
		},
		ClearAnyPhase: true,

		ProvisioningDelay:   5 * time.Second,
		AssistantDelay:      time.Second,
		ShareIndicatorDelay: 2 * time.Second,

		AssistantReply:    "I'll help you make the \"Welcome back, Supper Club\" text larger. Let me update the CSS for that heading.",
		CustomizeReply:    "Your sandbox is customized. I swapped the storefront to your brand palette and refreshed the preview.",
		DefaultArtifact:   ArtifactStorefront,
		ReplyArtifact:     ArtifactStorefrontHeading,
		CustomizeArtifact: ArtifactStorefrontCustomized,

		ShareBaseURL: "https://vibe.example.dev",
	}
}

// GuidedScript returns the flow with overlays, auto-advance and the
// customize step.
func GuidedScript() Script {
	s := ClassicScript()
	s.Variant = VariantGuided
	s.CompleteLines = []Line{
		output("✓ Setup complete. Your environment is ready."),
		output(""),
		output("Opening Cursor and your browser..."),
		output(""),
	}
	s.ClearAnyPhase = false
	s.ProvisioningDelay = 3 * time.Second
	s.AutoAdvanceDelay = 2 * time.Second
	s.CustomizeEnabled = true
	s.CustomizeReply = "Done! Your sandbox now uses **your brand's** colors and seed catalog.\n\nThe browser preview has been refreshed with the customized storefront."
	s.Overlays = true
	return s
}

// ScriptFor returns the default script for a variant.
func ScriptFor(v Variant) (Script, error) {
	switch v {
	case VariantClassic:
		return ClassicScript(), nil
	case VariantGuided:
		return GuidedScript(), nil
	default:
		return Script{}, fmt.Errorf("%w: %q", ErrUnknownVariant, v)
	}
}

// Validate checks the invariants the engine relies on.
func (s Script) Validate() error {
	var problems []string
	if strings.TrimSpace(s.Trigger) == "" {
		problems = append(problems, "trigger is empty")
	}
	if len(s.ProjectTypes) == 0 {
		problems = append(problems, "no project types")
	} else if s.ProjectTypes[0].Disabled {
		problems = append(problems, "first project type must be enabled")
	}
	if len(s.ExperienceTypes) == 0 {
		problems = append(problems, "no experience types")
	}
	delays := []struct {
		name string
		d    time.Duration
	}{
		{"provisioning delay", s.ProvisioningDelay},
		{"auto-advance delay", s.AutoAdvanceDelay},
		{"assistant delay", s.AssistantDelay},
		{"share indicator delay", s.ShareIndicatorDelay},
	}
	for _, delay := range delays {
		if delay.d < 0 {
			problems = append(problems, delay.name+" is negative")
		}
	}
	if s.ShareIndicatorDelay == 0 {
		// The copied indicator is only ever cleared by its timer.
		problems = append(problems, "share indicator delay must be positive")
	}
	if !strings.Contains(s.UnknownCommand, "%s") {
		problems = append(problems, "unknown command format must contain %s")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidScript, strings.Join(problems, "; "))
	}
	return nil
}

// normalizedTrigger folds the configured trigger the same way input is folded.
func (s Script) normalizedTrigger() string {
	return normalize(s.Trigger)
}

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

func cloneLines(lines []Line) []Line {
	return append([]Line(nil), lines...)
}
