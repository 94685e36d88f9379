package prompt

import (
	"github.com/bryanwahyu/ideaforge/internal/domain/ai"
	"github.com/bryanwahyu/ideaforge/internal/domain/ideas"
)

// ImagePrompts is the fixed ordered set of five visual styles generated per
// idea. Order matters: the orchestrator reports progress by index.
var ImagePrompts = []ai.ImagePrompt{
	{
		Type:   ideas.ImageHero,
		Label:  "Hero Product",
		Format: `Professional product photography of "%s": %s. Clean gradient background transitioning from dark blue to purple, studio lighting with soft shadows, ultra high detail, 8K quality, photorealistic render. The product should be the central focus, floating or on a minimal pedestal.`,
	},
	{
		Type:   ideas.ImageUIMockup,
		Label:  "App UI Mockup",
		Format: `Modern mobile app UI mockup for "%s". Dark theme interface with sleek design, showing the main dashboard or primary feature screen. Include realistic device frame (iPhone or Android), glass morphism effects, subtle gradients, professional UX design. The UI should reflect: %s`,
	},
	{
		Type:   ideas.ImageLifestyle,
		Label:  "Lifestyle Photography",
		Format: `Lifestyle photography showing "%s" being used in a real-world context. Natural setting with warm, inviting lighting. Show a person (hands only or silhouette) interacting with the product naturally. Authentic, editorial style photography that tells a story. Context: %s`,
	},
	{
		Type:   ideas.ImageBlueprint,
		Label:  "Technical Blueprint",
		Format: `Technical blueprint and exploded view diagram of "%s". Engineering schematic style with dark background (navy or black), white and cyan line drawings, labeled components with callout lines, measurements and technical annotations. Professional CAD/engineering aesthetic showing internal components. Based on: %s`,
	},
	{
		Type:   ideas.ImageLogo,
		Label:  "Logo Design",
		Format: `Modern minimalist logo design for "%s". Clean vector-style logo on dark background, professional and memorable, suitable for tech/startup branding. Include a simple icon/symbol and the product name in a modern sans-serif font. The logo should convey: %s`,
	},
}

// LabelFor returns the human-readable name for an image type.
func LabelFor(t ideas.ImageType) string {
	for _, p := range ImagePrompts {
		if p.Type == t {
			return p.Label
		}
	}
	return string(t)
}
