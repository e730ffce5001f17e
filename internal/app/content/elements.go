package content

// Element is one of the six energy categories used across the site.
type Element struct {
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Tagline     string   `json:"tagline"`
	Description string   `json:"description"`
	Traits      []string `json:"traits"`
}

// ElementSlugs lists the six element slugs in canonical order.
// Scoring tie-breaks and all listings follow this order.
var ElementSlugs = []string{"electric", "fiery", "aquatic", "earthly", "airy", "metallic"}

// Elements holds the element content table in canonical order.
var Elements = []Element{
	{
		Slug:        "electric",
		Name:        "Electric",
		Tagline:     "The spark that sets things in motion",
		Description: "Electric types thrive on novelty and momentum. They generate ideas faster than they can act on them and energize every room they enter.",
		Traits:      []string{"inventive", "quick", "restless", "magnetic"},
	},
	{
		Slug:        "fiery",
		Name:        "Fiery",
		Tagline:     "Drive, heat and forward motion",
		Description: "Fiery types lead with conviction. They commit hard, burn bright and pull others along through sheer intensity of purpose.",
		Traits:      []string{"passionate", "decisive", "competitive", "bold"},
	},
	{
		Slug:        "aquatic",
		Name:        "Aquatic",
		Tagline:     "Depth, feeling and flow",
		Description: "Aquatic types read the emotional current of any situation. They adapt around obstacles rather than through them and hold space for others.",
		Traits:      []string{"empathetic", "intuitive", "adaptable", "reflective"},
	},
	{
		Slug:        "earthly",
		Name:        "Earthly",
		Tagline:     "Steadiness you can build on",
		Description: "Earthly types are the foundation of any group. They value consistency, finish what they start and measure progress in seasons, not sprints.",
		Traits:      []string{"grounded", "reliable", "patient", "practical"},
	},
	{
		Slug:        "airy",
		Name:        "Airy",
		Tagline:     "Perspective above the noise",
		Description: "Airy types live in the realm of concepts and connections. They see patterns others miss and need room to roam intellectually.",
		Traits:      []string{"curious", "analytical", "detached", "visionary"},
	},
	{
		Slug:        "metallic",
		Name:        "Metallic",
		Tagline:     "Precision under pressure",
		Description: "Metallic types bring structure and refinement. They sharpen ideas into form, hold high standards and keep their edge in chaos.",
		Traits:      []string{"disciplined", "precise", "resilient", "discerning"},
	},
}

// CompatibilityLevel describes how two elements interact.
type CompatibilityLevel struct {
	Score int    `json:"score"` // 0-100
	Label string `json:"label"`
}

// compatibility holds the upper triangle of the pairwise matrix,
// keyed by canonical-order slug pairs. Lookups go through Compatibility,
// which handles symmetry.
var compatibility = map[[2]string]CompatibilityLevel{
	{"electric", "electric"}: {82, "Amplifying"},
	{"electric", "fiery"}:    {90, "Combustive"},
	{"electric", "aquatic"}:  {55, "Conductive"},
	{"electric", "earthly"}:  {48, "Grounding"},
	{"electric", "airy"}:     {88, "Storm-making"},
	{"electric", "metallic"}: {74, "Charged"},
	{"fiery", "fiery"}:       {60, "Volatile"},
	{"fiery", "aquatic"}:     {42, "Tempering"},
	{"fiery", "earthly"}:     {70, "Kiln-like"},
	{"fiery", "airy"}:        {85, "Fanning"},
	{"fiery", "metallic"}:    {78, "Forging"},
	{"aquatic", "aquatic"}:   {80, "Deepening"},
	{"aquatic", "earthly"}:   {92, "Fertile"},
	{"aquatic", "airy"}:      {64, "Misting"},
	{"aquatic", "metallic"}:  {58, "Polishing"},
	{"earthly", "earthly"}:   {76, "Bedrock"},
	{"earthly", "airy"}:      {50, "Weathering"},
	{"earthly", "metallic"}:  {86, "Ore-rich"},
	{"airy", "airy"}:         {72, "Expansive"},
	{"airy", "metallic"}:     {62, "Resonant"},
	{"metallic", "metallic"}: {68, "Tempered"},
}

var elementIndex = func() map[string]int {
	idx := make(map[string]int, len(ElementSlugs))
	for i, slug := range ElementSlugs {
		idx[slug] = i
	}
	return idx
}()

// ElementBySlug returns the element for a slug, or false if unknown.
func ElementBySlug(slug string) (Element, bool) {
	i, ok := elementIndex[slug]
	if !ok {
		return Element{}, false
	}
	return Elements[i], true
}

// IsElementSlug reports whether slug names one of the six elements.
func IsElementSlug(slug string) bool {
	_, ok := elementIndex[slug]
	return ok
}

// CompatibilityEntry pairs an element against another with their level.
type CompatibilityEntry struct {
	Element string `json:"element"`
	Name    string `json:"name"`
	Score   int    `json:"score"`
	Label   string `json:"label"`
}

// CompatibilityList returns the element's pairings against all six elements,
// self included, in canonical order. The second return value is false if the
// slug is unknown.
func CompatibilityList(slug string) ([]CompatibilityEntry, bool) {
	if !IsElementSlug(slug) {
		return nil, false
	}

	entries := make([]CompatibilityEntry, 0, len(ElementSlugs))
	for _, other := range ElementSlugs {
		level, _ := Compatibility(slug, other)
		el, _ := ElementBySlug(other)
		entries = append(entries, CompatibilityEntry{
			Element: other,
			Name:    el.Name,
			Score:   level.Score,
			Label:   level.Label,
		})
	}
	return entries, true
}

// Compatibility returns the compatibility of two elements, in either order.
// The second return value is false if either slug is unknown.
func Compatibility(a, b string) (CompatibilityLevel, bool) {
	ia, okA := elementIndex[a]
	ib, okB := elementIndex[b]
	if !okA || !okB {
		return CompatibilityLevel{}, false
	}
	if ia > ib {
		a, b = b, a
	}
	level, ok := compatibility[[2]string{a, b}]
	return level, ok
}
