package cache

// Keyer builds cache keys for rendered artifacts.
type Keyer interface {
	// PlanKey identifies one rasterized floor plan: the configuration it
	// came from, its position in the document, and the raster options.
	PlanKey(configHash string, index int, opts PlanKeyOpts) string

	// DocumentKey identifies the multi-page PDF built from a configuration.
	DocumentKey(configHash string) string
}

// PlanKeyOpts are the parameters that change a plan's raster output
// without changing the configuration.
type PlanKeyOpts struct {
	DPI float64 `json:"dpi"`
}

// DefaultKeyer hashes key components with SHA-256, so keys stay fixed
// length no matter how large the configuration is.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// PlanKey generates a key for one rendered plan.
func (k *DefaultKeyer) PlanKey(configHash string, index int, opts PlanKeyOpts) string {
	return hashKey("plan", configHash, index, opts)
}

// DocumentKey generates a key for the rendered document.
func (k *DefaultKeyer) DocumentKey(configHash string) string {
	return hashKey("document", configHash)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
