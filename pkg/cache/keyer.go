package cache

// Keyer derives cache keys from the inputs that determine an artifact.
type Keyer interface {
	// GenerationKey identifies a circle set.
	GenerationKey(opts GenerationKeyOpts) string

	// ArtifactKey identifies one rendered format of a circle set.
	ArtifactKey(generationKey string, opts ArtifactKeyOpts) string
}

// GenerationKeyOpts are the generator inputs. Base holds each base circle
// as {x, y, r}.
type GenerationKeyOpts struct {
	Base       [][3]float64 `json:"base"`
	Depth      int          `json:"depth"`
	Threshold  float64      `json:"threshold"`
	MaxCircles int          `json:"max_circles"`
}

// ArtifactKeyOpts are the render inputs for one format.
type ArtifactKeyOpts struct {
	Format       string  `json:"format"`
	Size         int     `json:"size"`
	Limit        float64 `json:"limit"`
	Color        string  `json:"color"`
	Background   string  `json:"background"`
	AutoFit      bool    `json:"auto_fit"`
	LineageNodes int     `json:"lineage_nodes,omitempty"`
}

// DefaultKeyer hashes the JSON form of the options.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// GenerationKey returns "gen:<sha256>".
func (DefaultKeyer) GenerationKey(opts GenerationKeyOpts) string {
	return hashKey("gen", opts)
}

// ArtifactKey returns "artifact:<sha256>".
func (DefaultKeyer) ArtifactKey(generationKey string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", generationKey, opts)
}
