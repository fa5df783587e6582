package parameter

// Surface geometry
const (
	// CellWidth is the number of surface units covered by one terminal column
	CellWidth = 8
	// CellHeight is the number of surface units covered by one terminal row
	CellHeight = 16
)

// Node Entity
const (
	// NodeCount is the fixed node population per surface
	NodeCount = 50
	// NodeSpeedRange is the width of the uniform velocity interval, centered on zero (units per frame)
	NodeSpeedRange = 0.5
	// NodeRadius is the dot radius in surface units
	NodeRadius = 2.0
	// NodeAlpha is the fill opacity of a node dot
	NodeAlpha = 0.5
)

// Connection Lines
const (
	// LinkDistance is the exclusive upper bound on node distance for a connecting line
	LinkDistance = 150.0
	// LinkMaxAlpha is the line opacity approached as distance goes to zero
	LinkMaxAlpha = 0.2
	// SpatialThreshold is the node population above which links are found through a bucket grid
	SpatialThreshold = 200
)

// Pulsing Circle Entity
const (
	PulseCount = 5

	PulseMaxRadiusMin   = 50.0
	PulseMaxRadiusRange = 100.0
	PulseSpeedMin       = 0.3
	PulseSpeedRange     = 0.5

	// PulseAlpha is the ring opacity at radius zero, decaying linearly to zero at max radius
	PulseAlpha = 0.2
)

// Binary Rain Entity
const (
	RainCount = 30

	RainSpeedMin   = 2.0
	RainSpeedRange = 3.0
	RainAlphaMin   = 0.2
	RainAlphaRange = 0.5

	// RainRespawnY is where a drop re-enters after falling past the bottom edge
	RainRespawnY = -20.0
)

// Code Snippet Entity
const (
	SnippetCount = 15

	SnippetSpeedRange = 0.3
	SnippetAlphaMin   = 0.1
	SnippetAlphaRange = 0.3

	// SnippetLifeMin/Range bound the countdown in frames before respawn
	SnippetLifeMin   = 200.0
	SnippetLifeRange = 500.0
)

// SnippetTexts is the pool a code snippet draws its text from
var SnippetTexts = []string{
	"def ml_model():", "import numpy", "pandas.DataFrame",
	"sklearn.fit()", "torch.nn", "tensorflow.keras",
	"data.head()", "plt.plot()", "model.predict()",
	"np.array()", "df.groupby()", "accuracy_score()",
}

// Grid Line Entity
const (
	// GridLinePairs is the count of vertical and of horizontal lines
	GridLinePairs = 10

	GridSpeedMin   = 0.2
	GridSpeedRange = 0.5

	// GridWrap is the offset at which a grid line scroll wraps back to zero
	GridWrap = 50.0
)

// Surface fade
const (
	// FadeAlpha is the per-frame blend toward the background, leaving motion trails
	FadeAlpha = 0.1
)
