package common

const (
	// BaseWidth and BaseHeight are the logical viewport size in pixels.
	BaseWidth  = 1024
	BaseHeight = 768

	// CellSize is the side of one square track tile in world units.
	CellSize = 128

	FrameRate = 60
)
