package meshing

// Unit quad corners in block-local space, counter-clockwise from the
// outside. Four xyz triples per face.
var (
	FrontFace  = [12]float32{0, 0, 1, 1, 0, 1, 1, 1, 1, 0, 1, 1}
	BackFace   = [12]float32{1, 0, 0, 0, 0, 0, 0, 1, 0, 1, 1, 0}
	LeftFace   = [12]float32{0, 0, 0, 0, 0, 1, 0, 1, 1, 0, 1, 0}
	RightFace  = [12]float32{1, 0, 1, 1, 0, 0, 1, 1, 0, 1, 1, 1}
	TopFace    = [12]float32{0, 1, 1, 1, 1, 1, 1, 1, 0, 0, 1, 0}
	BottomFace = [12]float32{0, 0, 0, 1, 0, 0, 1, 0, 1, 0, 0, 1}

	// Diagonal quads used by X shaped blocks.
	XFace1 = [12]float32{0, 0, 0, 1, 0, 1, 1, 1, 1, 0, 1, 0}
	XFace2 = [12]float32{0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1}
)

// Directional light applied to every vertex of a face.
const (
	LightTop    float32 = 1.0
	LightX      float32 = 0.8
	LightZ      float32 = 0.6
	LightBottom float32 = 0.4
)
