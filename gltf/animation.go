package gltf

// Animation interpolation modes.
const (
	InterpolationLinear      = "LINEAR"
	InterpolationStep        = "STEP"
	InterpolationCubicSpline = "CUBICSPLINE"
)

// Animation groups channels with the samplers driving them.
type Animation struct {
	Property

	Name     string
	Channels []AnimationChannel
	Samplers []AnimationSampler
}

// AnimationChannel connects a sampler's output to an animated node property.
type AnimationChannel struct {
	Property

	// Sampler index within the animation, -1 when missing.
	Sampler int32
	Target  AnimationChannelTarget
}

// AnimationChannelTarget names the node and property being animated.
type AnimationChannelTarget struct {
	Property

	// Node index, -1 when the target is supplied by an extension.
	Node int32
	// Path is "translation", "rotation", "scale" or "weights".
	Path string
}

// AnimationSampler pairs keyframe input times with output values.
type AnimationSampler struct {
	Property

	// Input is the accessor of keyframe times, -1 when missing.
	Input int32
	// Interpolation defaults to linear.
	Interpolation string
	// Output is the accessor of keyframe values, -1 when missing.
	Output int32
}

// Skin binds mesh vertices to joints of the node hierarchy.
type Skin struct {
	Property

	Name string
	// InverseBindMatrices is a MAT4 accessor index, -1 when all matrices
	// are identity.
	InverseBindMatrices int32
	// Skeleton is the root joint node index, -1 when unspecified.
	Skeleton int32
	// Joints are node indices acting as joints.
	Joints []int32
}

// Camera projection types.
const (
	CameraTypePerspective  = "perspective"
	CameraTypeOrthographic = "orthographic"
)

// Camera is a projection attached to a node.
type Camera struct {
	Property

	Name string
	// Type selects which of the two projection structs is set.
	Type         string
	Perspective  *CameraPerspective
	Orthographic *CameraOrthographic
}

// CameraPerspective is a perspective projection.
type CameraPerspective struct {
	Property

	// AspectRatio is 0 when the viewport ratio should be used.
	AspectRatio float64
	// YFov is the vertical field of view in radians.
	YFov float64
	// ZFar is 0 for an infinite projection.
	ZFar  float64
	ZNear float64
}

// CameraOrthographic is an orthographic projection.
type CameraOrthographic struct {
	Property

	XMag  float64
	YMag  float64
	ZFar  float64
	ZNear float64
}
