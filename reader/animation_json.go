package reader

import (
	"github.com/HereWeG0/cesium-native/gltf"
	"github.com/HereWeG0/cesium-native/jsonvalue"
)

var animationKnownKeys = map[string]bool{
	"channels": true, "samplers": true, "name": true,
}

func (c *readContext) readAnimation(v jsonvalue.Value, path string) gltf.Animation {
	var a gltf.Animation
	a.Channels = readObjectArray(c, v, "channels", path, (*readContext).readAnimationChannel)
	a.Samplers = readObjectArray(c, v, "samplers", path, (*readContext).readAnimationSampler)
	a.Name = c.stringField(v, "name", path, "")
	c.finishProperty(&a.Property, v, path, ParentAnimation, animationKnownKeys)
	return a
}

var animationChannelKnownKeys = map[string]bool{
	"sampler": true, "target": true,
}

var animationTargetKnownKeys = map[string]bool{
	"node": true, "path": true,
}

func (c *readContext) readAnimationChannel(v jsonvalue.Value, path string) gltf.AnimationChannel {
	ch := gltf.AnimationChannel{Sampler: -1}
	ch.Target.Node = -1
	if _, ok := v.Get("sampler"); !ok {
		c.errorf(path, "missing required property \"sampler\"")
	}
	ch.Sampler = c.indexField(v, "sampler", path)
	if target, ok := v.Get("target"); ok {
		if target.IsObject() {
			p := path + "/target"
			ch.Target.Node = c.indexField(target, "node", p)
			ch.Target.Path = c.stringField(target, "path", p, "")
			c.finishProperty(&ch.Target.Property, target, p, ParentAnimation, animationTargetKnownKeys)
		} else {
			c.errorf(path, "expected object for \"target\"")
		}
	} else {
		c.errorf(path, "missing required property \"target\"")
	}
	c.finishProperty(&ch.Property, v, path, ParentAnimation, animationChannelKnownKeys)
	return ch
}

var animationSamplerKnownKeys = map[string]bool{
	"input": true, "interpolation": true, "output": true,
}

func (c *readContext) readAnimationSampler(v jsonvalue.Value, path string) gltf.AnimationSampler {
	s := gltf.AnimationSampler{
		Input:         -1,
		Output:        -1,
		Interpolation: gltf.InterpolationLinear,
	}
	s.Input = c.indexField(v, "input", path)
	s.Interpolation = c.stringField(v, "interpolation", path, gltf.InterpolationLinear)
	s.Output = c.indexField(v, "output", path)
	c.finishProperty(&s.Property, v, path, ParentAnimation, animationSamplerKnownKeys)
	return s
}

var cameraKnownKeys = map[string]bool{
	"perspective": true, "orthographic": true, "type": true, "name": true,
}

var cameraPerspectiveKnownKeys = map[string]bool{
	"aspectRatio": true, "yfov": true, "zfar": true, "znear": true,
}

var cameraOrthographicKnownKeys = map[string]bool{
	"xmag": true, "ymag": true, "zfar": true, "znear": true,
}

func (c *readContext) readCamera(v jsonvalue.Value, path string) gltf.Camera {
	var cam gltf.Camera
	cam.Type = c.stringField(v, "type", path, "")
	if cam.Type == "" {
		c.errorf(path, "missing required property \"type\"")
	}
	if p, ok := v.Get("perspective"); ok {
		if p.IsObject() {
			pp := path + "/perspective"
			out := gltf.CameraPerspective{}
			out.AspectRatio = c.float64Field(p, "aspectRatio", pp, 0)
			out.YFov = c.float64Field(p, "yfov", pp, 0)
			out.ZFar = c.float64Field(p, "zfar", pp, 0)
			out.ZNear = c.float64Field(p, "znear", pp, 0)
			c.finishProperty(&out.Property, p, pp, ParentCamera, cameraPerspectiveKnownKeys)
			cam.Perspective = &out
		} else {
			c.warnf(path, "expected object for \"perspective\"; ignoring")
		}
	}
	if o, ok := v.Get("orthographic"); ok {
		if o.IsObject() {
			op := path + "/orthographic"
			out := gltf.CameraOrthographic{}
			out.XMag = c.float64Field(o, "xmag", op, 0)
			out.YMag = c.float64Field(o, "ymag", op, 0)
			out.ZFar = c.float64Field(o, "zfar", op, 0)
			out.ZNear = c.float64Field(o, "znear", op, 0)
			c.finishProperty(&out.Property, o, op, ParentCamera, cameraOrthographicKnownKeys)
			cam.Orthographic = &out
		} else {
			c.warnf(path, "expected object for \"orthographic\"; ignoring")
		}
	}
	cam.Name = c.stringField(v, "name", path, "")
	c.finishProperty(&cam.Property, v, path, ParentCamera, cameraKnownKeys)
	return cam
}
