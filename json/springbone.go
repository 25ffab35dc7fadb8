package json

import (
	"github.com/vrmkit/gltf"
	"github.com/vrmkit/gltf/errors"
)

func springBone(o *Object) (s gltf.SpringBone) {
	s.SpecVersion = Required(o, "specVersion", String)
	s.Colliders = List(o, "colliders", ObjectOf(collider))
	s.ColliderGroups = List(o, "colliderGroups", ObjectOf(colliderGroup))
	s.Springs = List(o, "springs", ObjectOf(spring))
	return s
}

func collider(o *Object) (c gltf.Collider) {
	c.Node = Required(o, "node", Uint32)
	c.Shape = Required(o, "shape", ObjectOf(colliderShape))
	return c
}

// colliderShape requires exactly one of the sphere and capsule members.
func colliderShape(o *Object) (s gltf.ColliderShape) {
	s.Sphere = Optional(o, "sphere", ObjectOf(colliderSphere))
	s.Capsule = Optional(o, "capsule", ObjectOf(colliderCapsule))
	if o.Err() == nil && (s.Sphere == nil) == (s.Capsule == nil) {
		if s.Sphere == nil {
			o.Add(errors.MissingFieldError{Path: o.Path.Key("sphere").String()})
		} else {
			o.Add(errors.InvalidTypeError{
				Path:     o.Path.String(),
				Expected: "one of sphere or capsule",
				Got:      "both",
			})
		}
	}
	return s
}

func colliderSphere(o *Object) (s gltf.ColliderSphere) {
	s.Offset = Optional(o, "offset", Vec3)
	s.Radius = Default(o, "radius", Float32)
	return s
}

func colliderCapsule(o *Object) (c gltf.ColliderCapsule) {
	c.Offset = Optional(o, "offset", Vec3)
	c.Radius = Default(o, "radius", Float32)
	c.Tail = Optional(o, "tail", Vec3)
	return c
}

func colliderGroup(o *Object) (g gltf.ColliderGroup) {
	g.Name = Default(o, "name", String)
	g.Colliders = Required(o, "colliders", ArrayOf(Uint32))
	return g
}

func spring(o *Object) (s gltf.Spring) {
	s.Name = Default(o, "name", String)
	s.Joints = Required(o, "joints", ArrayOf(ObjectOf(springJoint)))
	s.ColliderGroups = List(o, "colliderGroups", Uint32)
	s.Center = Optional(o, "center", Uint32)
	return s
}

func springJoint(o *Object) (j gltf.SpringJoint) {
	j.Node = Required(o, "node", Uint32)
	j.HitRadius = Default(o, "hitRadius", Float32)
	j.Stiffness = Optional(o, "stiffness", Float32)
	j.GravityPower = Default(o, "gravityPower", Float32)
	j.GravityDir = Optional(o, "gravityDir", Vec3)
	j.DragForce = Optional(o, "dragForce", Float32)
	return j
}
