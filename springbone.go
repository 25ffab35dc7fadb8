package gltf

import (
	"github.com/go-gl/mathgl/mgl32"
)

// SpringBone is the VRMC_springBone extension: the configuration of the
// secondary animation of hair, clothing, and similar chains of nodes.
type SpringBone struct {
	SpecVersion    string          `json:"specVersion"`
	Colliders      []Collider      `json:"colliders,omitempty"`
	ColliderGroups []ColliderGroup `json:"colliderGroups,omitempty"`
	Springs        []Spring        `json:"springs,omitempty"`
}

// Collider is a shape attached to a node that spring joints collide with.
type Collider struct {
	Node  uint32        `json:"node"`
	Shape ColliderShape `json:"shape"`
}

// ColliderShape holds exactly one of Sphere or Capsule.
type ColliderShape struct {
	Sphere  *ColliderSphere  `json:"sphere,omitempty"`
	Capsule *ColliderCapsule `json:"capsule,omitempty"`
}

// ColliderSphere is a sphere in the local space of the collider's node.
type ColliderSphere struct {
	Offset *mgl32.Vec3 `json:"offset,omitempty"`
	Radius float32     `json:"radius,omitempty"`
}

func (s *ColliderSphere) OffsetOrDefault() mgl32.Vec3 {
	return orDefault(s.Offset, mgl32.Vec3{})
}

// ColliderCapsule is a capsule from Offset to Tail in the local space of the
// collider's node.
type ColliderCapsule struct {
	Offset *mgl32.Vec3 `json:"offset,omitempty"`
	Radius float32     `json:"radius,omitempty"`
	Tail   *mgl32.Vec3 `json:"tail,omitempty"`
}

func (c *ColliderCapsule) OffsetOrDefault() mgl32.Vec3 {
	return orDefault(c.Offset, mgl32.Vec3{})
}

func (c *ColliderCapsule) TailOrDefault() mgl32.Vec3 {
	return orDefault(c.Tail, mgl32.Vec3{})
}

// ColliderGroup is a named set of indices into SpringBone.Colliders.
type ColliderGroup struct {
	Name      string   `json:"name,omitempty"`
	Colliders []uint32 `json:"colliders"`
}

// Spring is a chain of joints simulated together.
type Spring struct {
	Name           string        `json:"name,omitempty"`
	Joints         []SpringJoint `json:"joints"`
	ColliderGroups []uint32      `json:"colliderGroups,omitempty"`
	// Center is the node whose space the simulation runs in, or nil for
	// world space.
	Center *uint32 `json:"center,omitempty"`
}

// SpringJoint is one node of a spring chain with its physical parameters.
type SpringJoint struct {
	Node         uint32      `json:"node"`
	HitRadius    float32     `json:"hitRadius,omitempty"`
	Stiffness    *float32    `json:"stiffness,omitempty"`
	GravityPower float32     `json:"gravityPower,omitempty"`
	GravityDir   *mgl32.Vec3 `json:"gravityDir,omitempty"`
	DragForce    *float32    `json:"dragForce,omitempty"`
}

// StiffnessOrDefault returns the stiffness, 1 by default.
func (j *SpringJoint) StiffnessOrDefault() float32 {
	return orDefault(j.Stiffness, 1)
}

// GravityDirOrDefault returns the gravity direction, -Y by default.
func (j *SpringJoint) GravityDirOrDefault() mgl32.Vec3 {
	return orDefault(j.GravityDir, mgl32.Vec3{0, -1, 0})
}

// DragForceOrDefault returns the drag force, 0.5 by default.
func (j *SpringJoint) DragForceOrDefault() float32 {
	return orDefault(j.DragForce, 0.5)
}
