package model

import "testing"

func TestNewMesh(t *testing.T) {
	a := NewMesh(WithName("blade"), WithGeometry([]byte{1, 2}, []byte{0, 0, 0, 0}, 6), WithBoundingRadius(0.5))
	b := NewMesh(WithName("blade"))

	if a.ID() == b.ID() {
		t.Error("meshes must get distinct IDs")
	}
	if a.Name() != "blade" || a.IndexCount() != 6 || a.BoundingRadius() != 0.5 {
		t.Errorf("options not applied: name=%q indices=%d radius=%v", a.Name(), a.IndexCount(), a.BoundingRadius())
	}
	if a.MeshProvider() == nil || a.MeshProvider().IndexCount() != 6 {
		t.Error("mesh provider missing or index count not forwarded")
	}
}
