// internal/component/terrain.go
package component

// ChunkCell — координаты чанка в сетке
type ChunkCell struct {
	X, Y int
}

// Chunk — кусок морского дна
type Chunk struct {
	Cell     ChunkCell
	Polluted bool
	Variant  int
	Active   bool
}
