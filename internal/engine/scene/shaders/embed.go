// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// TerrainVertexShader is the vertex shader for the terrain globe.
//
//go:embed terrain.vert
var TerrainVertexShader string

// TerrainFragmentShader is the fragment shader for the terrain globe.
//
//go:embed terrain.frag
var TerrainFragmentShader string

// WaterVertexShader is the vertex shader for the water layer.
//
//go:embed water.vert
var WaterVertexShader string

// WaterFragmentShader is the fragment shader for the water layer.
//
//go:embed water.frag
var WaterFragmentShader string

// MarkerVertexShader is the vertex shader for marker billboards.
//
//go:embed marker.vert
var MarkerVertexShader string

// MarkerFragmentShader is the fragment shader for marker billboards.
//
//go:embed marker.frag
var MarkerFragmentShader string
