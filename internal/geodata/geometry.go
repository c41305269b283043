package geodata

import (
	"encoding/json"
	"fmt"

	"github.com/jonas-p/go-shp"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// toGeometry converts a shapefile polygon record into an orb geometry.
// Clockwise parts start a new polygon, counter-clockwise parts are holes of
// the polygon before them. A single polygon is returned as orb.Polygon,
// several as orb.MultiPolygon.
func toGeometry(s shp.Shape) (orb.Geometry, error) {
	var parts []int32
	var points []shp.Point

	switch g := s.(type) {
	case *shp.Polygon:
		parts, points = g.Parts, g.Points
	case *shp.PolygonZ:
		parts, points = g.Parts, g.Points
	case *shp.PolygonM:
		parts, points = g.Parts, g.Points
	case *shp.Null:
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported shape type %T", s)
	}

	rings := splitRings(parts, points)
	if len(rings) == 0 {
		return nil, nil
	}

	var mp orb.MultiPolygon
	for _, r := range rings {
		if r.Orientation() == orb.CCW && len(mp) > 0 {
			last := len(mp) - 1
			mp[last] = append(mp[last], r)
			continue
		}
		mp = append(mp, orb.Polygon{r})
	}

	if len(mp) == 1 {
		return mp[0], nil
	}
	return mp, nil
}

func splitRings(parts []int32, points []shp.Point) []orb.Ring {
	rings := make([]orb.Ring, 0, len(parts))
	for i, start := range parts {
		end := int32(len(points))
		if i+1 < len(parts) {
			end = parts[i+1]
		}
		if start < 0 || start >= end || int(end) > len(points) {
			continue
		}
		ring := make(orb.Ring, 0, end-start)
		for _, p := range points[start:end] {
			ring = append(ring, orb.Point{p.X, p.Y})
		}
		if !ring.Closed() {
			ring = append(ring, ring[0])
		}
		rings = append(rings, ring)
	}
	return rings
}

// GeoJSON encodes a geometry as a GeoJSON geometry object. A nil geometry
// encodes as JSON null.
func GeoJSON(g orb.Geometry) ([]byte, error) {
	if g == nil {
		return []byte("null"), nil
	}
	b, err := json.Marshal(geojson.NewGeometry(g))
	if err != nil {
		return nil, fmt.Errorf("encoding geometry: %w", err)
	}
	return b, nil
}

// FeatureCollection encodes the province outlines as one GeoJSON feature
// collection, skipping provinces without geometry.
func FeatureCollection(provinces []Province) ([]byte, error) {
	fc := geojson.NewFeatureCollection()
	for _, p := range provinces {
		if p.Geometry == nil {
			continue
		}
		f := geojson.NewFeature(p.Geometry)
		f.Properties["code"] = p.Code
		f.Properties["name"] = p.Name
		fc.Append(f)
	}
	b, err := fc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encoding province outlines: %w", err)
	}
	return b, nil
}
