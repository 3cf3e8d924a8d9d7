package geometry

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
	"github.com/twpayne/go-geom/encoding/wkb"

	"route-service/internal/entities"
)

var ErrNotLineString = errors.New("geometry is not a line string")

// Path строит линию маршрута: старт водителя, затем точки в порядке Order.
// Координаты в порядке GeoJSON: долгота, широта.
func Path(start entities.Coordinate, waypoints []entities.Waypoint) (*geom.LineString, error) {
	coords := make([]geom.Coord, 0, len(waypoints)+1)
	coords = append(coords, geom.Coord{start.Longitude, start.Latitude})
	for _, wp := range waypoints {
		coords = append(coords, geom.Coord{wp.Location.Longitude, wp.Location.Latitude})
	}

	ls, err := geom.NewLineString(geom.XY).SetCoords(coords)
	if err != nil {
		return nil, fmt.Errorf("build route path: %w", err)
	}
	return ls, nil
}

// GeoJSON кодирует линию маршрута как GeoJSON geometry.
func GeoJSON(start entities.Coordinate, waypoints []entities.Waypoint) (json.RawMessage, error) {
	ls, err := Path(start, waypoints)
	if err != nil {
		return nil, err
	}

	raw, err := geojson.Marshal(ls)
	if err != nil {
		return nil, fmt.Errorf("encode route path: %w", err)
	}
	return raw, nil
}

func MarshalWKB(ls *geom.LineString) ([]byte, error) {
	raw, err := wkb.Marshal(ls, wkb.NDR)
	if err != nil {
		return nil, fmt.Errorf("encode route path wkb: %w", err)
	}
	return raw, nil
}

func UnmarshalWKB(raw []byte) (*geom.LineString, error) {
	g, err := wkb.Unmarshal(raw)
	if err != nil {
		return nil, fmt.Errorf("decode route path wkb: %w", err)
	}

	ls, ok := g.(*geom.LineString)
	if !ok {
		return nil, ErrNotLineString
	}
	return ls, nil
}
