package model

const (
	SourceDistanceMatrix  = "distance_matrix"
	SourceCoordinateTable = "coordinate_table"
	SourceDefault         = "default"

	// DefaultDistanceKm is assumed when neither the remote lookup nor the
	// coordinate table can place both ends of the trip.
	DefaultDistanceKm = 10
)

// Result reports a resolved trip distance. OK is true only when the remote
// distance matrix answered; fallback results carry the remote error in Err
// for logging.
type Result struct {
	OK         bool    `json:"ok"`
	DistanceKm float64 `json:"distance"`
	Source     string  `json:"source"`
	Err        string  `json:"error,omitempty"`
}

type Coordinate struct {
	Lat float64
	Lng float64
}

// FallbackCoordinates maps service-area place names to coordinates for the
// offline Haversine fallback. Keys are lowercased with whitespace stripped.
func FallbackCoordinates() map[string]Coordinate {
	return map[string]Coordinate{
		"basavanagudi":   {Lat: 12.9438, Lng: 77.5762},
		"indiranagar":    {Lat: 12.9716, Lng: 77.6412},
		"marathahalli":   {Lat: 12.9581, Lng: 77.7014},
		"vijaynagar":     {Lat: 12.9702, Lng: 77.5603},
		"mgroad":         {Lat: 12.9716, Lng: 77.5946},
		"rajajinagar":    {Lat: 12.9784, Lng: 77.5610},
		"koramangala":    {Lat: 12.9279, Lng: 77.6271},
		"whitefield":     {Lat: 12.9698, Lng: 77.7500},
		"electroniccity": {Lat: 12.8456, Lng: 77.6603},
		"hebbal":         {Lat: 13.0359, Lng: 77.5970},
	}
}
