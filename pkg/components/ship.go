package components

// ShipComponent holds the steering state of the player ship.
// Horizontal and vertical input are smoothed towards the raw axis values
// with a rate of Follow per second before being integrated into Yaw and Pitch.
type ShipComponent struct {
	Yaw               float64
	Pitch             float64
	CurrentHorizontal float64
	CurrentVertical   float64
	Follow            float64
}
