package models

// SensorReading is one acquisition from the VOC sensor (real or simulated).
type SensorReading struct {
	VOCVector   []float64 `json:"voc_vector"`
	DeviceID    string    `json:"device_id"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
}
