package domain

// maxLatitude caps the latitude estimate derived from an amplitude.
const maxLatitude = 90.0

// EstimateLocation recovers the forward-model parameters for a tile
// from its observed seasonal extremes alone. The mean is the midpoint
// of the extremes, the amplitude half their spread, and the equator
// distance comes from inverting the seasonal curve. The latitude is a
// rough magnitude estimate used only for its hemisphere sign; when the
// hemisphere is unknown callers pass southern=false, a documented
// simplification with no corroborating data in the snapshot.
func (t Tuning) EstimateLocation(minTemp, maxTemp float64, southern bool) Location {
	amplitude := (maxTemp - minTemp) / 2
	if amplitude < 0 {
		amplitude = -amplitude
	}

	distance := t.Curve.DistanceForAmplitude(amplitude)
	latitude := distance * maxLatitude
	if southern {
		latitude = -latitude
	}

	return Location{
		BaseTemperature: (minTemp + maxTemp) / 2,
		EquatorDistance: distance,
		Latitude:        latitude,
	}
}

// GrowingDaysFromExtremes chains the inverse estimator into the full
// forward computation, assuming the northern hemisphere.
func (t Tuning) GrowingDaysFromExtremes(minTemp, maxTemp float64) int {
	return t.GrowingDays(t.EstimateLocation(minTemp, maxTemp, false))
}
