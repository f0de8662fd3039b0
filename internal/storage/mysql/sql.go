package mysql

const loadHotelsSQL = `
SELECT
  brand,
  hotel,
  city,
  state,
  avg_pt_value,
  avg_pts_night,
  avg_pts_5_nights,
  distance_km_from_airport
FROM hotels
ORDER BY id
`

// Distance write-back keys on (hotel, city); the dataset has no synthetic id
// visible to the enricher.
const updateDistanceSQL = `
UPDATE hotels
SET distance_km_from_airport = ?, enriched_at = CURRENT_TIMESTAMP
WHERE hotel = ? AND city = ?
`
