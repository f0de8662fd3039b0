package mysql

import (
	"context"
	"database/sql"

	"points_hotel/internal/domain"
)

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// LoadHotels reads the full record set once at startup. NULL state loads as
// ""; NULL numerics load as 0 ("unknown" for distance).
func (r *Repo) LoadHotels(ctx context.Context) ([]domain.Hotel, error) {
	rows, err := r.db.QueryContext(ctx, loadHotelsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Hotel
	for rows.Next() {
		var (
			h                           domain.Hotel
			state                       sql.NullString
			ptVal, ptsNight, pts5, dist sql.NullFloat64
		)
		if err := rows.Scan(&h.Brand, &h.Hotel, &h.City, &state, &ptVal, &ptsNight, &pts5, &dist); err != nil {
			return nil, err
		}
		h.State = state.String
		h.AvgPtValue = ptVal.Float64
		h.AvgPtsNight = ptsNight.Float64
		h.AvgPts5Nights = pts5.Float64
		h.DistanceKmFromAirport = dist.Float64
		out = append(out, h)
	}
	return out, rows.Err()
}

// UpdateDistance persists an enriched airport distance for one record.
func (r *Repo) UpdateDistance(ctx context.Context, hotel, city string, km float64) error {
	_, err := r.db.ExecContext(ctx, updateDistanceSQL, km, hotel, city)
	return err
}
