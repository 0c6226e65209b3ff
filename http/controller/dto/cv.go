package dto

import (
	"time"

	"github.com/minaamulhaq/updatedPortfolowithbackend/entity"
)

// CVResponse is the public projection of a CV record. The field names
// are part of the front-end contract.
type CVResponse struct {
	ID        string    `json:"_id"`
	FileURL   string    `json:"fileUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewCVResponse(cv *entity.CV) CVResponse {
	return CVResponse{
		ID:        cv.ID.String(),
		FileURL:   cv.FileURL,
		CreatedAt: cv.CreatedAt,
	}
}

func NewCVResponseList(cvs []entity.CV) []CVResponse {
	out := make([]CVResponse, 0, len(cvs))
	for i := range cvs {
		out = append(out, NewCVResponse(&cvs[i]))
	}
	return out
}
