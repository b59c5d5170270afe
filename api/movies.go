package api

import (
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime/types"
)

type MovieRequest struct {
	Title       string     `json:"title" validate:"required,max=255"`
	Description string     `json:"description" validate:"required"`
	ReleaseDate types.Date `json:"releaseDate" validate:"required"`
}

type MovieResponse struct {
	Id          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ReleaseDate types.Date `json:"releaseDate"`
}

type GetMoviesParams struct {
	Page     *int    `validate:"omitempty,min=1"`
	PageSize *int    `validate:"omitempty,min=1,max=100"`
	Term     *string `validate:"omitempty,max=255"`
	Sort     *string `validate:"omitempty,oneof=title release_date -title -release_date"`
}

type MovieListResponse struct {
	Movies   []MovieResponse `json:"movies"`
	Metadata *Metadata       `json:"metadata,omitempty"`
}
