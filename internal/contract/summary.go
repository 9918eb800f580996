package contract

import (
	"github.com/bodylab/trainlog/internal/app"
	"github.com/bodylab/trainlog/internal/domain"
)

type SummaryRequest = app.SummaryRequest

func NewSummaryRequest(client domain.Client) SummaryRequest {
	return app.NewSummaryRequest(client)
}

type SummaryResponse = app.SummaryResponse
