package dashboard

import (
	"context"
	"io"

	"starclip/domain/availability"
	"starclip/domain/request"
)

//go:generate mockgen -source=ports.go -destination=../tests/mock/dashboard/api.go -package=dashboardmock

// RequestAPI is the slice of the repository adapter the lifecycle controller
// drives. *client.Client satisfies it.
type RequestAPI interface {
	ListRequests(ctx context.Context, status request.Status) ([]request.Request, error)
	PatchRequestStatus(ctx context.Context, id string, status request.Status) (request.StatusPatch, error)
	UploadRequestVideo(ctx context.Context, id string, file request.VideoFile, content io.Reader, onProgress func(int)) (request.UploadResult, error)
}

// AvailabilityAPI backs the availability draft editor.
type AvailabilityAPI interface {
	FetchAvailability(ctx context.Context) (availability.Week, error)
	SaveAvailability(ctx context.Context, week availability.Week) (availability.Week, error)
}
