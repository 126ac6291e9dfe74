package request

import (
	"time"
)

// Request is a single paid video-message order as the dashboard sees it.
// The server owns the record; the client only ever mutates Status (forward
// through the state machine) and receives VideoURL once fulfillment is done.
// Price is in RSD, which has no fractional units.
type Request struct {
	ID           string    `json:"id"`
	BuyerName    string    `json:"buyerName"`
	BuyerAvatar  string    `json:"buyerAvatar,omitempty"`
	Recipient    string    `json:"recipient"`
	VideoType    string    `json:"videoType"`
	Instructions string    `json:"instructions,omitempty"`
	Price        int64     `json:"price"`
	Deadline     time.Time `json:"deadline"`
	Status       Status    `json:"status"`
	VideoURL     string    `json:"videoUrl,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// StatusPatch is the server's acknowledgement of a status transition.
type StatusPatch struct {
	ID     string `json:"id"`
	Status Status `json:"status"`
}

// UploadResult is the server's acknowledgement of a fulfilled video upload.
type UploadResult struct {
	ID       string `json:"id"`
	Status   Status `json:"status"`
	VideoURL string `json:"videoUrl"`
}
