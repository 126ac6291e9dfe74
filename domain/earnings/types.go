package earnings

// Summary is the server-computed earnings snapshot. The client never derives
// or updates it locally; it is refreshed on demand and may lag the request
// lifecycle by one fetch cycle. Amounts are in RSD.
type Summary struct {
	TotalEarnings  int64           `json:"totalEarnings"`
	PendingCount   int             `json:"pendingCount"`
	CompletedCount int             `json:"completedCount"`
	Weekly         []WeeklyBucket  `json:"weekly"`
	Monthly        []MonthlyBucket `json:"monthly"`
	ByVideoType    []TypeEarnings  `json:"byVideoType"`
}

// WeeklyBucket is one of the seven trailing-week buckets.
type WeeklyBucket struct {
	Day    string `json:"day"`
	Amount int64  `json:"amount"`
}

type MonthlyBucket struct {
	Month  string `json:"month"`
	Amount int64  `json:"amount"`
}

type TypeEarnings struct {
	VideoType string `json:"videoType"`
	Count     int    `json:"count"`
	Amount    int64  `json:"amount"`
}
