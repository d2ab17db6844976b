package revenue

type Point struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

type Stats struct {
	Total  float64 `json:"total"`
	Count  int     `json:"count"`
	Points []Point `json:"points"`
}

type Breakdown struct {
	RoomTotal  float64 `json:"room_total"`
	FnbTotal   float64 `json:"fnb_total"`
	OtherTotal float64 `json:"other_total"`
}
