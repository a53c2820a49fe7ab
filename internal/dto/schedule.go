package dto

type CreateScheduleRequest struct {
	Date        string  `json:"date" binding:"required"`
	User        string  `json:"user" binding:"required"`
	CheckInTime *string `json:"checkInTime"`
	Exercised   *bool   `json:"exercised"` // defaults to false
	Reflection  *string `json:"reflection"`
}

// UpdateScheduleRequest carries a partial update: an absent key keeps the
// stored value, an explicit null clears it. id, date and user are immutable
// and have no fields here.
type UpdateScheduleRequest struct {
	CheckInTime NullableString `json:"checkInTime"`
	Exercised   NullableBool   `json:"exercised"`
	Reflection  NullableString `json:"reflection"`
}

// ScheduleResponse uses the original client's field names; absent optionals
// serialize as null.
type ScheduleResponse struct {
	ID          int64   `json:"id"`
	Date        string  `json:"date"`
	User        string  `json:"user"`
	CheckInTime *string `json:"checkInTime"`
	Exercised   bool    `json:"exercised"`
	Reflection  *string `json:"reflection"`
}
