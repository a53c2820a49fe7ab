package dto

import (
	"encoding/json"
	"testing"
)

func TestUpdateRequestDistinguishesNullFromAbsent(t *testing.T) {
	var req UpdateScheduleRequest
	if err := json.Unmarshal([]byte(`{"checkInTime":null,"exercised":true}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !req.CheckInTime.Present() {
		t.Errorf("explicit null must count as present")
	}
	if req.CheckInTime.Ptr() != nil {
		t.Errorf("null must decode to a nil value, got %q", *req.CheckInTime.Ptr())
	}

	if !req.Exercised.Present() {
		t.Errorf("exercised key lost")
	}
	if v := req.Exercised.Ptr(); v == nil || !*v {
		t.Errorf("exercised value lost: %v", v)
	}

	if req.Reflection.Present() {
		t.Errorf("absent key must not count as present")
	}
}

func TestUpdateRequestDecodesValues(t *testing.T) {
	var req UpdateScheduleRequest
	if err := json.Unmarshal([]byte(`{"checkInTime":"07:45","reflection":"ran 5k"}`), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if v := req.CheckInTime.Ptr(); v == nil || *v != "07:45" {
		t.Errorf("checkInTime = %v", v)
	}
	if v := req.Reflection.Ptr(); v == nil || *v != "ran 5k" {
		t.Errorf("reflection = %v", v)
	}
	if req.Exercised.Present() {
		t.Errorf("absent exercised must not count as present")
	}
}
