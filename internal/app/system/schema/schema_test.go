// internal/app/system/schema/schema_test.go
package schema_test

import (
	"errors"
	"testing"
	"time"

	"github.com/pulseboard/pulseboard/internal/app/system/schema"
	"github.com/pulseboard/pulseboard/internal/app/system/webapi"
	"github.com/pulseboard/pulseboard/internal/domain/models"
)

func TestValidate_ReportsWireNames(t *testing.T) {
	n := &models.Notification{
		Title: "only a title",
	}
	err := schema.Validate(n)
	if err == nil {
		t.Fatal("expected validation failure")
	}
	var verr *webapi.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}

	want := map[string]bool{"message": true, "type": true, "priority": true}
	for _, f := range verr.Fields {
		if !want[f] {
			t.Fatalf("unexpected field %q in %v", f, verr.Fields)
		}
		delete(want, f)
	}
	if len(want) != 0 {
		t.Fatalf("missing fields in report: %v (got %v)", want, verr.Fields)
	}
}

func TestValidate_AcceptsCompleteDoc(t *testing.T) {
	e := &models.Event{
		Title:    "Standup",
		Date:     time.Now().UTC(),
		Time:     "09:30",
		Duration: "15m",
		Type:     models.EventMeeting,
		Color:    "blue",
	}
	if err := schema.Validate(e); err != nil {
		t.Fatalf("expected valid, got %v", err)
	}
}

func TestValidate_RejectsBadEnum(t *testing.T) {
	c := &models.Customer{
		Name:    "A",
		Company: "B",
		Email:   "a@b.com",
		Status:  "Lost",
		Value:   "$1",
	}
	err := schema.Validate(c)
	var verr *webapi.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Fields) != 1 || verr.Fields[0] != "status" {
		t.Fatalf("expected status to be the only bad field, got %v", verr.Fields)
	}
}

func TestValidatePartial_SkipsAbsentFields(t *testing.T) {
	// Only Status is being patched; the empty required fields must not trip.
	c := &models.Customer{Status: models.CustomerActive}
	if err := schema.ValidatePartial(c, "Status"); err != nil {
		t.Fatalf("expected valid partial, got %v", err)
	}

	c.Status = "nope"
	err := schema.ValidatePartial(c, "Status")
	var verr *webapi.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}

func TestValidatePartial_NoFieldsIsNoop(t *testing.T) {
	var c models.Customer
	if err := schema.ValidatePartial(&c); err != nil {
		t.Fatalf("expected nil for empty field list, got %v", err)
	}
}
