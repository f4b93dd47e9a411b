package models

import "testing"

func TestOrderValidate(t *testing.T) {
	valid := Order{
		OrderID:         "ES-2024-1001",
		CustomerName:    "Jane Doe",
		ProductName:     "ElectroScoot Pro",
		DeliveryAddress: "1 Main St",
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid order rejected: %v", err)
	}

	missing := valid
	missing.DeliveryAddress = ""
	if err := missing.Validate(); err == nil {
		t.Error("expected error for missing delivery address")
	}

	badStatus := valid
	badStatus.DeliveryStatus = "lost"
	if err := badStatus.Validate(); err == nil {
		t.Error("expected error for unknown delivery status")
	}

	known := valid
	known.DeliveryStatus = DeliveryOutForDelivery
	if err := known.Validate(); err != nil {
		t.Errorf("known status rejected: %v", err)
	}
}

func TestReviewStatusValid(t *testing.T) {
	for _, s := range []ReviewStatus{ReviewPending, ReviewInProgress, ReviewResolved, ReviewClosed} {
		if !s.Valid() {
			t.Errorf("status %q should be valid", s)
		}
	}
	if ReviewStatus("archived").Valid() {
		t.Error("unknown status reported valid")
	}
}
