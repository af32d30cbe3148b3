package pdu

import "testing"

func buildSubmitSmBodyWithPriority(priorityFlag byte) []byte {
	body := append([]byte("svc"), 0)
	body = append(body, 1, 1)
	body = append(body, append([]byte("source"), 0)...)
	body = append(body, 2, 2)
	body = append(body, append([]byte("dest"), 0)...)
	body = append(body, 0)            // esm_class
	body = append(body, 0)            // protocol_id
	body = append(body, priorityFlag) // priority_flag
	body = append(body, 0)            // schedule_delivery_time
	body = append(body, 0)            // validity_period
	body = append(body, 0, 0, 0, 0)   // registered_delivery, replace_if_present_flag, data_coding, sm_default_msg_id
	body = append(body, 0)            // sm_length
	return body
}

func TestSubmitSmRejectsInvalidPriorityFlag(t *testing.T) {
	body := buildSubmitSmBodyWithPriority(9)
	p := &SubmitSm{}
	err := p.UnmarshalBinary(body)
	if _, ok := err.(*FieldValidationError); !ok {
		t.Fatalf("expected *FieldValidationError for invalid priority_flag, got %T (%v)", err, err)
	}
}

func TestSubmitSmAllowsValidPriorityFlag(t *testing.T) {
	body := buildSubmitSmBodyWithPriority(3)
	p := &SubmitSm{}
	if err := p.UnmarshalBinary(body); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if p.PriorityFlag != 3 {
		t.Errorf("PriorityFlag = %d, want 3", p.PriorityFlag)
	}
}

func TestDeliverSmRejectsInvalidPriorityFlag(t *testing.T) {
	body := buildSubmitSmBodyWithPriority(4)
	p := &DeliverSm{}
	err := p.UnmarshalBinary(body)
	if _, ok := err.(*FieldValidationError); !ok {
		t.Fatalf("expected *FieldValidationError for invalid priority_flag, got %T (%v)", err, err)
	}
}
