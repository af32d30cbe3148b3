package pdu

import "fmt"

// FieldValidationError reports a mandatory field value that violates the
// protocol's range or format constraints for that field.
type FieldValidationError struct {
	Field  string
	Reason string
}

func (e *FieldValidationError) Error() string {
	return fmt.Sprintf("smpp/pdu: field %s: %s", e.Field, e.Reason)
}

// ProtocolViolationError reports a structural inconsistency that isn't a
// single field's range but a relationship between fields or TLVs — e.g.
// both sm_length/short_message and message_payload present on the same PDU,
// or a duplicate TLV tag.
type ProtocolViolationError struct {
	Detail string
}

func (e *ProtocolViolationError) Error() string {
	return fmt.Sprintf("smpp/pdu: protocol violation: %s", e.Detail)
}

// TruncatedBodyError reports a PDU body shorter than its mandatory fields
// require.
type TruncatedBodyError struct {
	CommandID CommandID
	Detail    string
}

func (e *TruncatedBodyError) Error() string {
	return fmt.Sprintf("smpp/pdu: truncated body for %s: %s", e.CommandID, e.Detail)
}

// TruncatedTlvError reports an optional-parameter block that ends before a
// declared TLV's length is satisfied.
type TruncatedTlvError struct {
	Tag    TagID
	Detail string
}

func (e *TruncatedTlvError) Error() string {
	return fmt.Sprintf("smpp/pdu: truncated tlv %s: %s", e.Tag, e.Detail)
}

// UnknownCommandIDError describes a command_id the codec doesn't
// recognize. Neither NewPDU nor Decode returns it — unrecognized
// command_ids become Unknown instead.
type UnknownCommandIDError struct {
	CommandID CommandID
}

func (e *UnknownCommandIDError) Error() string {
	return fmt.Sprintf("smpp/pdu: unknown command id %s", e.CommandID)
}

// EncodingMismatchError reports a short_message/message_payload byte slice
// that isn't valid under the PDU's declared data_coding.
type EncodingMismatchError struct {
	DataCoding int
	Detail     string
}

func (e *EncodingMismatchError) Error() string {
	return fmt.Sprintf("smpp/pdu: encoding mismatch for data_coding %d: %s", e.DataCoding, e.Detail)
}
