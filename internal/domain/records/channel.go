package records

import "strings"

// PaymentChannel is the closed normalization of the free-form payment-method tags
// found on receivable and payable payments. Tags outside the recognized vocabulary
// fall into ChannelOther rather than being rejected.
type PaymentChannel string

const (
	ChannelCash       PaymentChannel = "CASH"
	ChannelElectronic PaymentChannel = "ELECTRONIC"
	ChannelOther      PaymentChannel = "OTHER"
)

// receivableElectronicTags are the method tags treated as electronic for payments
// received on accounts receivable.
var receivableElectronicTags = map[string]struct{}{
	"TRANSFER": {},
	"DEPOSIT":  {},
	"CARD":     {},
	"CHECK":    {},
}

// ReceivableChannel normalizes a receivable payment's method tag. Matching is
// case-insensitive; unrecognized tags map to ChannelOther.
func ReceivableChannel(method string) PaymentChannel {
	tag := strings.ToUpper(strings.TrimSpace(method))
	if tag == string(ChannelCash) {
		return ChannelCash
	}
	if _, ok := receivableElectronicTags[tag]; ok {
		return ChannelElectronic
	}
	return ChannelOther
}

// PayableChannel normalizes a supplier payment's method tag. Suppliers are paid
// electronically only via bank transfer, so the electronic vocabulary is narrower
// than for receivables.
func PayableChannel(method string) PaymentChannel {
	switch strings.ToUpper(strings.TrimSpace(method)) {
	case string(ChannelCash):
		return ChannelCash
	case "TRANSFER":
		return ChannelElectronic
	default:
		return ChannelOther
	}
}
