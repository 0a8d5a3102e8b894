package commands

import (
	"errors"
	"io"
	"path/filepath"
	"strings"

	"rental/internal/core/domain/model/kernel"
	"rental/internal/pkg/errs"
	"rental/internal/pkg/guard"
)

var ErrAttachPaymentProofCommandIsNotConstructed = errors.New(
	"AttachPaymentProofCommand must be created via NewAttachPaymentProofCommand constructor",
)

// PaymentProofFolder is the object storage folder receipts are uploaded to.
const PaymentProofFolder = "payment-proofs"

// AttachPaymentProofCommand carries a customer's transfer receipt. The
// handler reads blob exactly once.
type AttachPaymentProofCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	fileName string
	blob     io.Reader

	guard guard.ConstructorGuard
}

func NewAttachPaymentProofCommand(orderID kernel.UUID, fileName string, blob io.Reader) (AttachPaymentProofCommand, error) {
	cmd := AttachPaymentProofCommand{
		guard: guard.NewConstructorGuard(),
	}

	var blobErr error
	if blob == nil {
		blobErr = errs.NewValueIsRequiredError("payment proof")
	}

	if err := errors.Join(orderID.Validate(), blobErr); err != nil {
		return AttachPaymentProofCommand{}, err
	}

	cmd.orderID = orderID
	cmd.fileName = strings.TrimSpace(filepath.Base(fileName))
	cmd.blob = blob
	return cmd, nil
}

func (c AttachPaymentProofCommand) Validate() error {
	return c.guard.Validate(ErrAttachPaymentProofCommandIsNotConstructed)
}

// OrderID returns the order the receipt belongs to.
func (c AttachPaymentProofCommand) OrderID() kernel.UUID {
	return c.orderID
}

// FileName returns the original name of the uploaded file.
func (c AttachPaymentProofCommand) FileName() string {
	return c.fileName
}

// Blob returns the receipt contents.
func (c AttachPaymentProofCommand) Blob() io.Reader {
	return c.blob
}

// ObjectName is the storage name of the proof: the order id, so a new upload
// replaces the previous one.
func (c AttachPaymentProofCommand) ObjectName() string {
	return c.orderID.String()
}
