package commands_test

import (
	"errors"
	"strings"
	"testing"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/core/domain/model/kernel"
	"rental/internal/core/domain/model/order"
	"rental/internal/pkg/errs"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAttachPaymentProofCommand(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewAttachPaymentProofCommand(id, "../../receipt.jpg", strings.NewReader("img"))
	require.NoError(t, err)
	assert.Equal(t, "receipt.jpg", cmd.FileName())
	assert.Equal(t, id.String(), cmd.ObjectName())

	_, err = commands.NewAttachPaymentProofCommand(id, "receipt.jpg", nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestAttachPaymentProofCommandHandler_Success(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	storage := new(MockObjectStorage)
	o := newTestOrder(t, kernel.NewUUID(), order.SelfDrive, order.Pending, nil)
	blob := strings.NewReader("receipt bytes")
	url := "https://res.cloudinary.com/demo/image/upload/payment-proofs/" + o.ID().String() + ".jpg"

	mock.InOrder(
		f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		storage.On("Upload", ctx, commands.PaymentProofFolder, o.ID().String(), blob).Return(url, nil).Once(),
		f.orders.On("Update", ctx, o).Return(nil).Once(),
		f.hook.On("Revalidate", ctx, mock.Anything).Return(nil).Once(),
	)

	cmd, err := commands.NewAttachPaymentProofCommand(o.ID(), "receipt.jpg", blob)
	require.NoError(t, err)

	handler := commands.NewAttachPaymentProofCommandHandler(f.repos, storage, f.hook, zerolog.Nop())
	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, url, updated.PaymentProofURL())
	f.assertExpectations(t)
	storage.AssertExpectations(t)
}

func TestAttachPaymentProofCommandHandler_TerminalOrder(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	storage := new(MockObjectStorage)
	o := newTestOrder(t, kernel.NewUUID(), order.SelfDrive, order.Rejected, nil)

	f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()

	cmd, err := commands.NewAttachPaymentProofCommand(o.ID(), "receipt.jpg", strings.NewReader("x"))
	require.NoError(t, err)

	_, err = commands.NewAttachPaymentProofCommandHandler(f.repos, storage, f.hook, zerolog.Nop()).Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrOrderTerminal)
	storage.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAttachPaymentProofCommandHandler_UploadFailure(t *testing.T) {
	ctx := t.Context()
	f := newFixture()
	storage := new(MockObjectStorage)
	o := newTestOrder(t, kernel.NewUUID(), order.SelfDrive, order.Pending, nil)

	f.orders.On("Get", ctx, o.ID()).Return(o, nil).Once()
	storage.On("Upload", ctx, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("quota exceeded")).Once()

	cmd, err := commands.NewAttachPaymentProofCommand(o.ID(), "receipt.jpg", strings.NewReader("x"))
	require.NoError(t, err)

	_, err = commands.NewAttachPaymentProofCommandHandler(f.repos, storage, f.hook, zerolog.Nop()).Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrPersistence)
	assert.Empty(t, o.PaymentProofURL())
	f.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
